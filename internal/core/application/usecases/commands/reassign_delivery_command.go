package commands

import (
	"errors"

	"pod/internal/core/domain/model/kernel"
	"pod/internal/pkg/guard"
)

var ErrReassignDeliveryCommandIsNotConstructed = errors.New(
	"ReassignDeliveryCommand must be created via NewReassignDeliveryCommand constructor",
)

// ReassignDeliveryCommand moves a delivery to another messenger.
type ReassignDeliveryCommand struct {
	deliveryID  kernel.UUID
	messengerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewReassignDeliveryCommand(deliveryID, messengerID kernel.UUID) (ReassignDeliveryCommand, error) {
	if err := errors.Join(deliveryID.Validate(), messengerID.Validate()); err != nil {
		return ReassignDeliveryCommand{}, err
	}

	return ReassignDeliveryCommand{
		deliveryID:  deliveryID,
		messengerID: messengerID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ReassignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrReassignDeliveryCommandIsNotConstructed)
}

func (c ReassignDeliveryCommand) DeliveryID() kernel.UUID  { return c.deliveryID }
func (c ReassignDeliveryCommand) MessengerID() kernel.UUID { return c.messengerID }
