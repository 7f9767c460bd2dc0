package commands

import (
	"errors"
	"strings"

	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/pkg/guard"
)

var ErrVerifyDeliveryCommandIsNotConstructed = errors.New(
	"VerifyDeliveryCommand must be created via NewVerifyDeliveryCommand constructor",
)

// VerifyDeliveryCommand records a coordinator's review of a delivery.
type VerifyDeliveryCommand struct {
	deliveryID    kernel.UUID
	coordinatorID kernel.UUID
	decision      delivery.VerificationStatus
	notes         string

	guard guard.ConstructorGuard
}

func NewVerifyDeliveryCommand(
	deliveryID, coordinatorID kernel.UUID,
	decision delivery.VerificationStatus,
	notes string,
) (VerifyDeliveryCommand, error) {
	if err := errors.Join(deliveryID.Validate(), coordinatorID.Validate()); err != nil {
		return VerifyDeliveryCommand{}, err
	}

	return VerifyDeliveryCommand{
		deliveryID:    deliveryID,
		coordinatorID: coordinatorID,
		decision:      decision,
		notes:         strings.TrimSpace(notes),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c VerifyDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrVerifyDeliveryCommandIsNotConstructed)
}

func (c VerifyDeliveryCommand) DeliveryID() kernel.UUID               { return c.deliveryID }
func (c VerifyDeliveryCommand) CoordinatorID() kernel.UUID            { return c.coordinatorID }
func (c VerifyDeliveryCommand) Decision() delivery.VerificationStatus { return c.decision }
func (c VerifyDeliveryCommand) Notes() string                         { return c.notes }
