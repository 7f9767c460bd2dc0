package commands

import (
	"errors"
	"strings"

	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand is a messenger moving one of their deliveries
// along the lifecycle. Whether the status is one a messenger may set is
// decided by the delivery itself, after ownership.
type UpdateDeliveryStatusCommand struct {
	deliveryID    kernel.UUID
	requesterID   kernel.UUID
	status        delivery.Status
	failureReason string
	notes         string

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryStatusCommand(
	deliveryID, requesterID kernel.UUID,
	status delivery.Status,
	failureReason, notes string,
) (UpdateDeliveryStatusCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		requesterID.Validate(),
		status.Validate(),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return UpdateDeliveryStatusCommand{
		deliveryID:    deliveryID,
		requesterID:   requesterID,
		status:        status,
		failureReason: strings.TrimSpace(failureReason),
		notes:         strings.TrimSpace(notes),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID  { return c.deliveryID }
func (c UpdateDeliveryStatusCommand) RequesterID() kernel.UUID { return c.requesterID }
func (c UpdateDeliveryStatusCommand) Status() delivery.Status  { return c.status }
func (c UpdateDeliveryStatusCommand) FailureReason() string    { return c.failureReason }
func (c UpdateDeliveryStatusCommand) Notes() string            { return c.notes }
