package commands

import (
	"context"

	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"
)

// UpdateDeliveryStatusCommandHandler applies a messenger's status change.
// Reaching delivered marks the bill delivered in the same transaction.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
	events     DeliveryEvents
	clock      kernel.Clock
}

func NewUpdateDeliveryStatusCommandHandler(
	uowFactory UoWFactory,
	events DeliveryEvents,
	clock kernel.Clock,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		events:     events,
		clock:      clock,
	}
}

// Handle returns the updated delivery. Errors from the delivery
// (ErrNotDeliveryOwner, ErrProofRequired, ErrInvalidTransition) come back
// unchanged and nothing is written.
func (h UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryStatusCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	err = d.UpdateStatus(cmd.RequesterID(), cmd.Status(), cmd.FailureReason(), cmd.Notes(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Update(ctx, d); err != nil {
		return nil, err
	}

	events := d.PullEvents()
	if err = h.events.Apply(ctx, uow, events); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.events.Publish(ctx, events)
	return d, nil
}
