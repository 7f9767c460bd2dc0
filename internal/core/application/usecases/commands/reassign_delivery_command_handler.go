package commands

import (
	"context"

	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"
)

// ReassignDeliveryCommandHandler resets a delivery to assigned under a new
// messenger. Proof images and verification stay. The bill follows the
// delivery to the new messenger through the bill projection.
type ReassignDeliveryCommandHandler struct {
	uowFactory UoWFactory
	events     DeliveryEvents
	clock      kernel.Clock
}

func NewReassignDeliveryCommandHandler(
	uowFactory UoWFactory,
	events DeliveryEvents,
	clock kernel.Clock,
) ReassignDeliveryCommandHandler {
	return ReassignDeliveryCommandHandler{
		uowFactory: uowFactory,
		events:     events,
		clock:      clock,
	}
}

func (h ReassignDeliveryCommandHandler) Handle(ctx context.Context, cmd ReassignDeliveryCommand) (*delivery.Delivery, error) {
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

	if _, err := getMessenger(ctx, uow.UserRepository(), cmd.MessengerID()); err != nil {
		return nil, err
	}

	d, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = d.Reassign(cmd.MessengerID(), h.clock.Now()); err != nil {
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
