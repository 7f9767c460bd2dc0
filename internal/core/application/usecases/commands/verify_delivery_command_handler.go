package commands

import (
	"context"

	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"
)

// VerifyDeliveryCommandHandler stores a verification decision. The delivery
// status is not checked, so a coordinator may review a delivery at any point.
type VerifyDeliveryCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewVerifyDeliveryCommandHandler(uowFactory UoWFactory, clock kernel.Clock) VerifyDeliveryCommandHandler {
	return VerifyDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h VerifyDeliveryCommandHandler) Handle(ctx context.Context, cmd VerifyDeliveryCommand) (*delivery.Delivery, error) {
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

	if err = d.Verify(cmd.CoordinatorID(), cmd.Decision(), cmd.Notes(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
