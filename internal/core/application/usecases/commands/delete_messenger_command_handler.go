package commands

import (
	"context"

	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"
)

// DeleteMessengerResult counts what the cascade touched.
type DeleteMessengerResult struct {
	DeletedDeliveries int64
	UnassignedBills   int
}

// DeleteMessengerCommandHandler deletes a messenger in one transaction: their
// deliveries go (proof images with them), the bills assigned to them lose
// their assignee, then the account is removed. A bill with a delivered
// delivery by another messenger stays delivered; the others return to
// unassigned.
type DeleteMessengerCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewDeleteMessengerCommandHandler(uowFactory UoWFactory, clock kernel.Clock) DeleteMessengerCommandHandler {
	return DeleteMessengerCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h DeleteMessengerCommandHandler) Handle(ctx context.Context, cmd DeleteMessengerCommand) (DeleteMessengerResult, error) {
	if err := cmd.Validate(); err != nil {
		return DeleteMessengerResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DeleteMessengerResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := getMessenger(ctx, uow.UserRepository(), cmd.MessengerID()); err != nil {
		return DeleteMessengerResult{}, err
	}

	deleted, err := uow.DeliveryRepository().DeleteByMessenger(ctx, cmd.MessengerID())
	if err != nil {
		return DeleteMessengerResult{}, err
	}

	bills, err := uow.BillRepository().FindAssignedTo(ctx, cmd.MessengerID())
	if err != nil {
		return DeleteMessengerResult{}, err
	}

	now := h.clock.Now()
	for _, b := range bills {
		remaining, findErr := uow.DeliveryRepository().FindByBill(ctx, b.ID())
		if findErr != nil {
			return DeleteMessengerResult{}, findErr
		}

		b.Unassign(anyDelivered(remaining), now)
		if err = uow.BillRepository().Update(ctx, b); err != nil {
			return DeleteMessengerResult{}, err
		}
	}

	if err = uow.UserRepository().Delete(ctx, cmd.MessengerID()); err != nil {
		return DeleteMessengerResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return DeleteMessengerResult{}, err
	}

	return DeleteMessengerResult{
		DeletedDeliveries: deleted,
		UnassignedBills:   len(bills),
	}, nil
}

func anyDelivered(deliveries []*delivery.Delivery) bool {
	for _, d := range deliveries {
		if d.Status() == delivery.Delivered {
			return true
		}
	}
	return false
}
