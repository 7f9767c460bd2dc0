package commands

import (
	"context"

	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/user"
	"pod/internal/pkg/errs"
)

// AssignBillsCommandHandler assigns bills one at a time. Every bill gets its
// own unit of work: the bill turns assigned and a delivery in assigned status
// is created for it. A failing bill is reported and the batch continues.
type AssignBillsCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewAssignBillsCommandHandler(uowFactory UoWFactory, clock kernel.Clock) AssignBillsCommandHandler {
	return AssignBillsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle fails as a whole only when the command is invalid or the messenger
// cannot be found.
func (h AssignBillsCommandHandler) Handle(ctx context.Context, cmd AssignBillsCommand) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	if err := h.checkMessenger(ctx, cmd.MessengerID()); err != nil {
		return BatchResult{}, err
	}

	coordinatorID := cmd.CoordinatorID()

	var result BatchResult
	for i, billID := range cmd.BillIDs() {
		if err := h.assign(ctx, billID, cmd.MessengerID(), &coordinatorID); err != nil {
			result.fail(i, billID.String(), err)
			continue
		}
		result.Succeeded = append(result.Succeeded, billID)
	}

	return result, nil
}

func (h AssignBillsCommandHandler) checkMessenger(ctx context.Context, messengerID kernel.UUID) error {
	_, err := getMessenger(ctx, h.uowFactory.Create().UserRepository(), messengerID)
	return err
}

func (h AssignBillsCommandHandler) assign(
	ctx context.Context,
	billID, messengerID kernel.UUID,
	coordinatorID *kernel.UUID,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock.Now()

	b, err := uow.BillRepository().Get(ctx, billID)
	if err != nil {
		return err
	}

	if err = b.Assign(messengerID, now); err != nil {
		return err
	}

	d, err := delivery.NewDelivery(kernel.NewUUID(), b, messengerID, coordinatorID, now)
	if err != nil {
		return err
	}

	if err = uow.BillRepository().Update(ctx, b); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type userGetter interface {
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}

// getMessenger treats a user with another role the same as a missing one.
func getMessenger(ctx context.Context, users userGetter, id kernel.UUID) (*user.User, error) {
	u, err := users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !u.IsMessenger() {
		return nil, errs.NewObjectNotFoundError("messenger", id.String())
	}
	return u, nil
}
