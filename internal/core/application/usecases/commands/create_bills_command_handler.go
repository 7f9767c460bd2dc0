package commands

import (
	"context"

	"pod/internal/core/domain/model/bill"
	"pod/internal/core/domain/model/kernel"
)

// CreateBillsCommandHandler stores each bill in its own unit of work and
// reports per-item results.
//
// Example:
//
//	cmd, _ := NewCreateBillsCommand(details)
//	result, err := handler.Handle(ctx, cmd)
//	// result.Count() bills were created; result.Failed explains the rest
type CreateBillsCommandHandler struct {
	uowFactory BillUoWFactory
	clock      kernel.Clock
}

func NewCreateBillsCommandHandler(uowFactory BillUoWFactory, clock kernel.Clock) CreateBillsCommandHandler {
	return CreateBillsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns an error only when the command itself is invalid.
func (h CreateBillsCommandHandler) Handle(ctx context.Context, cmd CreateBillsCommand) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	for i, details := range cmd.Bills() {
		b, err := bill.NewBill(kernel.NewUUID(), details, h.clock.Now())
		if err != nil {
			result.fail(i, "", err)
			continue
		}

		if err := h.store(ctx, b); err != nil {
			result.fail(i, b.ID().String(), err)
			continue
		}
		result.Succeeded = append(result.Succeeded, b.ID())
	}

	return result, nil
}

func (h CreateBillsCommandHandler) store(ctx context.Context, b *bill.Bill) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.BillRepository().Add(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
