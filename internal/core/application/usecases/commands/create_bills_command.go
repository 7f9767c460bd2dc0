package commands

import (
	"errors"

	"pod/internal/core/domain/model/bill"
	"pod/internal/pkg/errs"
	"pod/internal/pkg/guard"
)

var ErrCreateBillsCommandIsNotConstructed = errors.New(
	"CreateBillsCommand must be created via NewCreateBillsCommand constructor",
)

// CreateBillsCommand enters a batch of bills. Each entry is validated when
// the bill is built, so one bad entry does not reject the batch.
type CreateBillsCommand struct {
	bills []bill.Details

	guard guard.ConstructorGuard
}

func NewCreateBillsCommand(bills []bill.Details) (CreateBillsCommand, error) {
	if len(bills) == 0 {
		return CreateBillsCommand{}, errs.NewValueIsRequiredError("bills")
	}

	return CreateBillsCommand{
		bills: append([]bill.Details(nil), bills...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateBillsCommand) Validate() error {
	return c.guard.Validate(ErrCreateBillsCommandIsNotConstructed)
}

func (c CreateBillsCommand) Bills() []bill.Details {
	return append([]bill.Details(nil), c.bills...)
}
