package queries

import (
	"errors"

	"pod/internal/core/domain/model/bill"
	"pod/internal/pkg/guard"
)

var ErrBillInventoryQueryIsNotConstructed = errors.New(
	"BillInventoryQuery must be created via NewBillInventoryQuery constructor",
)

// BillInventoryQuery counts bills per status.
type BillInventoryQuery struct {
	guard guard.ConstructorGuard
}

func NewBillInventoryQuery() BillInventoryQuery {
	return BillInventoryQuery{guard: guard.NewConstructorGuard()}
}

func (q BillInventoryQuery) Validate() error {
	return q.guard.Validate(ErrBillInventoryQueryIsNotConstructed)
}

// InventoryEntry is the count for one status. Statuses with no bills are omitted.
type InventoryEntry struct {
	Status bill.Status
	Count  int
}
