package queries

import (
	"errors"
	"strings"
	"time"

	"pod/internal/core/domain/model/bill"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/pkg/errs"
	"pod/internal/pkg/guard"
)

var ErrListBillsQueryIsNotConstructed = errors.New(
	"ListBillsQuery must be created via NewListBillsQuery or NewBillsByRouteQuery constructor",
)

// BillFilter narrows a bill listing. Nil or empty fields match everything.
type BillFilter struct {
	Status *bill.Status
	Route  string
	Type   *bill.Type
}

// ListBillsQuery lists bills newest first.
type ListBillsQuery struct {
	filter BillFilter
	guard  guard.ConstructorGuard
}

func NewListBillsQuery(filter BillFilter) (ListBillsQuery, error) {
	var err error
	if filter.Status != nil {
		err = errors.Join(err, filter.Status.Validate())
	}
	if filter.Type != nil {
		err = errors.Join(err, filter.Type.Validate())
	}
	if err != nil {
		return ListBillsQuery{}, err
	}
	filter.Route = strings.TrimSpace(filter.Route)

	return ListBillsQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

// NewBillsByRouteQuery lists the bills of one route.
func NewBillsByRouteQuery(route string) (ListBillsQuery, error) {
	if strings.TrimSpace(route) == "" {
		return ListBillsQuery{}, errs.NewValueIsRequiredError("route")
	}
	return NewListBillsQuery(BillFilter{Route: route})
}

func (q ListBillsQuery) Validate() error {
	return q.guard.Validate(ErrListBillsQueryIsNotConstructed)
}

func (q ListBillsQuery) Filter() BillFilter { return q.filter }

// BillView is one bill with its assignee joined in.
type BillView struct {
	ID            kernel.UUID
	AccountNumber string
	CustomerName  string
	Address       string
	Route         string
	Area          string
	Type          bill.Type
	BillingMonth  *time.Time
	Amount        float64
	Quantity      int
	Notes         string
	Status        bill.Status
	AssignedTo    *PersonSummary
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
