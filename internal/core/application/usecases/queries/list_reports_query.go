package queries

import (
	"errors"

	"pod/internal/pkg/guard"
)

var ErrListReportsQueryIsNotConstructed = errors.New(
	"ListReportsQuery must be created via NewListReportsQuery constructor",
)

// ListReportsQuery lists stored reports, newest report date first.
type ListReportsQuery struct {
	guard guard.ConstructorGuard
}

func NewListReportsQuery() ListReportsQuery {
	return ListReportsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListReportsQuery) Validate() error {
	return q.guard.Validate(ErrListReportsQueryIsNotConstructed)
}
