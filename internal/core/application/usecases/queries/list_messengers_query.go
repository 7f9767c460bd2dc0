package queries

import (
	"errors"

	"pod/internal/pkg/guard"
)

var ErrListMessengersQueryIsNotConstructed = errors.New(
	"ListMessengersQuery must be created via NewListMessengersQuery constructor",
)

// ListMessengersQuery lists every messenger account, active or not, by name.
type ListMessengersQuery struct {
	guard guard.ConstructorGuard
}

func NewListMessengersQuery() ListMessengersQuery {
	return ListMessengersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListMessengersQuery) Validate() error {
	return q.guard.Validate(ErrListMessengersQueryIsNotConstructed)
}
