package queries

import (
	"errors"

	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/pkg/guard"
)

var ErrListDeliveriesQueryIsNotConstructed = errors.New(
	"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
)

// DeliveryFilter narrows a delivery listing. Nil fields match everything.
type DeliveryFilter struct {
	Status      *delivery.Status
	MessengerID *kernel.UUID
}

// ListDeliveriesQuery lists deliveries newest first.
//
// Example:
//
//	status := delivery.Failed
//	query, err := NewListDeliveriesQuery(DeliveryFilter{Status: &status})
type ListDeliveriesQuery struct {
	filter DeliveryFilter
	guard  guard.ConstructorGuard
}

func NewListDeliveriesQuery(filter DeliveryFilter) (ListDeliveriesQuery, error) {
	var err error
	if filter.Status != nil {
		err = errors.Join(err, filter.Status.Validate())
	}
	if filter.MessengerID != nil {
		err = errors.Join(err, filter.MessengerID.Validate())
	}
	if err != nil {
		return ListDeliveriesQuery{}, err
	}

	return ListDeliveriesQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

func (q ListDeliveriesQuery) Filter() DeliveryFilter { return q.filter }
