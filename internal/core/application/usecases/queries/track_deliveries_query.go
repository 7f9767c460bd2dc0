package queries

import (
	"errors"

	"pod/internal/core/domain/model/kernel"
	"pod/internal/pkg/guard"
)

var ErrTrackDeliveriesQueryIsNotConstructed = errors.New(
	"TrackDeliveriesQuery must be created via NewTrackDeliveriesQuery or NewMessengerRoutesQuery constructor",
)

// TrackDeliveriesQuery returns deliveries together with their status counts.
// The coordinator form covers every delivery; the messenger form only the
// messenger's own.
type TrackDeliveriesQuery struct {
	messengerID *kernel.UUID
	guard       guard.ConstructorGuard
}

func NewTrackDeliveriesQuery() TrackDeliveriesQuery {
	return TrackDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

func NewMessengerRoutesQuery(messengerID kernel.UUID) (TrackDeliveriesQuery, error) {
	if err := messengerID.Validate(); err != nil {
		return TrackDeliveriesQuery{}, err
	}
	return TrackDeliveriesQuery{messengerID: &messengerID, guard: guard.NewConstructorGuard()}, nil
}

func (q TrackDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrTrackDeliveriesQueryIsNotConstructed)
}

func (q TrackDeliveriesQuery) MessengerID() *kernel.UUID { return q.messengerID }

// DeliveryStats counts a listing by status. Pending covers both pending and
// assigned deliveries.
type DeliveryStats struct {
	Total     int
	Delivered int
	Failed    int
	Pending   int
	Verified  int
}

type DeliveryTracking struct {
	Deliveries []DeliveryView
	Stats      DeliveryStats
}
