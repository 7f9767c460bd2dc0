package queries

import (
	"context"

	"pod/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

type TrackDeliveriesQueryHandler struct {
	list ListDeliveriesQueryHandler
}

func NewTrackDeliveriesQueryHandler(db *gorm.DB) TrackDeliveriesQueryHandler {
	return TrackDeliveriesQueryHandler{list: NewListDeliveriesQueryHandler(db)}
}

func (h TrackDeliveriesQueryHandler) Handle(ctx context.Context, query TrackDeliveriesQuery) (DeliveryTracking, error) {
	if err := query.Validate(); err != nil {
		return DeliveryTracking{}, err
	}

	list, err := NewListDeliveriesQuery(DeliveryFilter{MessengerID: query.MessengerID()})
	if err != nil {
		return DeliveryTracking{}, err
	}

	views, err := h.list.Handle(ctx, list)
	if err != nil {
		return DeliveryTracking{}, err
	}

	return DeliveryTracking{Deliveries: views, Stats: countDeliveries(views)}, nil
}

func countDeliveries(views []DeliveryView) DeliveryStats {
	s := DeliveryStats{Total: len(views)}
	for _, v := range views {
		switch v.Status {
		case delivery.Delivered:
			s.Delivered++
		case delivery.Failed:
			s.Failed++
		case delivery.Pending, delivery.Assigned:
			s.Pending++
		}
		if v.VerificationStatus == delivery.VerificationVerified {
			s.Verified++
		}
	}
	return s
}
