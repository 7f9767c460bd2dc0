package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListDeliveriesQueryHandler(db *gorm.DB) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{db: db}
}

func (h ListDeliveriesQueryHandler) Handle(ctx context.Context, query ListDeliveriesQuery) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	q := selectDeliveries(h.db.WithContext(ctx))

	f := query.Filter()
	if f.Status != nil {
		q = q.Where("d.status = ?", f.Status.String())
	}
	if f.MessengerID != nil {
		q = q.Where("d.messenger_id = ?", f.MessengerID.Bytes())
	}

	var rows []deliveryRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	return toDeliveryViews(rows)
}
