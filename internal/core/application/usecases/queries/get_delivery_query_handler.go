package queries

import (
	"context"

	"pod/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle returns an ObjectNotFoundError when the delivery does not exist.
func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (DeliveryDetail, error) {
	if err := query.Validate(); err != nil {
		return DeliveryDetail{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.DeliveryID()

	var rows []deliveryRow
	if err := selectDeliveries(db).Where("d.id = ?", id.Bytes()).Limit(1).Scan(&rows).Error; err != nil {
		return DeliveryDetail{}, err
	}
	if len(rows) == 0 {
		return DeliveryDetail{}, errs.NewObjectNotFoundError("delivery", id.String())
	}

	view, err := rows[0].toView()
	if err != nil {
		return DeliveryDetail{}, err
	}

	images := make([]ProofImageView, 0, view.ProofCount)
	err = db.Raw(`
		SELECT url, "timestamp", size
		FROM proof_images
		WHERE delivery_id = ?
		ORDER BY position
	`, id.Bytes()).Scan(&images).Error
	if err != nil {
		return DeliveryDetail{}, err
	}

	return DeliveryDetail{DeliveryView: view, ProofImages: images}, nil
}
