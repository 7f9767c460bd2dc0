package deliveryrepo

import (
	"context"
	"errors"

	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/report"
	"pod/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the delivery row and inserts proof images whose position
// is not stored yet. Existing images are never rewritten.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", aggregate.ID().String())
	}

	if len(dto.ProofImages) > 0 {
		err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.ProofImages).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.withImages(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDeliveryRepository) FindByBill(ctx context.Context, billID kernel.UUID) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	if err := r.withImages(ctx).Order("created_at").Find(&dtos, "bill_id = ?", billID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormDeliveryRepository) FindCreatedBetween(
	ctx context.Context,
	period report.Period,
) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	err := r.withImages(ctx).
		Where("created_at >= ? AND created_at <= ?", period.Start, period.End).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// DeleteByMessenger relies on the proof_images foreign key cascade.
func (r *GormDeliveryRepository) DeleteByMessenger(ctx context.Context, messengerID kernel.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("messenger_id = ?", messengerID.Bytes()).Delete(&DeliveryDTO{})
	return result.RowsAffected, result.Error
}

func (r *GormDeliveryRepository) withImages(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("ProofImages", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
