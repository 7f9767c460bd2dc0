package billrepo

import (
	"context"
	"errors"

	"pod/internal/core/domain/model/bill"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/report"
	"pod/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormBillRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormBillRepository(db *gorm.DB, tracker aggregateTracker) *GormBillRepository {
	return &GormBillRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormBillRepository) Add(ctx context.Context, aggregate *bill.Bill) error {
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

// Update writes every column so that clearing the assignee is persisted.
func (r *GormBillRepository) Update(ctx context.Context, aggregate *bill.Bill) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BillDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("bill", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormBillRepository) Get(ctx context.Context, id kernel.UUID) (*bill.Bill, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BillDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bill", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormBillRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*bill.Bill, error) {
	if len(ids) == 0 {
		return []*bill.Bill{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []BillDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormBillRepository) FindCreatedBetween(ctx context.Context, period report.Period) ([]*bill.Bill, error) {
	var dtos []BillDTO
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at <= ?", period.Start, period.End).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormBillRepository) FindAssignedTo(ctx context.Context, messengerID kernel.UUID) ([]*bill.Bill, error) {
	var dtos []BillDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "assigned_to = ?", messengerID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}
