// Package reportrepo stores generated reports in PostgreSQL.
package reportrepo

import (
	"context"

	"pod/internal/core/domain/model/report"

	"gorm.io/gorm"
)

type GormReportRepository struct {
	db *gorm.DB
}

func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

func (r *GormReportRepository) Add(ctx context.Context, aggregate *report.Report) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormReportRepository) List(ctx context.Context) ([]*report.Report, error) {
	var dtos []ReportDTO
	if err := r.db.WithContext(ctx).Order("report_date DESC, generated_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	reports := make([]*report.Report, 0, len(dtos))
	for _, dto := range dtos {
		rep, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}

	return reports, nil
}
