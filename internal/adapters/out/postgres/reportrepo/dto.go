package reportrepo

import (
	"time"

	"pod/internal/adapters/out/reportdoc"
	"pod/internal/core/domain/model/report"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReportDTO stores the flat report fields as columns and the nested parts as
// JSON documents.
type ReportDTO struct {
	ID                   uuid.UUID                                           `gorm:"type:uuid;primaryKey"`
	ReportType           string                                              `gorm:"not null"`
	ReportDate           time.Time                                           `gorm:"not null;index"`
	PeriodStart          time.Time                                           `gorm:"not null"`
	PeriodEnd            time.Time                                           `gorm:"not null"`
	CoordinatorID        *uuid.UUID                                          `gorm:"type:uuid"`
	Summary              datatypes.JSONType[reportdoc.Summary]               `gorm:"type:jsonb"`
	MessengerPerformance datatypes.JSONSlice[reportdoc.MessengerPerformance] `gorm:"type:jsonb"`
	RoutePerformance     datatypes.JSONSlice[reportdoc.RoutePerformance]     `gorm:"type:jsonb"`
	CriticalPath         datatypes.JSONType[reportdoc.CriticalPath]          `gorm:"type:jsonb"`
	GeneratedAt          time.Time                                           `gorm:"not null"`
}

func (ReportDTO) TableName() string {
	return "reports"
}

func fromDomain(r *report.Report) ReportDTO {
	body := reportdoc.FromDomain(r)

	var coordinatorID *uuid.UUID
	if id := r.CoordinatorID(); id != nil {
		raw := id.Bytes()
		coordinatorID = &raw
	}

	return ReportDTO{
		ID:                   r.ID().Bytes(),
		ReportType:           r.Type().String(),
		ReportDate:           r.ReportDate(),
		PeriodStart:          r.Period().Start,
		PeriodEnd:            r.Period().End,
		CoordinatorID:        coordinatorID,
		Summary:              datatypes.NewJSONType(body.Summary),
		MessengerPerformance: datatypes.NewJSONSlice(body.MessengerPerformance),
		RoutePerformance:     datatypes.NewJSONSlice(body.RoutePerformance),
		CriticalPath:         datatypes.NewJSONType(body.CriticalPath),
		GeneratedAt:          r.GeneratedAt(),
	}
}

func toDomain(dto ReportDTO) (*report.Report, error) {
	coordinator := ""
	if dto.CoordinatorID != nil {
		coordinator = dto.CoordinatorID.String()
	}

	return reportdoc.ToDomain(
		reportdoc.Header{
			ID:            dto.ID.String(),
			Type:          dto.ReportType,
			ReportDate:    dto.ReportDate,
			PeriodStart:   dto.PeriodStart,
			PeriodEnd:     dto.PeriodEnd,
			CoordinatorID: coordinator,
			GeneratedAt:   dto.GeneratedAt,
		},
		reportdoc.Body{
			Summary:              dto.Summary.Data(),
			MessengerPerformance: dto.MessengerPerformance,
			RoutePerformance:     dto.RoutePerformance,
			CriticalPath:         dto.CriticalPath.Data(),
		},
	)
}
