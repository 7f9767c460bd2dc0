package queries

import (
	"context"

	"pod/internal/core/domain/model/report"
	"pod/internal/core/ports"
)

// ListReportsQueryHandler reads through the report repository rather than
// GORM, because reports may be kept in MongoDB.
type ListReportsQueryHandler struct {
	reports ports.ReportRepository
}

func NewListReportsQueryHandler(reports ports.ReportRepository) ListReportsQueryHandler {
	return ListReportsQueryHandler{reports: reports}
}

func (h ListReportsQueryHandler) Handle(ctx context.Context, query ListReportsQuery) ([]*report.Report, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.reports.List(ctx)
}
