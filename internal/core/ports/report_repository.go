package ports

import (
	"context"

	"pod/internal/core/domain/model/report"
)

// ReportRepository stores generated reports. Reports are immutable, so there
// is no Update. Implementations live in PostgreSQL or MongoDB.
type ReportRepository interface {
	// Add persists a newly generated report.
	Add(ctx context.Context, r *report.Report) error

	// List returns every report, newest report date first.
	List(ctx context.Context) ([]*report.Report, error)
}
