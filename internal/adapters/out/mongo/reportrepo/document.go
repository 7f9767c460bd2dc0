package reportrepo

import (
	"time"

	"pod/internal/adapters/out/reportdoc"
	"pod/internal/core/domain/model/report"
)

type ReportDocument struct {
	ID                   string                           `bson:"_id"`
	Type                 string                           `bson:"reportType"`
	ReportDate           time.Time                        `bson:"reportDate"`
	PeriodStart          time.Time                        `bson:"periodStart"`
	PeriodEnd            time.Time                        `bson:"periodEnd"`
	CoordinatorID        string                           `bson:"coordinatorId,omitempty"`
	Summary              reportdoc.Summary                `bson:"summary"`
	MessengerPerformance []reportdoc.MessengerPerformance `bson:"messengerPerformance"`
	RoutePerformance     []reportdoc.RoutePerformance     `bson:"routePerformance"`
	CriticalPath         reportdoc.CriticalPath           `bson:"criticalPath"`
	GeneratedAt          time.Time                        `bson:"generatedAt"`
}

func fromDomain(r *report.Report) ReportDocument {
	body := reportdoc.FromDomain(r)
	period := r.Period()

	return ReportDocument{
		ID:                   r.ID().String(),
		Type:                 r.Type().String(),
		ReportDate:           r.ReportDate(),
		PeriodStart:          period.Start,
		PeriodEnd:            period.End,
		CoordinatorID:        reportdoc.CoordinatorString(r),
		Summary:              body.Summary,
		MessengerPerformance: body.MessengerPerformance,
		RoutePerformance:     body.RoutePerformance,
		CriticalPath:         body.CriticalPath,
		GeneratedAt:          r.GeneratedAt(),
	}
}

func toDomain(doc ReportDocument) (*report.Report, error) {
	return reportdoc.ToDomain(reportdoc.Header{
		ID:            doc.ID,
		Type:          doc.Type,
		ReportDate:    doc.ReportDate.Local(),
		PeriodStart:   doc.PeriodStart.Local(),
		PeriodEnd:     doc.PeriodEnd.Local(),
		CoordinatorID: doc.CoordinatorID,
		GeneratedAt:   doc.GeneratedAt.Local(),
	}, reportdoc.Body{
		Summary:              doc.Summary,
		MessengerPerformance: doc.MessengerPerformance,
		RoutePerformance:     doc.RoutePerformance,
		CriticalPath:         doc.CriticalPath,
	})
}
