// Package reportdoc holds the serialized form of a report shared by the
// PostgreSQL (JSON columns) and MongoDB (BSON document) report stores.
package reportdoc

import (
	"time"

	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/report"
)

type Summary struct {
	TotalBillsProcessed       int     `json:"totalBillsProcessed" bson:"totalBillsProcessed"`
	TotalBillsDelivered       int     `json:"totalBillsDelivered" bson:"totalBillsDelivered"`
	TotalDisconnectionNotices int     `json:"totalDisconnectionNotices" bson:"totalDisconnectionNotices"`
	NoticesDelivered          int     `json:"noticesDelivered" bson:"noticesDelivered"`
	FailureCount              int     `json:"failureCount" bson:"failureCount"`
	DeliveryRate              float64 `json:"deliveryRate" bson:"deliveryRate"`
}

type MessengerPerformance struct {
	MessengerID      string  `json:"messengerId" bson:"messengerId"`
	MessengerName    string  `json:"messengerName" bson:"messengerName"`
	Assigned         int     `json:"assigned" bson:"assigned"`
	Delivered        int     `json:"delivered" bson:"delivered"`
	Failed           int     `json:"failed" bson:"failed"`
	PerformanceScore float64 `json:"performanceScore" bson:"performanceScore"`
}

type RoutePerformance struct {
	Route          string  `json:"route" bson:"route"`
	Area           string  `json:"area" bson:"area"`
	BillsProcessed int     `json:"billsProcessed" bson:"billsProcessed"`
	BillsDelivered int     `json:"billsDelivered" bson:"billsDelivered"`
	CompletionRate float64 `json:"completionRate" bson:"completionRate"`
}

type Stage struct {
	Stage      string `json:"stage" bson:"stage"`
	Duration   int    `json:"duration" bson:"duration"`
	Dependency string `json:"dependency" bson:"dependency"`
}

type CriticalPath struct {
	Stages              []Stage   `json:"stages" bson:"stages"`
	EstimatedCompletion time.Time `json:"estimatedCompletion" bson:"estimatedCompletion"`
}

// Body is everything but identity, timestamps and the coordinator.
type Body struct {
	Summary              Summary
	MessengerPerformance []MessengerPerformance
	RoutePerformance     []RoutePerformance
	CriticalPath         CriticalPath
}

// FromDomain serializes the nested parts of r.
func FromDomain(r *report.Report) Body {
	c := r.Content()

	body := Body{
		Summary: Summary{
			TotalBillsProcessed:       c.Summary.TotalBillsProcessed,
			TotalBillsDelivered:       c.Summary.TotalBillsDelivered,
			TotalDisconnectionNotices: c.Summary.TotalDisconnectionNotices,
			NoticesDelivered:          c.Summary.NoticesDelivered,
			FailureCount:              c.Summary.FailureCount,
			DeliveryRate:              c.Summary.DeliveryRate,
		},
		MessengerPerformance: make([]MessengerPerformance, 0, len(c.MessengerPerformance)),
		RoutePerformance:     make([]RoutePerformance, 0, len(c.RoutePerformance)),
		CriticalPath: CriticalPath{
			Stages:              make([]Stage, 0, len(c.CriticalPath.Stages)),
			EstimatedCompletion: c.CriticalPath.EstimatedCompletion,
		},
	}

	for _, m := range c.MessengerPerformance {
		body.MessengerPerformance = append(body.MessengerPerformance, MessengerPerformance{
			MessengerID:      m.MessengerID.String(),
			MessengerName:    m.MessengerName,
			Assigned:         m.Assigned,
			Delivered:        m.Delivered,
			Failed:           m.Failed,
			PerformanceScore: m.PerformanceScore,
		})
	}
	for _, rp := range c.RoutePerformance {
		body.RoutePerformance = append(body.RoutePerformance, RoutePerformance(rp))
	}
	for _, s := range c.CriticalPath.Stages {
		body.CriticalPath.Stages = append(body.CriticalPath.Stages, Stage{
			Stage:      s.Name,
			Duration:   s.Duration,
			Dependency: s.Dependency,
		})
	}

	return body
}

// Header carries the flat report columns.
type Header struct {
	ID            string
	Type          string
	ReportDate    time.Time
	PeriodStart   time.Time
	PeriodEnd     time.Time
	CoordinatorID string
	GeneratedAt   time.Time
}

// ToDomain rebuilds a report from its header and body.
func ToDomain(h Header, body Body) (*report.Report, error) {
	id, err := kernel.UUIDFromString(h.ID)
	if err != nil {
		return nil, err
	}

	typ, err := report.ParseType(h.Type)
	if err != nil {
		return nil, err
	}

	var coordinatorID *kernel.UUID
	if h.CoordinatorID != "" {
		cID, cErr := kernel.UUIDFromString(h.CoordinatorID)
		if cErr != nil {
			return nil, cErr
		}
		coordinatorID = &cID
	}

	content := report.Content{
		Type:          typ,
		ReportDate:    h.ReportDate,
		Period:        report.Period{Start: h.PeriodStart, End: h.PeriodEnd},
		CoordinatorID: coordinatorID,
		Summary: report.Summary{
			TotalBillsProcessed:       body.Summary.TotalBillsProcessed,
			TotalBillsDelivered:       body.Summary.TotalBillsDelivered,
			TotalDisconnectionNotices: body.Summary.TotalDisconnectionNotices,
			NoticesDelivered:          body.Summary.NoticesDelivered,
			FailureCount:              body.Summary.FailureCount,
			DeliveryRate:              body.Summary.DeliveryRate,
		},
		CriticalPath: report.CriticalPath{
			EstimatedCompletion: body.CriticalPath.EstimatedCompletion,
		},
		GeneratedAt: h.GeneratedAt,
	}

	for _, m := range body.MessengerPerformance {
		mID, mErr := kernel.UUIDFromString(m.MessengerID)
		if mErr != nil {
			return nil, mErr
		}
		content.MessengerPerformance = append(content.MessengerPerformance, report.MessengerPerformance{
			MessengerID:      mID,
			MessengerName:    m.MessengerName,
			Assigned:         m.Assigned,
			Delivered:        m.Delivered,
			Failed:           m.Failed,
			PerformanceScore: m.PerformanceScore,
		})
	}
	for _, rp := range body.RoutePerformance {
		content.RoutePerformance = append(content.RoutePerformance, report.RoutePerformance(rp))
	}
	for _, s := range body.CriticalPath.Stages {
		content.CriticalPath.Stages = append(content.CriticalPath.Stages, report.Stage{
			Name:       s.Stage,
			Duration:   s.Duration,
			Dependency: s.Dependency,
		})
	}

	return report.NewReport(id, content)
}

// CoordinatorString returns the coordinator id or "" when the report has none.
func CoordinatorString(r *report.Report) string {
	if id := r.CoordinatorID(); id != nil {
		return id.String()
	}
	return ""
}
