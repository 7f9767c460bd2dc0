package report

import (
	"errors"
	"fmt"
	"time"

	"pod/internal/core/domain/model/kernel"
	"pod/internal/pkg/errs"
	"pod/internal/pkg/guard"
)

// ErrReportIsNotConstructed is returned when a Report was not built via NewReport.
var ErrReportIsNotConstructed = errors.New("Report must be created via NewReport constructor")

// Type classifies reports. Only daily situation reports are generated today;
// the other values exist so stored documents of those kinds still load.
type Type int

const (
	UnknownType Type = iota
	DailySituationReport
	PerformanceMetrics
	DeliverySummary
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType:          "unknown",
		DailySituationReport: "daily_situation_report",
		PerformanceMetrics:   "performance_metrics",
		DeliverySummary:      "delivery_summary",
	}
}

func ParseType(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if t != UnknownType && str == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("reportType", fmt.Errorf("%q is not a valid report type", s))
}

func (t Type) Validate() error {
	if t <= UnknownType || t > DeliverySummary {
		return errs.NewValueIsInvalidErrorWithCause("reportType", fmt.Errorf("%d is not a valid report type", t))
	}
	return nil
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Summary holds the scalar counts of a report.
type Summary struct {
	TotalBillsProcessed       int
	TotalBillsDelivered       int
	TotalDisconnectionNotices int
	NoticesDelivered          int
	FailureCount              int
	DeliveryRate              float64
}

// MessengerPerformance is one messenger's share of the window's deliveries.
type MessengerPerformance struct {
	MessengerID      kernel.UUID
	MessengerName    string
	Assigned         int
	Delivered        int
	Failed           int
	PerformanceScore float64
}

// RoutePerformance groups the window's bills by route.
type RoutePerformance struct {
	Route          string
	Area           string
	BillsProcessed int
	BillsDelivered int
	CompletionRate float64
}

// Stage is one step of the serial critical path. Duration is in whole minutes.
type Stage struct {
	Name       string
	Duration   int
	Dependency string
}

// CriticalPath is the five-stage serial schedule estimate.
type CriticalPath struct {
	Stages              []Stage
	EstimatedCompletion time.Time
}

// Content is everything a report carries besides its identity.
type Content struct {
	Type                 Type
	ReportDate           time.Time
	Period               Period
	CoordinatorID        *kernel.UUID
	Summary              Summary
	MessengerPerformance []MessengerPerformance
	RoutePerformance     []RoutePerformance
	CriticalPath         CriticalPath
	GeneratedAt          time.Time
}

// Report is an immutable snapshot. There are no mutators; accessors return copies.
type Report struct {
	id      kernel.UUID
	content Content
	guard   guard.ConstructorGuard
}

// NewReport builds a report, either freshly aggregated or loaded from storage.
func NewReport(id kernel.UUID, c Content) (*Report, error) {
	err := errors.Join(
		id.Validate(),
		c.Type.Validate(),
		c.Period.Validate(),
	)
	if c.ReportDate.IsZero() {
		err = errors.Join(err, errs.NewValueIsRequiredError("reportDate"))
	}
	if c.GeneratedAt.IsZero() {
		err = errors.Join(err, errs.NewValueIsRequiredError("generatedAt"))
	}
	if c.CoordinatorID != nil {
		err = errors.Join(err, c.CoordinatorID.Validate())
	}
	if err != nil {
		return nil, err
	}

	return &Report{
		id:      id,
		content: copyContent(c),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (r *Report) Validate() error {
	if r == nil {
		return ErrReportIsNotConstructed
	}
	return r.guard.Validate(ErrReportIsNotConstructed)
}

func (r *Report) ID() kernel.UUID        { return r.id }
func (r *Report) Type() Type             { return r.content.Type }
func (r *Report) ReportDate() time.Time  { return r.content.ReportDate }
func (r *Report) Period() Period         { return r.content.Period }
func (r *Report) Summary() Summary       { return r.content.Summary }
func (r *Report) GeneratedAt() time.Time { return r.content.GeneratedAt }
func (r *Report) Content() Content       { return copyContent(r.content) }
func (r *Report) CriticalPath() CriticalPath {
	return copyContent(r.content).CriticalPath
}

func (r *Report) CoordinatorID() *kernel.UUID {
	return copyContent(r.content).CoordinatorID
}

func (r *Report) MessengerPerformance() []MessengerPerformance {
	return append([]MessengerPerformance(nil), r.content.MessengerPerformance...)
}

func (r *Report) RoutePerformance() []RoutePerformance {
	return append([]RoutePerformance(nil), r.content.RoutePerformance...)
}

func copyContent(c Content) Content {
	out := c
	if c.CoordinatorID != nil {
		id := *c.CoordinatorID
		out.CoordinatorID = &id
	}
	out.MessengerPerformance = append([]MessengerPerformance(nil), c.MessengerPerformance...)
	out.RoutePerformance = append([]RoutePerformance(nil), c.RoutePerformance...)
	out.CriticalPath.Stages = append([]Stage(nil), c.CriticalPath.Stages...)
	return out
}
