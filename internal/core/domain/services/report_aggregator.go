package services

import (
	"math"
	"sort"
	"time"

	"pod/internal/core/domain/model/bill"
	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/report"
	"pod/internal/core/domain/model/user"
)

// Stage names and default durations of the critical path.
const (
	StageRouteAssignment   = "Route Assignment"
	StageDeliveryExecution = "Delivery Execution"
	StageProofCapture      = "Proof Capture"
	StageProofVerification = "Proof Verification"
	StageReporting         = "Reporting"

	DefaultAssignmentDuration   = 30 * time.Minute
	DefaultExecutionDuration    = 480 * time.Minute
	DefaultProofCaptureDuration = 120 * time.Minute
	DefaultVerificationDuration = 60 * time.Minute
	ReportingDuration           = 30 * time.Minute

	// UnroutedLabel groups bills that have no route.
	UnroutedLabel = "unrouted"
)

// ReportInput is what the aggregator needs for one window.
//
// Bills are the bills created inside Period. ReferencedBills are the bills
// pointed at by Deliveries, which may be older than the window; they are used
// only for lookups (bill type and creation time), never counted as processed.
type ReportInput struct {
	ID              kernel.UUID
	Period          report.Period
	Bills           []*bill.Bill
	ReferencedBills []*bill.Bill
	Deliveries      []*delivery.Delivery
	Messengers      []*user.User
	CoordinatorID   *kernel.UUID
	Now             time.Time
}

// ReportAggregator computes daily situation reports.
//
// The critical path is a fixed serial chain of five stages, so its length is
// simply the sum of the stage durations. Stage durations come from averages of
// the observed timestamps in the window, or from defaults when nothing was
// observed:
//
//	Route Assignment    bill.createdAt      -> delivery.createdAt   (30m)
//	Delivery Execution  delivery.createdAt  -> deliveryDate         (480m)
//	Proof Capture       deliveryDate        -> first proof          (120m)
//	Proof Verification  deliveryDate        -> verifiedAt           (60m)
//	Reporting           fixed                                       (30m)
type ReportAggregator struct{}

func NewReportAggregator() ReportAggregator {
	return ReportAggregator{}
}

// Aggregate builds the report for in.Period. It never fails on individual
// malformed records; those are left out of the samples. Bills and deliveries
// created outside the period are not counted; such bills still serve lookups.
func (a ReportAggregator) Aggregate(in ReportInput) (*report.Report, error) {
	billsByID := make(map[kernel.UUID]*bill.Bill, len(in.Bills)+len(in.ReferencedBills))
	for _, b := range in.ReferencedBills {
		billsByID[b.ID()] = b
	}
	for _, b := range in.Bills {
		billsByID[b.ID()] = b
	}

	in.Bills = createdWithin(in.Period, in.Bills)
	in.Deliveries = createdWithin(in.Period, in.Deliveries)

	return report.NewReport(in.ID, report.Content{
		Type:                 report.DailySituationReport,
		ReportDate:           in.Period.Start,
		Period:               in.Period,
		CoordinatorID:        in.CoordinatorID,
		Summary:              a.summarize(in.Bills, in.Deliveries, billsByID),
		MessengerPerformance: a.messengerPerformance(in.Messengers, in.Deliveries),
		RoutePerformance:     a.routePerformance(in.Bills),
		CriticalPath:         a.criticalPath(in.Deliveries, billsByID, in.Now),
		GeneratedAt:          in.Now,
	})
}

func (a ReportAggregator) summarize(
	bills []*bill.Bill,
	deliveries []*delivery.Delivery,
	billsByID map[kernel.UUID]*bill.Bill,
) report.Summary {
	s := report.Summary{TotalBillsProcessed: len(bills)}

	for _, b := range bills {
		if b.IsDisconnectionNotice() {
			s.TotalDisconnectionNotices++
		}
	}

	for _, d := range deliveries {
		switch d.Status() {
		case delivery.Delivered:
			s.TotalBillsDelivered++
			if b, ok := billsByID[d.BillID()]; ok && b.IsDisconnectionNotice() {
				s.NoticesDelivered++
			}
		case delivery.Failed:
			s.FailureCount++
		}
	}

	s.DeliveryRate = percentage(s.TotalBillsDelivered, s.TotalBillsProcessed)
	return s
}

func (a ReportAggregator) messengerPerformance(
	messengers []*user.User,
	deliveries []*delivery.Delivery,
) []report.MessengerPerformance {
	result := make([]report.MessengerPerformance, 0, len(messengers))

	for _, m := range messengers {
		if !m.IsMessenger() {
			continue
		}
		p := report.MessengerPerformance{MessengerID: m.ID(), MessengerName: m.Name()}
		for _, d := range deliveries {
			if !d.MessengerID().IsEqual(m.ID()) {
				continue
			}
			p.Assigned++
			switch d.Status() {
			case delivery.Delivered:
				p.Delivered++
			case delivery.Failed:
				p.Failed++
			}
		}
		p.PerformanceScore = percentage(p.Delivered, p.Assigned)
		result = append(result, p)
	}

	return result
}

func (a ReportAggregator) routePerformance(bills []*bill.Bill) []report.RoutePerformance {
	byRoute := make(map[string]*report.RoutePerformance)

	for _, b := range bills {
		route := b.Route()
		if route == "" {
			route = UnroutedLabel
		}
		p, ok := byRoute[route]
		if !ok {
			p = &report.RoutePerformance{Route: route, Area: b.Area()}
			byRoute[route] = p
		}
		if p.Area == "" {
			p.Area = b.Area()
		}
		p.BillsProcessed++
		if b.Status() == bill.Delivered {
			p.BillsDelivered++
		}
	}

	result := make([]report.RoutePerformance, 0, len(byRoute))
	for _, p := range byRoute {
		p.CompletionRate = percentage(p.BillsDelivered, p.BillsProcessed)
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Route < result[j].Route })
	return result
}

func (a ReportAggregator) criticalPath(
	deliveries []*delivery.Delivery,
	billsByID map[kernel.UUID]*bill.Bill,
	now time.Time,
) report.CriticalPath {
	var assignment, execution, proofCapture, verification []time.Duration

	for _, d := range deliveries {
		created := d.CreatedAt()

		if b, ok := billsByID[d.BillID()]; ok && !b.CreatedAt().IsZero() && !created.IsZero() {
			assignment = append(assignment, created.Sub(b.CreatedAt()))
		}

		deliveredAt := d.DeliveryDate()
		if deliveredAt == nil || deliveredAt.IsZero() {
			continue
		}
		if !created.IsZero() {
			execution = append(execution, deliveredAt.Sub(created))
		}
		if first, ok := d.FirstProof(); ok && !first.Timestamp().IsZero() {
			proofCapture = append(proofCapture, first.Timestamp().Sub(*deliveredAt))
		}
		if verifiedAt := d.VerifiedAt(); verifiedAt != nil && !verifiedAt.IsZero() {
			verification = append(verification, verifiedAt.Sub(*deliveredAt))
		}
	}

	durations := []struct {
		name     string
		duration time.Duration
	}{
		{StageRouteAssignment, averageOr(assignment, DefaultAssignmentDuration)},
		{StageDeliveryExecution, averageOr(execution, DefaultExecutionDuration)},
		{StageProofCapture, averageOr(proofCapture, DefaultProofCaptureDuration)},
		{StageProofVerification, averageOr(verification, DefaultVerificationDuration)},
		{StageReporting, ReportingDuration},
	}

	var (
		total  time.Duration
		stages = make([]report.Stage, 0, len(durations))
		prev   = "Start"
	)
	for _, d := range durations {
		stages = append(stages, report.Stage{
			Name:       d.name,
			Duration:   int(roundHalfUp(float64(d.duration) / float64(time.Minute))),
			Dependency: prev,
		})
		total += d.duration
		prev = d.name
	}

	return report.CriticalPath{
		Stages:              stages,
		EstimatedCompletion: now.Add(total),
	}
}

// averageOr returns the mean of samples rounded to whole milliseconds, or
// fallback when there are no samples.
func averageOr(samples []time.Duration, fallback time.Duration) time.Duration {
	if len(samples) == 0 {
		return fallback
	}
	var sum float64
	for _, s := range samples {
		sum += float64(s.Milliseconds())
	}
	return time.Duration(roundHalfUp(sum/float64(len(samples)))) * time.Millisecond
}

func percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) * 100 / float64(whole)
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func createdWithin[T interface{ CreatedAt() time.Time }](p report.Period, items []T) []T {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if p.Contains(item.CreatedAt()) {
			kept = append(kept, item)
		}
	}
	return kept
}
