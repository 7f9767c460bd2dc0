package commands

import (
	"context"

	"pod/internal/core/domain/model/bill"
	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/report"
	"pod/internal/core/domain/model/user"
	"pod/internal/core/domain/services"
	"pod/internal/core/ports"
)

// GenerateDailyReportCommandHandler reads one day of bills and deliveries,
// aggregates them and stores the resulting report. The reads share one
// transaction so the snapshot is consistent; the report store may live
// outside PostgreSQL and is written afterwards.
type GenerateDailyReportCommandHandler struct {
	uowFactory UoWFactory
	reports    ports.ReportRepository
	aggregator services.ReportAggregator
	clock      kernel.Clock
}

func NewGenerateDailyReportCommandHandler(
	uowFactory UoWFactory,
	reports ports.ReportRepository,
	aggregator services.ReportAggregator,
	clock kernel.Clock,
) GenerateDailyReportCommandHandler {
	return GenerateDailyReportCommandHandler{
		uowFactory: uowFactory,
		reports:    reports,
		aggregator: aggregator,
		clock:      clock,
	}
}

func (h GenerateDailyReportCommandHandler) Handle(ctx context.Context, cmd GenerateDailyReportCommand) (*report.Report, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	input, err := h.collect(ctx, report.DayPeriod(cmd.ReportDate()))
	if err != nil {
		return nil, err
	}
	input.ID = kernel.NewUUID()
	input.CoordinatorID = cmd.CoordinatorID()
	input.Now = h.clock.Now()

	r, err := h.aggregator.Aggregate(input)
	if err != nil {
		return nil, err
	}

	if err = h.reports.Add(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (h GenerateDailyReportCommandHandler) collect(ctx context.Context, period report.Period) (services.ReportInput, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.ReportInput{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bills, err := uow.BillRepository().FindCreatedBetween(ctx, period)
	if err != nil {
		return services.ReportInput{}, err
	}

	deliveries, err := uow.DeliveryRepository().FindCreatedBetween(ctx, period)
	if err != nil {
		return services.ReportInput{}, err
	}

	referenced, err := uow.BillRepository().GetMany(ctx, missingBillIDs(bills, deliveries))
	if err != nil {
		return services.ReportInput{}, err
	}

	messengers, err := uow.UserRepository().FindByRole(ctx, user.Messenger)
	if err != nil {
		return services.ReportInput{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.ReportInput{}, err
	}

	return services.ReportInput{
		Period:          period,
		Bills:           bills,
		ReferencedBills: referenced,
		Deliveries:      deliveries,
		Messengers:      messengers,
	}, nil
}

// missingBillIDs lists the bills referenced by deliveries but created before the window.
func missingBillIDs(bills []*bill.Bill, deliveries []*delivery.Delivery) []kernel.UUID {
	known := make(map[kernel.UUID]struct{}, len(bills))
	for _, b := range bills {
		known[b.ID()] = struct{}{}
	}

	var ids []kernel.UUID
	for _, d := range deliveries {
		if _, ok := known[d.BillID()]; ok {
			continue
		}
		known[d.BillID()] = struct{}{}
		ids = append(ids, d.BillID())
	}
	return ids
}
