package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pod/internal/core/application/usecases/commands"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/report"

	"github.com/robfig/cron/v3"
)

// DefaultDailyReportSchedule runs the job at 00:05:00 every day, after the
// day it reports on has closed.
const DefaultDailyReportSchedule = "0 5 0 * * *"

const dailyReportTimeout = 5 * time.Minute

// DailyReportGenerator is satisfied by commands.GenerateDailyReportCommandHandler.
type DailyReportGenerator interface {
	Handle(ctx context.Context, cmd commands.GenerateDailyReportCommand) (*report.Report, error)
}

// DailyReportJob generates the daily situation report for the previous day on
// a cron schedule. Scheduled reports carry no coordinator.
type DailyReportJob struct {
	generator DailyReportGenerator
	schedule  string
	clock     kernel.Clock
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewDailyReportJob creates the job. schedule is a six-field cron expression
// (seconds first); an empty schedule means DefaultDailyReportSchedule.
func NewDailyReportJob(
	generator DailyReportGenerator,
	schedule string,
	clock kernel.Clock,
	logger *slog.Logger,
) *DailyReportJob {
	if schedule == "" {
		schedule = DefaultDailyReportSchedule
	}
	return &DailyReportJob{
		generator: generator,
		schedule:  schedule,
		clock:     clock,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "daily_report_job"),
	}
}

// Start registers the job with its schedule and starts the scheduler.
func (j *DailyReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), dailyReportTimeout)
		defer cancel()

		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Daily report job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily report job started", "schedule", j.schedule)
	return nil
}

// RunOnce generates the report for the day before the clock's current day.
func (j *DailyReportJob) RunOnce(ctx context.Context) error {
	cmd, err := commands.NewGenerateDailyReportCommand(j.clock.Now().AddDate(0, 0, -1), nil)
	if err != nil {
		return err
	}

	r, err := j.generator.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "Daily report generated",
		"reportId", r.ID().String(),
		"reportDate", r.ReportDate().Format(time.DateOnly),
		"deliveryRate", r.Summary().DeliveryRate,
	)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *DailyReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Daily report job stopped")
}
