package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"pod/internal/core/application/usecases/commands"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/report"
	"pod/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testNow   = time.Date(2025, 3, 15, 0, 5, 0, 0, time.Local)
	yesterday = report.DayPeriod(time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local))
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Handle(ctx context.Context, cmd commands.GenerateDailyReportCommand) (*report.Report, error) {
	args := m.Called(ctx, cmd)
	if r := args.Get(0); r != nil {
		return r.(*report.Report), args.Error(1)
	}
	return nil, args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newReport(t *testing.T) *report.Report {
	t.Helper()
	r, err := report.NewReport(kernel.NewUUID(), report.Content{
		Type:        report.DailySituationReport,
		ReportDate:  yesterday.Start,
		Period:      yesterday,
		GeneratedAt: testNow,
	})
	require.NoError(t, err)
	return r
}

func TestDailyReportJob_RunOnce(t *testing.T) {
	ctx := t.Context()
	generator := &MockGenerator{}
	generator.On("Handle", ctx, mock.MatchedBy(func(cmd commands.GenerateDailyReportCommand) bool {
		return report.DayPeriod(cmd.ReportDate()) == yesterday && cmd.CoordinatorID() == nil
	})).Return(newReport(t), nil).Once()

	job := jobs.NewDailyReportJob(generator, "", kernel.FixedClock{At: testNow}, discardLogger())

	require.NoError(t, job.RunOnce(ctx))
	generator.AssertExpectations(t)
}

func TestDailyReportJob_RunOnce_CoversLateActivity(t *testing.T) {
	ctx := t.Context()
	lateBill := time.Date(2025, 3, 14, 23, 58, 30, 0, time.Local)

	var got commands.GenerateDailyReportCommand
	generator := &MockGenerator{}
	generator.On("Handle", ctx, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(commands.GenerateDailyReportCommand) }).
		Return(newReport(t), nil).Once()

	job := jobs.NewDailyReportJob(generator, "", kernel.FixedClock{At: testNow}, discardLogger())
	require.NoError(t, job.RunOnce(ctx))

	period := report.DayPeriod(got.ReportDate())
	assert.True(t, period.Contains(lateBill))
	assert.False(t, period.Contains(testNow))
}

func TestDailyReportJob_RunOnce_ReturnsGeneratorError(t *testing.T) {
	ctx := t.Context()
	storeErr := errors.New("store unavailable")
	generator := &MockGenerator{}
	generator.On("Handle", ctx, mock.Anything).Return(nil, storeErr).Once()

	job := jobs.NewDailyReportJob(generator, "", kernel.FixedClock{At: testNow}, discardLogger())

	assert.ErrorIs(t, job.RunOnce(ctx), storeErr)
}

func TestDailyReportJob_StartRejectsBadSchedule(t *testing.T) {
	job := jobs.NewDailyReportJob(&MockGenerator{}, "every night", kernel.FixedClock{At: testNow}, discardLogger())

	assert.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	job := jobs.NewDailyReportJob(&MockGenerator{}, jobs.DefaultDailyReportSchedule, kernel.FixedClock{At: testNow}, discardLogger())
	manager := jobs.NewJobManager(job)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestJobManager_StartAllFails(t *testing.T) {
	job := jobs.NewDailyReportJob(&MockGenerator{}, "* *", kernel.FixedClock{At: testNow}, discardLogger())

	assert.Error(t, jobs.NewJobManager(job).StartAll())
}
