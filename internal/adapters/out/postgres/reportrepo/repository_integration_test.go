package reportrepo_test

import (
	"context"
	"testing"
	"time"

	"pod/internal/adapters/out/postgres/pgtest"
	"pod/internal/adapters/out/postgres/reportrepo"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/report"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// ReportRepositoryIntegrationTestSuite verifies that report snapshots survive
// the JSON column round trip.
type ReportRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *reportrepo.GormReportRepository
}

func (suite *ReportRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *ReportRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.repository = reportrepo.NewGormReportRepository(suite.db)
}

func (suite *ReportRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ReportRepositoryIntegrationTestSuite) TestAdd_ThenList_RoundTripsNestedContent() {
	ctx := context.Background()
	original := suite.createReport(time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local), true)

	suite.Require().NoError(suite.repository.Add(ctx, original))

	reports, err := suite.repository.List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(reports, 1)

	got := reports[0]
	suite.True(original.ID().IsEqual(got.ID()))
	suite.Equal(report.DailySituationReport, got.Type())
	suite.True(original.ReportDate().Equal(got.ReportDate()))
	suite.True(original.Period().Start.Equal(got.Period().Start))
	suite.True(original.Period().End.Equal(got.Period().End))
	suite.Require().NotNil(got.CoordinatorID())
	suite.True(original.CoordinatorID().IsEqual(*got.CoordinatorID()))
	suite.Equal(original.Summary(), got.Summary())
	suite.Equal(original.MessengerPerformance(), got.MessengerPerformance())
	suite.Equal(original.RoutePerformance(), got.RoutePerformance())
	suite.Equal(original.CriticalPath().Stages, got.CriticalPath().Stages)
	suite.True(original.CriticalPath().EstimatedCompletion.Equal(got.CriticalPath().EstimatedCompletion))
	suite.True(original.GeneratedAt().Equal(got.GeneratedAt()))
}

func (suite *ReportRepositoryIntegrationTestSuite) TestList_NewestFirstAndNilCoordinator() {
	ctx := context.Background()
	older := suite.createReport(time.Date(2025, 3, 13, 0, 0, 0, 0, time.Local), false)
	newer := suite.createReport(time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local), false)
	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	reports, err := suite.repository.List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(reports, 2)
	suite.True(newer.ID().IsEqual(reports[0].ID()))
	suite.True(older.ID().IsEqual(reports[1].ID()))
	suite.Nil(reports[0].CoordinatorID())
}

func (suite *ReportRepositoryIntegrationTestSuite) createReport(day time.Time, withCoordinator bool) *report.Report {
	generatedAt := day.Add(23*time.Hour + 55*time.Minute)

	var coordinatorID *kernel.UUID
	if withCoordinator {
		id := kernel.NewUUID()
		coordinatorID = &id
	}

	r, err := report.NewReport(kernel.NewUUID(), report.Content{
		Type:          report.DailySituationReport,
		ReportDate:    day,
		Period:        report.DayPeriod(day),
		CoordinatorID: coordinatorID,
		Summary: report.Summary{
			TotalBillsProcessed:       10,
			TotalBillsDelivered:       6,
			TotalDisconnectionNotices: 2,
			NoticesDelivered:          1,
			FailureCount:              4,
			DeliveryRate:              60,
		},
		MessengerPerformance: []report.MessengerPerformance{
			{MessengerID: kernel.NewUUID(), MessengerName: "Ana", Assigned: 6, Delivered: 4, Failed: 2, PerformanceScore: 66.66666666666667},
			{MessengerID: kernel.NewUUID(), MessengerName: "Ben"},
		},
		RoutePerformance: []report.RoutePerformance{
			{Route: "R-1", Area: "North", BillsProcessed: 7, BillsDelivered: 5, CompletionRate: 71.42857142857143},
			{Route: "unrouted", BillsProcessed: 3, BillsDelivered: 1, CompletionRate: 33.333333333333336},
		},
		CriticalPath: report.CriticalPath{
			Stages: []report.Stage{
				{Name: "Route Assignment", Duration: 30, Dependency: "Start"},
				{Name: "Delivery Execution", Duration: 480, Dependency: "Route Assignment"},
				{Name: "Proof Capture", Duration: 120, Dependency: "Delivery Execution"},
				{Name: "Proof Verification", Duration: 60, Dependency: "Proof Capture"},
				{Name: "Reporting", Duration: 30, Dependency: "Proof Verification"},
			},
			EstimatedCompletion: generatedAt.Add(720 * time.Minute),
		},
		GeneratedAt: generatedAt,
	})
	suite.Require().NoError(err)
	return r
}

func TestReportRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReportRepositoryIntegrationTestSuite))
}
