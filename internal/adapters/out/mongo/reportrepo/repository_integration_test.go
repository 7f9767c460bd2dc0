package reportrepo_test

import (
	"context"
	"testing"
	"time"

	"pod/internal/adapters/out/mongo/reportrepo"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/report"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReportRepositoryIntegrationTestSuite runs the Mongo report store against a
// real MongoDB container.
type ReportRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *mongodb.MongoDBContainer
	client     *mongo.Client
	db         *mongo.Database
	repository *reportrepo.MongoReportRepository
}

func (suite *ReportRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	suite.Require().NoError(err)
	suite.container = container

	uri, err := container.ConnectionString(ctx)
	suite.Require().NoError(err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	suite.Require().NoError(err)
	suite.Require().NoError(client.Ping(ctx, nil))
	suite.client = client
	suite.db = client.Database("pod_test")
}

func (suite *ReportRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	_, err := suite.db.Collection(reportrepo.CollectionName).DeleteMany(ctx, bson.M{})
	suite.Require().NoError(err)

	suite.repository = reportrepo.NewMongoReportRepository(suite.db)
	suite.Require().NoError(suite.repository.EnsureIndexes(ctx))
}

func (suite *ReportRepositoryIntegrationTestSuite) TearDownSuite() {
	ctx := context.Background()
	if suite.client != nil {
		_ = suite.client.Disconnect(ctx)
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(ctx))
	}
}

func (suite *ReportRepositoryIntegrationTestSuite) TestAdd_ThenList_RoundTripsEveryField() {
	ctx := context.Background()
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local)
	original := suite.createReport(day, true)

	suite.Require().NoError(suite.repository.Add(ctx, original))

	reports, err := suite.repository.List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(reports, 1)

	got := reports[0]
	suite.True(original.ID().IsEqual(got.ID()))
	suite.Equal(report.DailySituationReport, got.Type())
	suite.True(original.ReportDate().Equal(got.ReportDate()))
	suite.True(original.Period().End.Equal(got.Period().End))
	suite.Require().NotNil(got.CoordinatorID())
	suite.True(original.CoordinatorID().IsEqual(*got.CoordinatorID()))
	suite.Equal(original.Summary(), got.Summary())
	suite.Equal(original.MessengerPerformance(), got.MessengerPerformance())
	suite.Equal(original.RoutePerformance(), got.RoutePerformance())
	suite.Equal(original.CriticalPath().Stages, got.CriticalPath().Stages)
	suite.True(original.CriticalPath().EstimatedCompletion.Equal(got.CriticalPath().EstimatedCompletion))
}

func (suite *ReportRepositoryIntegrationTestSuite) TestAdd_WithoutCoordinator_LoadsNilCoordinator() {
	ctx := context.Background()
	original := suite.createReport(time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local), false)

	suite.Require().NoError(suite.repository.Add(ctx, original))

	reports, err := suite.repository.List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(reports, 1)
	suite.Nil(reports[0].CoordinatorID())
}

func (suite *ReportRepositoryIntegrationTestSuite) TestAdd_NilReport_ReturnsError() {
	var nilReport *report.Report
	suite.Error(suite.repository.Add(context.Background(), nilReport))
}

func (suite *ReportRepositoryIntegrationTestSuite) TestList_NewestReportDateFirst() {
	ctx := context.Background()
	older := suite.createReport(time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local), false)
	newest := suite.createReport(time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local), false)
	middle := suite.createReport(time.Date(2025, 3, 13, 0, 0, 0, 0, time.Local), false)

	for _, r := range []*report.Report{older, newest, middle} {
		suite.Require().NoError(suite.repository.Add(ctx, r))
	}

	reports, err := suite.repository.List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(reports, 3)
	suite.True(newest.ID().IsEqual(reports[0].ID()))
	suite.True(middle.ID().IsEqual(reports[1].ID()))
	suite.True(older.ID().IsEqual(reports[2].ID()))
}

func (suite *ReportRepositoryIntegrationTestSuite) TestList_Empty_ReturnsEmptySlice() {
	reports, err := suite.repository.List(context.Background())
	suite.Require().NoError(err)
	suite.Empty(reports)
}

// createReport builds a report whose timestamps survive MongoDB's millisecond precision.
func (suite *ReportRepositoryIntegrationTestSuite) createReport(day time.Time, withCoordinator bool) *report.Report {
	generatedAt := day.Add(23*time.Hour + 55*time.Minute).Truncate(time.Millisecond)

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
			TotalBillsProcessed: 10,
			TotalBillsDelivered: 6,
			FailureCount:        4,
			DeliveryRate:        60,
		},
		MessengerPerformance: []report.MessengerPerformance{
			{MessengerID: kernel.NewUUID(), MessengerName: "Ana", Assigned: 10, Delivered: 6, Failed: 4, PerformanceScore: 60},
		},
		RoutePerformance: []report.RoutePerformance{
			{Route: "R-1", Area: "North", BillsProcessed: 10, BillsDelivered: 6, CompletionRate: 60},
		},
		CriticalPath: report.CriticalPath{
			Stages: []report.Stage{
				{Name: "Route Assignment", Duration: 30, Dependency: "Start"},
				{Name: "Delivery Execution", Duration: 480, Dependency: "Route Assignment"},
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
