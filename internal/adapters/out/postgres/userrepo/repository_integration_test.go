package userrepo_test

import (
	"context"
	"testing"
	"time"

	"pod/internal/adapters/out/postgres/pgtest"
	"pod/internal/adapters/out/postgres/userrepo"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/user"
	"pod/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// UserRepositoryIntegrationTestSuite verifies the user directory against PostgreSQL.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
	tracker    *MockAggregateTracker
	now        time.Time
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = userrepo.NewGormUserRepository(suite.db, suite.tracker)
	suite.now = time.Now().Truncate(time.Microsecond)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsProfile() {
	ctx := context.Background()
	u := suite.newUser("Ana Cruz", "ana@pod.local", user.Messenger)

	suite.Require().NoError(suite.repository.Add(ctx, u))

	got, err := suite.repository.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.True(u.IsEqual(got))
	suite.Equal("Ana Cruz", got.Name())
	suite.Equal("ana@pod.local", got.Email())
	suite.Equal(user.Messenger, got.Role())
	suite.Equal(user.Profile{EmployeeID: "E-1", Phone: "0917", Area: "North"}, got.Profile())
	suite.True(got.IsActive())
	suite.NoError(got.CheckPassword("secret1"))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", u.ID(), u)
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_ReturnsEmailTaken() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newUser("Ana", "ana@pod.local", user.Messenger)))

	err := suite.repository.Add(ctx, suite.newUser("Other Ana", "ANA@pod.local", user.Coordinator))
	suite.ErrorIs(err, user.ErrEmailTaken)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmail_NormalizesInput() {
	ctx := context.Background()
	u := suite.newUser("Ana", "ana@pod.local", user.Admin)
	suite.Require().NoError(suite.repository.Add(ctx, u))

	got, err := suite.repository.GetByEmail(ctx, "  Ana@POD.local ")
	suite.Require().NoError(err)
	suite.True(u.IsEqual(got))

	_, err = suite.repository.GetByEmail(ctx, "nobody@pod.local")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_PersistsDeactivation() {
	ctx := context.Background()
	u := suite.newUser("Ana", "ana@pod.local", user.Messenger)
	suite.Require().NoError(suite.repository.Add(ctx, u))

	inactive := false
	suite.Require().NoError(u.Update("Ana Reyes", "", user.Profile{Area: "South"}, &inactive, suite.now.Add(time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, u))

	got, err := suite.repository.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal("Ana Reyes", got.Name())
	suite.Equal("South", got.Profile().Area)
	suite.False(got.IsActive())
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newUser("Ana", "ana@pod.local", user.Messenger))
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestFindByRole_OrdersByName() {
	ctx := context.Background()
	for _, u := range []*user.User{
		suite.newUser("Carla", "carla@pod.local", user.Messenger),
		suite.newUser("Ben", "ben@pod.local", user.Messenger),
		suite.newUser("Alma", "alma@pod.local", user.Coordinator),
	} {
		suite.Require().NoError(suite.repository.Add(ctx, u))
	}

	messengers, err := suite.repository.FindByRole(ctx, user.Messenger)
	suite.Require().NoError(err)
	suite.Require().Len(messengers, 2)
	suite.Equal("Ben", messengers[0].Name())
	suite.Equal("Carla", messengers[1].Name())
}

func (suite *UserRepositoryIntegrationTestSuite) TestDelete_RemovesOnlyThatUser() {
	ctx := context.Background()
	keep := suite.newUser("Keep", "keep@pod.local", user.Messenger)
	drop := suite.newUser("Drop", "drop@pod.local", user.Messenger)
	suite.Require().NoError(suite.repository.Add(ctx, keep))
	suite.Require().NoError(suite.repository.Add(ctx, drop))

	suite.Require().NoError(suite.repository.Delete(ctx, drop.ID()))

	_, err := suite.repository.Get(ctx, drop.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.repository.Get(ctx, keep.ID())
	suite.NoError(err)

	suite.ErrorIs(suite.repository.Delete(ctx, drop.ID()), errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestDeleteAll_ClearsDirectory() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newUser("A", "a@pod.local", user.Admin)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newUser("B", "b@pod.local", user.Messenger)))

	deleted, err := suite.repository.DeleteAll(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(2), deleted)

	var count int64
	suite.Require().NoError(suite.db.Model(&userrepo.UserDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *UserRepositoryIntegrationTestSuite) newUser(name, email string, role user.Role) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), name, email, "secret1", role,
		user.Profile{EmployeeID: "E-1", Phone: "0917", Area: "North"}, suite.now)
	suite.Require().NoError(err)
	return u
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
