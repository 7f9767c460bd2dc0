package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pod/internal/core/application/eventhandlers"
	"pod/internal/core/application/usecases/commands"
	"pod/internal/core/domain/model/bill"
	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/report"
	"pod/internal/core/domain/model/user"
	"pod/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

type MockBillRepository struct{ mock.Mock }

func (m *MockBillRepository) Add(ctx context.Context, b *bill.Bill) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBillRepository) Update(ctx context.Context, b *bill.Bill) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBillRepository) Get(ctx context.Context, id kernel.UUID) (*bill.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bill.Bill), args.Error(1)
}

func (m *MockBillRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*bill.Bill, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bill.Bill), args.Error(1)
}

func (m *MockBillRepository) FindCreatedBetween(ctx context.Context, p report.Period) ([]*bill.Bill, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bill.Bill), args.Error(1)
}

func (m *MockBillRepository) FindAssignedTo(ctx context.Context, id kernel.UUID) ([]*bill.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bill.Bill), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) FindByBill(ctx context.Context, id kernel.UUID) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) FindCreatedBetween(ctx context.Context, p report.Period) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) DeleteByMessenger(ctx context.Context, id kernel.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW serves every UoW flavour; tests wire only the repositories a
// handler is expected to touch.
type MockUoW struct {
	mock.Mock
	bills      *MockBillRepository
	deliveries *MockDeliveryRepository
	users      *MockUserRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		bills:      new(MockBillRepository),
		deliveries: new(MockDeliveryRepository),
		users:      new(MockUserRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) BillRepository() ports.BillRepository         { return m.bills }
func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository { return m.deliveries }
func (m *MockUoW) UserRepository() ports.UserRepository         { return m.users }

func (m *MockUoW) assertAll(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.bills.AssertExpectations(t)
	m.deliveries.AssertExpectations(t)
	m.users.AssertExpectations(t)
}

// expectTx registers Begin, Commit and the deferred Rollback.
func (m *MockUoW) expectTx(ctx context.Context) {
	m.On("Begin", ctx).Return(nil).Once()
	m.On("Commit", ctx).Return(nil).Once()
	m.On("Rollback", ctx).Return(nil).Once()
}

// expectRollbackOnly registers Begin and the deferred Rollback for paths that
// must not commit.
func (m *MockUoW) expectRollbackOnly(ctx context.Context) {
	m.On("Begin", ctx).Return(nil).Once()
	m.On("Rollback", ctx).Return(nil).Once()
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	return m.Called().Get(0).(commands.UserUoW)
}

type MockBillUoWFactory struct{ mock.Mock }

func (m *MockBillUoWFactory) Create() commands.BillUoW {
	return m.Called().Get(0).(commands.BillUoW)
}

type MockEventDispatcher struct{ mock.Mock }

func (m *MockEventDispatcher) Dispatch(ctx context.Context, repos eventhandlers.Repositories, events []delivery.Event) error {
	return m.Called(ctx, repos, events).Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, events ...delivery.Event) error {
	return m.Called(ctx, events).Error(0)
}

type MockProofStorage struct{ mock.Mock }

func (m *MockProofStorage) Store(ctx context.Context, deliveryID kernel.UUID, imageData string) (string, error) {
	args := m.Called(ctx, deliveryID, imageData)
	return args.String(0), args.Error(1)
}

type MockReportRepository struct{ mock.Mock }

func (m *MockReportRepository) Add(ctx context.Context, r *report.Report) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReportRepository) List(ctx context.Context) ([]*report.Report, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*report.Report), args.Error(1)
}

func newEvents(dispatcher *MockEventDispatcher, publisher *MockEventPublisher) commands.DeliveryEvents {
	return commands.NewDeliveryEvents(dispatcher, publisher, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func clock() kernel.FixedClock {
	return kernel.FixedClock{At: testNow}
}

func newTestBill(t *testing.T) *bill.Bill {
	t.Helper()
	b, err := bill.NewBill(kernel.NewUUID(), bill.Details{
		AccountNumber: "ACC-100",
		CustomerName:  "Maria Santos",
		Address:       "12 Rizal St",
		Route:         "R1",
		Area:          "North",
	}, testNow.Add(-24*time.Hour))
	require.NoError(t, err)
	return b
}

func newTestUser(t *testing.T, role user.Role) *user.User {
	t.Helper()
	id := kernel.NewUUID()
	u, err := user.NewUser(id, "Juan Cruz", id.String()[:8]+"@pod.local", "secret1", role, user.Profile{Area: "North"}, testNow)
	require.NoError(t, err)
	return u
}

func newTestDelivery(t *testing.T, messengerID kernel.UUID) (*bill.Bill, *delivery.Delivery) {
	t.Helper()
	b := newTestBill(t)
	require.NoError(t, b.Assign(messengerID, testNow))
	d, err := delivery.NewDelivery(kernel.NewUUID(), b, messengerID, nil, testNow)
	require.NoError(t, err)
	return b, d
}
