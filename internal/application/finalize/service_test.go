package finalize

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kitchen_orders/internal/domain/catalog"
	domain "kitchen_orders/internal/domain/order"
	"kitchen_orders/internal/domain/repository"
	"kitchen_orders/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...logger.Field)               {}
func (nopLogger) Info(string, ...logger.Field)                {}
func (nopLogger) Warn(string, ...logger.Field)                {}
func (nopLogger) Error(string, ...logger.Field)               {}
func (nopLogger) Fatal(string, ...logger.Field)               {}
func (n nopLogger) WithContext(context.Context) logger.Logger { return n }
func (n nopLogger) WithFields(...logger.Field) logger.Logger  { return n }
func (nopLogger) Sync() error                                 { return nil }

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByDate(ctx context.Context, orderDate string) ([]domain.Line, error) {
	args := m.Called(ctx, orderDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Line), args.Error(1)
}

func (m *MockOrderRepository) Upsert(ctx context.Context, line *domain.Line) (*domain.Line, error) {
	args := m.Called(ctx, line)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Line), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, id string, update repository.LineUpdate) (*domain.Line, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Line), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSyncLogRepository struct {
	mock.Mock
}

func (m *MockSyncLogRepository) Append(ctx context.Context, entry *domain.SyncLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockForwarder struct {
	mock.Mock
}

func (m *MockForwarder) SendOrder(ctx context.Context, payload domain.PartnerPayload) domain.SyncOutcome {
	args := m.Called(ctx, payload)
	return args.Get(0).(domain.SyncOutcome)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishSyncEvent(ctx context.Context, event domain.SyncEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

const testDate = "2030-06-15"

func dayLines() []domain.Line {
	return []domain.Line{
		{
			ID:             "l1",
			OrderDate:      testDate,
			DishID:         "d1",
			AssignedCookID: "c1",
			Quantity:       100,
			Status:         domain.StatusPending,
			Dish:           &catalog.Dish{ID: "d1", Name: "Schnitzel"},
			AssignedCook:   &catalog.Cook{ID: "c1", Name: "Moshe Cohen"},
		},
		{
			ID:             "l2",
			OrderDate:      testDate,
			DishID:         "d2",
			AssignedCookID: "c2",
			Quantity:       80,
			Status:         domain.StatusPending,
			Dish:           &catalog.Dish{ID: "d2", Name: "Pasta"},
			AssignedCook:   &catalog.Cook{ID: "c2", Name: "Sarah Levi"},
		},
	}
}

func statusUpdateTo(want string) interface{} {
	return mock.MatchedBy(func(u repository.LineUpdate) bool {
		return u.Status != nil && *u.Status == want &&
			u.Quantity == nil && u.Notes == nil && u.AssignedCookID == nil
	})
}

func TestFinalize_NothingToFinalize(t *testing.T) {
	orders := new(MockOrderRepository)
	syncLogs := new(MockSyncLogRepository)
	forwarder := new(MockForwarder)
	svc := NewService(orders, syncLogs, forwarder, nil, nopLogger{})

	ctx := context.Background()
	orders.On("FindByDate", ctx, testDate).Return([]domain.Line{}, nil)

	_, err := svc.Finalize(ctx, testDate)

	assert.ErrorIs(t, err, domain.ErrNothingToFinalize)
	forwarder.AssertNotCalled(t, "SendOrder", mock.Anything, mock.Anything)
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestFinalize_SuccessCompletesAllLines(t *testing.T) {
	orders := new(MockOrderRepository)
	syncLogs := new(MockSyncLogRepository)
	forwarder := new(MockForwarder)
	events := new(MockEventPublisher)
	svc := NewService(orders, syncLogs, forwarder, events, nopLogger{})

	ctx := context.Background()
	orders.On("FindByDate", ctx, testDate).Return(dayLines(), nil)
	forwarder.On("SendOrder", ctx, mock.MatchedBy(func(p domain.PartnerPayload) bool {
		return p.OrderDate == testDate && p.TotalDishes == 180 && len(p.Items) == 2
	})).Return(domain.SyncOutcome{Success: true}).Once()
	orders.On("Update", ctx, "l1", statusUpdateTo(domain.StatusCompleted)).Return(&domain.Line{ID: "l1"}, nil)
	orders.On("Update", ctx, "l2", statusUpdateTo(domain.StatusCompleted)).Return(&domain.Line{ID: "l2"}, nil)
	syncLogs.On("Append", ctx, mock.MatchedBy(func(e *domain.SyncLog) bool {
		return e.SyncStatus == domain.SyncSuccess
	})).Return(nil).Twice()
	events.On("PublishSyncEvent", ctx, mock.MatchedBy(func(ev domain.SyncEvent) bool {
		return ev.Success && ev.OrderDate == testDate && ev.ItemsCount == 2
	})).Return(nil)

	summary, err := svc.Finalize(ctx, testDate)

	require.NoError(t, err)
	assert.True(t, summary.ExternalSync)
	assert.Equal(t, 180, summary.TotalDishes)
	assert.Equal(t, 2, summary.ItemsCount)
	orders.AssertExpectations(t)
	syncLogs.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestFinalize_ConnectionErrorCancelsAllLines(t *testing.T) {
	orders := new(MockOrderRepository)
	syncLogs := new(MockSyncLogRepository)
	forwarder := new(MockForwarder)
	svc := NewService(orders, syncLogs, forwarder, nil, nopLogger{})

	ctx := context.Background()
	orders.On("FindByDate", ctx, testDate).Return(dayLines(), nil)
	forwarder.On("SendOrder", ctx, mock.Anything).Return(domain.SyncOutcome{
		ErrorType: domain.OutcomeConnectionError,
		Error:     "partner request failed: connection refused",
	})
	orders.On("Update", ctx, "l1", statusUpdateTo(domain.StatusCancelled)).Return(&domain.Line{ID: "l1"}, nil)
	orders.On("Update", ctx, "l2", statusUpdateTo(domain.StatusCancelled)).Return(&domain.Line{ID: "l2"}, nil)
	syncLogs.On("Append", ctx, mock.MatchedBy(func(e *domain.SyncLog) bool {
		return e.SyncStatus == domain.SyncFailed && e.ErrorMessage != ""
	})).Return(nil).Twice()

	summary, err := svc.Finalize(ctx, testDate)

	require.NoError(t, err)
	assert.False(t, summary.ExternalSync)
	assert.Contains(t, summary.ExternalError, "connection refused")
	orders.AssertExpectations(t)
	syncLogs.AssertExpectations(t)
}

func TestFinalize_SkippedAlsoCancels(t *testing.T) {
	orders := new(MockOrderRepository)
	syncLogs := new(MockSyncLogRepository)
	forwarder := new(MockForwarder)
	svc := NewService(orders, syncLogs, forwarder, nil, nopLogger{})

	ctx := context.Background()
	orders.On("FindByDate", ctx, testDate).Return(dayLines(), nil)
	forwarder.On("SendOrder", ctx, mock.Anything).Return(domain.SyncOutcome{
		Skipped:   true,
		ErrorType: domain.OutcomeSkipped,
		Error:     "PARTNER_API_URL not configured",
	})
	orders.On("Update", ctx, mock.Anything, statusUpdateTo(domain.StatusCancelled)).
		Return(&domain.Line{}, nil).Twice()
	syncLogs.On("Append", ctx, mock.MatchedBy(func(e *domain.SyncLog) bool {
		return e.SyncStatus == domain.SyncFailed
	})).Return(nil).Twice()

	summary, err := svc.Finalize(ctx, testDate)

	require.NoError(t, err)
	assert.False(t, summary.ExternalSync)
	orders.AssertExpectations(t)
}

func TestFinalize_SyncLogFailureIsSwallowed(t *testing.T) {
	orders := new(MockOrderRepository)
	syncLogs := new(MockSyncLogRepository)
	forwarder := new(MockForwarder)
	svc := NewService(orders, syncLogs, forwarder, nil, nopLogger{})

	ctx := context.Background()
	orders.On("FindByDate", ctx, testDate).Return(dayLines()[:1], nil)
	forwarder.On("SendOrder", ctx, mock.Anything).Return(domain.SyncOutcome{Success: true})
	orders.On("Update", ctx, "l1", mock.Anything).Return(&domain.Line{ID: "l1"}, nil)
	syncLogs.On("Append", ctx, mock.Anything).Return(errors.New("log table unavailable"))

	summary, err := svc.Finalize(ctx, testDate)

	require.NoError(t, err)
	assert.True(t, summary.ExternalSync)
}

func TestFinalize_EventPublishFailureIsSwallowed(t *testing.T) {
	orders := new(MockOrderRepository)
	syncLogs := new(MockSyncLogRepository)
	forwarder := new(MockForwarder)
	events := new(MockEventPublisher)
	svc := NewService(orders, syncLogs, forwarder, events, nopLogger{})

	ctx := context.Background()
	orders.On("FindByDate", ctx, testDate).Return(dayLines()[:1], nil)
	forwarder.On("SendOrder", ctx, mock.Anything).Return(domain.SyncOutcome{Success: true})
	orders.On("Update", ctx, "l1", mock.Anything).Return(&domain.Line{ID: "l1"}, nil)
	syncLogs.On("Append", ctx, mock.Anything).Return(nil)
	events.On("PublishSyncEvent", ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := svc.Finalize(ctx, testDate)

	require.NoError(t, err)
	events.AssertExpectations(t)
}

func TestFinalize_StatusUpdateFailureIsFatal(t *testing.T) {
	orders := new(MockOrderRepository)
	syncLogs := new(MockSyncLogRepository)
	forwarder := new(MockForwarder)
	svc := NewService(orders, syncLogs, forwarder, nil, nopLogger{})

	ctx := context.Background()
	orders.On("FindByDate", ctx, testDate).Return(dayLines()[:1], nil)
	forwarder.On("SendOrder", ctx, mock.Anything).Return(domain.SyncOutcome{Success: true})
	orders.On("Update", ctx, "l1", mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := svc.Finalize(ctx, testDate)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "update line")
	syncLogs.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}
