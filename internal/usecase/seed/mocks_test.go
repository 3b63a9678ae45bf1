package seed

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

type mockUserRepository struct{ mock.Mock }

func (m *mockUserRepository) CreateIfNotExists(ctx context.Context, user *domain.User) (*domain.User, bool, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Bool(1), args.Error(2)
}

type mockAvailabilityRepository struct{ mock.Mock }

func (m *mockAvailabilityRepository) CreateBatch(ctx context.Context, items []domain.Availability) error {
	return m.Called(ctx, items).Error(0)
}

func (m *mockAvailabilityRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Availability, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]domain.Availability)
	return items, args.Error(1)
}

type mockEventTypeRepository struct{ mock.Mock }

func (m *mockEventTypeRepository) GetBySlug(ctx context.Context, slug string) (*domain.EventType, error) {
	args := m.Called(ctx, slug)
	et, _ := args.Get(0).(*domain.EventType)
	return et, args.Error(1)
}

func (m *mockEventTypeRepository) Create(ctx context.Context, eventType *domain.EventType) (*domain.EventType, error) {
	args := m.Called(ctx, eventType)
	et, _ := args.Get(0).(*domain.EventType)
	return et, args.Error(1)
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
