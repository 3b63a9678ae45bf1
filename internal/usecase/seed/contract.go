package seed

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	CreateIfNotExists(ctx context.Context, user *domain.User) (*domain.User, bool, error)
}

// AvailabilityRepository интерфейс репозитория рабочих окон
type AvailabilityRepository interface {
	CreateBatch(ctx context.Context, items []domain.Availability) error
	ListByUserID(ctx context.Context, userID int64) ([]domain.Availability, error)
}

// EventTypeRepository интерфейс репозитория типов встреч
type EventTypeRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.EventType, error)
	Create(ctx context.Context, eventType *domain.EventType) (*domain.EventType, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
