package event_types

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// EventTypeRepository интерфейс репозитория типов встреч
type EventTypeRepository interface {
	Create(ctx context.Context, eventType *domain.EventType) (*domain.EventType, error)
	GetBySlug(ctx context.Context, slug string) (*domain.EventType, error)
	ListByUserID(ctx context.Context, userID int64) ([]*domain.EventType, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
