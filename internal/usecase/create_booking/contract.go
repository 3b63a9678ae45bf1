package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindOverlapping(ctx context.Context, eventTypeID int64, start, end time.Time) ([]*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// EventTypeRepository интерфейс репозитория типов встреч
type EventTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.EventType, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчики бронирований
type Metrics interface {
	IncBookingsCreated()
	IncBookingConflicts()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
