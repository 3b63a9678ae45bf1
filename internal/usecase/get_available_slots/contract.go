package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// EventTypeRepository интерфейс репозитория типов встреч
type EventTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.EventType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
