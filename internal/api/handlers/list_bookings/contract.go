package list_bookings

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/service/bookings/models"
)

type BookingService interface {
	ListForUser(ctx context.Context, userID int64) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
