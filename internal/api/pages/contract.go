package pages

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	bookingModels "github.com/m04kA/SMC-SchedulerService/internal/service/bookings/models"
	eventTypeModels "github.com/m04kA/SMC-SchedulerService/internal/service/event_types/models"
	createBooking "github.com/m04kA/SMC-SchedulerService/internal/usecase/create_booking"
	getAvailableSlots "github.com/m04kA/SMC-SchedulerService/internal/usecase/get_available_slots"
)

type EventTypeService interface {
	Overview(ctx context.Context) (*eventTypeModels.OverviewResponse, error)
	Create(ctx context.Context, req *eventTypeModels.CreateEventTypeRequest) (*eventTypeModels.EventTypeResponse, error)
	GetPublic(ctx context.Context, username, slug string) (*domain.EventType, error)
}

type BookingService interface {
	ListForUser(ctx context.Context, userID int64) (*bookingModels.BookingListResponse, error)
	Cancel(ctx context.Context, id int64) error
}

type GetAvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
