package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	eventTypeRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/event_type"
	"github.com/m04kA/SMC-SchedulerService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// UseCase use case для получения слотов на дату
type UseCase struct {
	bookingRepo   BookingRepository
	eventTypeRepo EventTypeRepository
	window        domain.DayWindow
	location      *time.Location
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// window - дневное окно генерации слотов, location - часовой пояс сервиса
func NewUseCase(
	bookingRepo BookingRepository,
	eventTypeRepo EventTypeRepository,
	window domain.DayWindow,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		bookingRepo:   bookingRepo,
		eventTypeRepo: eventTypeRepo,
		window:        window,
		location:      location,
		logger:        logger,
	}
}

// Execute возвращает слоты генератора для типа встречи на дату
// Слот помечается недоступным, если [start, start+duration) пересекается с бронированием
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: eventType=%d, date=%s", req.EventTypeID, req.Date.Format(domain.DateFormat))

	if req.EventTypeID <= 0 {
		return nil, fmt.Errorf("%w: eventTypeId must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	eventType, err := uc.eventTypeRepo.GetByID(ctx, req.EventTypeID)
	if err != nil {
		if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
			uc.logger.Warn("GetAvailableSlots: event type id=%d not found", req.EventTypeID)
			return nil, ErrEventTypeNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get event type id=%d: %v", req.EventTypeID, err)
		return nil, fmt.Errorf("%w: failed to get event type: %v", ErrInternal, err)
	}

	starts, err := domain.GenerateSlots(uc.window, eventType.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)
	slots, err := buildSlots(date, uc.location, starts, eventType.Duration())
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build slots: %v", err)
		return nil, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:            date,
		EventTypeID:     eventType.ID,
		DurationMinutes: eventType.DurationMinutes,
		Slots:           slots,
	}
	if len(slots) == 0 {
		return resp, nil
	}

	// Бронирования, пересекающиеся с диапазоном всех слотов дня
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		EventTypeID: ptr.Ptr(eventType.ID),
		From:        ptr.Ptr(slots[0].StartsAt),
		To:          ptr.Ptr(slots[len(slots)-1].EndsAt),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	markBooked(resp.Slots, bookings)

	return resp, nil
}

// buildSlots переводит время начала слотов в абсолютное время на дату
func buildSlots(date time.Time, loc *time.Location, starts []types.TimeString, duration time.Duration) ([]Slot, error) {
	slots := make([]Slot, 0, len(starts))
	for _, start := range starts {
		startsAt, err := start.On(date, loc)
		if err != nil {
			return nil, err
		}
		slots = append(slots, Slot{
			StartTime: start,
			StartsAt:  startsAt,
			EndsAt:    startsAt.Add(duration),
			Available: true,
		})
	}
	return slots, nil
}

// markBooked помечает слоты, пересекающиеся хотя бы с одним бронированием
func markBooked(slots []Slot, bookings []*domain.Booking) {
	for i := range slots {
		for _, booking := range bookings {
			if booking.Overlaps(slots[i].StartsAt, slots[i].EndsAt) {
				slots[i].Available = false
				break
			}
		}
	}
}
