package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/booking"
	eventTypeRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/event_type"
	"github.com/m04kA/SMC-SchedulerService/pkg/pgerrors"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	eventTypeRepo EventTypeRepository
	txManager     TransactionManager
	metrics       Metrics
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	eventTypeRepo EventTypeRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		eventTypeRepo: eventTypeRepo,
		txManager:     txManager,
		metrics:       metrics,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка пересечения и вставка выполняются в одной SERIALIZABLE транзакции,
// пересекающиеся строки блокируются через FOR UPDATE. Если конкурентная транзакция всё же
// успела вставить пересекающийся интервал, сработает EXCLUDE ограничение bookings_no_overlap
// или ошибка сериализации; оба случая возвращаются как ErrSlotConflict.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: eventType=%d, start=%s, duration=%d",
		req.EventTypeID, req.StartTime.Format(time.RFC3339), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Проверка пересечений и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем тип встречи
		eventType, err := uc.eventTypeRepo.GetByID(txCtx, req.EventTypeID)
		if err != nil {
			if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
				uc.logger.Warn("CreateBooking: event type id=%d not found", req.EventTypeID)
				return ErrEventTypeNotFound
			}
			if pgerrors.IsSerializationFailure(err) {
				return ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to get event type id=%d: %v", req.EventTypeID, err)
			return fmt.Errorf("%w: failed to get event type: %v", ErrInternal, err)
		}

		// 2.2. Вычисляем конец интервала
		duration, err := resolveDuration(req, eventType)
		if err != nil {
			uc.logger.Warn("CreateBooking: %v", err)
			return err
		}
		start := req.StartTime
		end := start.Add(time.Duration(duration) * time.Minute)

		// 2.3. Ищем пересекающиеся бронирования (с блокировкой FOR UPDATE)
		overlapping, err := uc.bookingRepo.FindOverlapping(txCtx, eventType.ID, start, end)
		if err != nil {
			if pgerrors.IsSerializationFailure(err) {
				return ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to find overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to find overlapping bookings: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBooking: [%s, %s) overlaps booking id=%d",
				start.Format(time.RFC3339), end.Format(time.RFC3339), overlapping[0].ID)
			return ErrSlotConflict
		}

		// 2.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			EventTypeID: eventType.ID,
			BookerName:  req.BookerName,
			BookerEmail: req.BookerEmail,
			StartTime:   start,
			EndTime:     end,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrOverlap) || pgerrors.IsSerializationFailure(err) {
				uc.logger.Warn("CreateBooking: concurrent booking rejected by database: %v", err)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		created.EventTypeTitle = eventType.Title
		result = created
		return nil
	})

	if err != nil {
		// Ошибка сериализации может прийти при коммите
		if pgerrors.IsSerializationFailure(err) {
			err = ErrSlotConflict
		}
		if errors.Is(err, ErrSlotConflict) {
			uc.metrics.IncBookingConflicts()
			return nil, err
		}
		if errors.Is(err, ErrEventTypeNotFound) || errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.IncBookingsCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:             result.ID,
		EventTypeID:    result.EventTypeID,
		EventTypeTitle: result.EventTypeTitle,
		BookerName:     result.BookerName,
		BookerEmail:    result.BookerEmail,
		StartTime:      result.StartTime,
		EndTime:        result.EndTime,
		CreatedAt:      result.CreatedAt,
	}, nil
}
