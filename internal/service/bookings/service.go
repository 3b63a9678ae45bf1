package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SchedulerService/internal/service/bookings/models"
	"github.com/m04kA/SMC-SchedulerService/pkg/ptr"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Cancel удаляет бронирование
// Права доступа не проверяются: отменить может любой, кто знает ID
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.metrics.IncBookingsCancelled()
	s.logger.Info("Cancel: booking id=%d cancelled", id)
	return nil
}

// ListForUser получает бронирования всех типов встреч пользователя
// и делит их на предстоящие и прошедшие относительно текущего времени
func (s *Service) ListForUser(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("ListForUser: fetching bookings for user=%d", userID)

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{UserID: ptr.Ptr(userID)})
	if err != nil {
		s.logger.Error("ListForUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListForUser - repository error: %v", ErrInternal, err)
	}

	resp := models.SplitByTime(bookings, s.timeProvider.Now())

	s.logger.Info("ListForUser: user=%d upcoming=%d past=%d", userID, len(resp.Upcoming), len(resp.Past))
	return resp, nil
}
