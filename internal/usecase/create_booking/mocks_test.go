package create_booking

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/booking"
)

type mockBookingRepository struct{ mock.Mock }

func (m *mockBookingRepository) FindOverlapping(ctx context.Context, eventTypeID int64, start, end time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, eventTypeID, start, end)
	bookings, _ := args.Get(0).([]*domain.Booking)
	return bookings, args.Error(1)
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	created, _ := args.Get(0).(*domain.Booking)
	return created, args.Error(1)
}

type mockEventTypeRepository struct{ mock.Mock }

func (m *mockEventTypeRepository) GetByID(ctx context.Context, id int64) (*domain.EventType, error) {
	args := m.Called(ctx, id)
	et, _ := args.Get(0).(*domain.EventType)
	return et, args.Error(1)
}

type mockMetrics struct{ mock.Mock }

func (m *mockMetrics) IncBookingsCreated()  { m.Called() }
func (m *mockMetrics) IncBookingConflicts() { m.Called() }

// serialTx выполняет транзакции строго по одной
type serialTx struct {
	mu sync.Mutex
}

func (s *serialTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx)
}

type errTx struct{ err error }

func (e errTx) DoSerializable(context.Context, func(ctx context.Context) error) error {
	return e.err
}

// memoryBookings хранилище бронирований в памяти
// Как и EXCLUDE ограничение в БД, отклоняет пересекающиеся вставки
type memoryBookings struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
}

func (s *memoryBookings) FindOverlapping(_ context.Context, eventTypeID int64, start, end time.Time) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*domain.Booking
	for _, b := range s.bookings {
		if b.EventTypeID == eventTypeID && b.Overlaps(start, end) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (s *memoryBookings) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.EventTypeID == booking.EventTypeID && b.Overlaps(booking.StartTime, booking.EndTime) {
			return nil, bookingRepo.ErrOverlap
		}
	}

	s.nextID++
	booking.ID = s.nextID
	s.bookings = append(s.bookings, booking)
	return booking, nil
}

type nopMetrics struct{}

func (nopMetrics) IncBookingsCreated()  {}
func (nopMetrics) IncBookingConflicts() {}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
