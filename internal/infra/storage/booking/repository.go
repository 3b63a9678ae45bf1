package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/pgerrors"
	"github.com/m04kA/SMC-SchedulerService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"b.id",
	"b.event_type_id",
	"b.booker_name",
	"b.booker_email",
	"b.start_time",
	"b.end_time",
	"b.created_at",
	"et.title",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Нарушение EXCLUDE ограничения bookings_no_overlap возвращается как ErrOverlap
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"event_type_id",
			"booker_name",
			"booker_email",
			"start_time",
			"end_time",
		).
		Values(
			booking.EventTypeID,
			booking.BookerName,
			booking.BookerEmail,
			booking.StartTime,
			booking.EndTime,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CreatedAt,
	)

	if pgerrors.IsExclusionViolation(err) {
		return nil, fmt.Errorf("%w: Create - %v", ErrOverlap, err)
	}
	if err != nil {
		// %w сохраняет *pq.Error для распознавания ошибок сериализации выше
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("event_types et ON et.id = b.event_type_id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// FindOverlapping возвращает бронирования типа встречи, пересекающиеся с [start, end)
// Условие пересечения: existing.start_time < end AND existing.end_time > start
//
// Внутри транзакции добавляется FOR UPDATE: найденные строки блокируются до конца транзакции
func (r *Repository) FindOverlapping(ctx context.Context, eventTypeID int64, start, end time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildOverlapQuery(eventTypeID, start, end, dbmetrics.IsInTransaction(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// List получает бронирования с фильтрацией, отсортированные по времени начала (ASC)
//
// Примеры использования:
//
// 1. Все бронирования типов встреч пользователя:
//    filter := domain.BookingsFilter{UserID: ptr.Ptr(int64(1))}
//
// 2. Бронирования типа встречи на день:
//    filter := domain.BookingsFilter{EventTypeID: &id, From: &dayStart, To: &dayEnd}
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("event_types et ON et.id = b.event_type_id")

	if filter.EventTypeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.event_type_id": *filter.EventTypeID})
	}
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"et.user_id": *filter.UserID})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"b.end_time": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"b.start_time": *filter.To})
	}

	query, args, err := selectBuilder.OrderBy("b.start_time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Delete удаляет бронирование (физическое удаление)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func buildOverlapQuery(eventTypeID int64, start, end time.Time, forUpdate bool) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("event_types et ON et.id = b.event_type_id").
		Where(squirrel.Eq{"b.event_type_id": eventTypeID}).
		Where(squirrel.Lt{"b.start_time": end}).
		Where(squirrel.Gt{"b.end_time": start}).
		OrderBy("b.start_time ASC")

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	return selectBuilder.ToSql()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking

	err := row.Scan(
		&booking.ID,
		&booking.EventTypeID,
		&booking.BookerName,
		&booking.BookerEmail,
		&booking.StartTime,
		&booking.EndTime,
		&booking.CreatedAt,
		&booking.EventTypeTitle,
	)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
