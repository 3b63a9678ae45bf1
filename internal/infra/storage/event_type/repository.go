package event_type

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/pgerrors"
	"github.com/m04kA/SMC-SchedulerService/pkg/psqlbuilder"
)

// DBExecutor интерфейс исполнителя запросов
type DBExecutor = dbmetrics.DBExecutor

var eventTypeColumns = []string{
	"et.id",
	"et.user_id",
	"et.title",
	"et.slug",
	"et.duration_minutes",
	"et.description",
	"et.created_at",
	"u.id",
	"u.username",
	"u.email",
	"u.created_at",
}

// Repository репозиторий для работы с типами встреч
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов встреч
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый тип встречи
// Нарушение уникальности slug возвращается как ErrDuplicateSlug
func (r *Repository) Create(ctx context.Context, eventType *domain.EventType) (*domain.EventType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("event_types").
		Columns(
			"user_id",
			"title",
			"slug",
			"duration_minutes",
			"description",
		).
		Values(
			eventType.UserID,
			eventType.Title,
			eventType.Slug,
			eventType.DurationMinutes,
			eventType.Description,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&eventType.ID,
		&eventType.CreatedAt,
	)

	if pgerrors.IsUniqueViolation(err) {
		return nil, fmt.Errorf("%w: Create - slug=%s", ErrDuplicateSlug, eventType.Slug)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return eventType, nil
}

// GetByID получает тип встречи по ID вместе с владельцем
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.EventType, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"et.id": id})
}

// GetBySlug получает тип встречи по slug вместе с владельцем
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.EventType, error) {
	return r.getOne(ctx, "GetBySlug", squirrel.Eq{"et.slug": slug})
}

// ListByUserID получает все типы встреч пользователя в порядке создания
func (r *Repository) ListByUserID(ctx context.Context, userID int64) ([]*domain.EventType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(eventTypeColumns...).
		From("event_types et").
		Join("users u ON u.id = et.user_id").
		Where(squirrel.Eq{"et.user_id": userID}).
		OrderBy("et.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	eventTypes := make([]*domain.EventType, 0)
	for rows.Next() {
		eventType, err := scanEventType(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByUserID - scan row: %w", ErrScanRow, err)
		}
		eventTypes = append(eventTypes, eventType)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUserID - rows error: %w", ErrScanRow, err)
	}

	return eventTypes, nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.EventType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(eventTypeColumns...).
		From("event_types et").
		Join("users u ON u.id = et.user_id").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	eventType, err := scanEventType(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan event type: %w", ErrScanRow, op, err)
	}

	return eventType, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEventType(row rowScanner) (*domain.EventType, error) {
	var (
		eventType   domain.EventType
		owner       domain.User
		description sql.NullString
	)

	err := row.Scan(
		&eventType.ID,
		&eventType.UserID,
		&eventType.Title,
		&eventType.Slug,
		&eventType.DurationMinutes,
		&description,
		&eventType.CreatedAt,
		&owner.ID,
		&owner.Username,
		&owner.Email,
		&owner.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		eventType.Description = &description.String
	}
	eventType.Owner = &owner

	return &eventType, nil
}
