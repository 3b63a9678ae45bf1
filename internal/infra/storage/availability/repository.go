package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/psqlbuilder"
)

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)

// Repository репозиторий рабочих окон пользователя
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch вставляет несколько рабочих окон одним запросом
func (r *Repository) CreateBatch(ctx context.Context, items []domain.Availability) error {
	if len(items) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("availabilities").
		Columns("user_id", "day_of_week", "start_time", "end_time")
	for _, item := range items {
		insert = insert.Values(item.UserID, int(item.DayOfWeek), item.StartTime, item.EndTime)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateBatch - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// ListByUserID получает рабочие окна пользователя по дням недели
func (r *Repository) ListByUserID(ctx context.Context, userID int64) ([]domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "user_id", "day_of_week", "start_time", "end_time").
		From("availabilities").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("day_of_week ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.Availability, 0)
	for rows.Next() {
		var (
			item domain.Availability
			day  int
		)
		if err := rows.Scan(&item.ID, &item.UserID, &day, &item.StartTime, &item.EndTime); err != nil {
			return nil, fmt.Errorf("%w: ListByUserID - scan row: %w", ErrScanRow, err)
		}
		item.DayOfWeek = time.Weekday(day)
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUserID - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}
