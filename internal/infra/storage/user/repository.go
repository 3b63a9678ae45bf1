package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/psqlbuilder"
)

// DBExecutor интерфейс исполнителя запросов
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с пользователями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// CreateIfNotExists создает пользователя, если пользователя с таким email или username ещё нет
// Возвращает созданного или уже существующего пользователя и флаг created
func (r *Repository) CreateIfNotExists(ctx context.Context, u *domain.User) (*domain.User, bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("username", "email").
		Values(u.Username, u.Email).
		Suffix("ON CONFLICT DO NOTHING RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, false, fmt.Errorf("%w: CreateIfNotExists - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Конфликт по любому из уникальных полей: email или username
		existing, err := r.getOne(ctx, "CreateIfNotExists", squirrel.Or{
			squirrel.Eq{"email": u.Email},
			squirrel.Eq{"username": u.Username},
		})
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: CreateIfNotExists - execute insert: %w", ErrExecQuery, err)
	}

	return u, true, nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "username", "email", "created_at").
		From("users").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var u domain.User
	err = executor.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %w", ErrScanRow, op, err)
	}

	return &u, nil
}
