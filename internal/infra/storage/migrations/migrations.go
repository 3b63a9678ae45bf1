package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"

	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/psqlbuilder"
)

//go:embed sql/*.sql
var files embed.FS

var fileNamePattern = regexp.MustCompile(`^(\d+)_([a-z0-9_]+)\.sql$`)

var (
	// ErrInvalidFileName возвращается для файла миграции с неверным именем
	ErrInvalidFileName = errors.New("migrations: invalid migration file name")

	// ErrDuplicateVersion возвращается, если две миграции имеют одну версию
	ErrDuplicateVersion = errors.New("migrations: duplicate migration version")

	// ErrApply возвращается при ошибке применения миграции
	ErrApply = errors.New("migrations: failed to apply migration")
)

// Migration одна SQL миграция
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Migrator применяет встроенные миграции, отмечая применённые версии в schema_migrations
type Migrator struct {
	db        dbmetrics.DBExecutor
	txManager TransactionManager
	logger    Logger
	source    fs.FS
}

// NewMigrator создает мигратор для встроенных миграций
func NewMigrator(db dbmetrics.DBExecutor, txManager TransactionManager, logger Logger) *Migrator {
	return &Migrator{
		db:        db,
		txManager: txManager,
		logger:    logger,
		source:    files,
	}
}

// Up применяет все ещё не применённые миграции по возрастанию версии
// Каждая миграция выполняется в своей транзакции вместе с записью версии
func (m *Migrator) Up(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INTEGER PRIMARY KEY,
		name       VARCHAR(255) NOT NULL,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`); err != nil {
		return fmt.Errorf("%w: create schema_migrations: %v", ErrApply, err)
	}

	migrations, err := Load(m.source)
	if err != nil {
		return err
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if applied[migration.Version] {
			continue
		}

		err := m.txManager.Do(ctx, func(txCtx context.Context) error {
			executor := dbmetrics.GetExecutor(txCtx, m.db)

			if _, err := executor.ExecContext(txCtx, migration.SQL); err != nil {
				return err
			}

			query, args, err := psqlbuilder.Insert("schema_migrations").
				Columns("version", "name").
				Values(migration.Version, migration.Name).
				ToSql()
			if err != nil {
				return err
			}

			_, err = executor.ExecContext(txCtx, query, args...)
			return err
		})
		if err != nil {
			return fmt.Errorf("%w: %03d_%s: %v", ErrApply, migration.Version, migration.Name, err)
		}

		m.logger.Info("Migrations: applied %03d_%s", migration.Version, migration.Name)
	}

	return nil
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[int]bool, error) {
	query, args, err := psqlbuilder.Select("version").
		From("schema_migrations").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build select: %v", ErrApply, err)
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: read applied versions: %v", ErrApply, err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("%w: scan version: %v", ErrApply, err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

// Load читает миграции из fsys (каталог sql/) и сортирует их по версии
func Load(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, "sql")
	if err != nil {
		return nil, fmt.Errorf("migrations: read dir: %w", err)
	}

	migrations := make([]Migration, 0, len(entries))
	seen := make(map[int]string)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		match := fileNamePattern.FindStringSubmatch(entry.Name())
		if match == nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFileName, entry.Name())
		}

		version, err := strconv.Atoi(match[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFileName, entry.Name())
		}
		if prev, ok := seen[version]; ok {
			return nil, fmt.Errorf("%w: %s and %s", ErrDuplicateVersion, prev, entry.Name())
		}
		seen[version] = entry.Name()

		body, err := fs.ReadFile(fsys, path.Join("sql", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("migrations: read %s: %w", entry.Name(), err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    match[2],
			SQL:     string(body),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}
