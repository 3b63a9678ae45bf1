package event_type

import "errors"

var (
	// ErrEventTypeNotFound возвращается, когда тип встречи не найден
	ErrEventTypeNotFound = errors.New("event_type.repository: event type not found")

	// ErrDuplicateSlug возвращается при нарушении уникальности slug
	ErrDuplicateSlug = errors.New("event_type.repository: duplicate slug")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("event_type.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("event_type.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("event_type.repository: failed to scan row")
)
