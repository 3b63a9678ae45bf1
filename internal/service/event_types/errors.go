package event_types

import "errors"

var (
	// ErrSlugTaken возвращается, когда slug уже занят
	ErrSlugTaken = errors.New("event_types: slug already exists")

	// ErrEventTypeNotFound возвращается, когда тип встречи не найден или принадлежит другому пользователю
	ErrEventTypeNotFound = errors.New("event_types: event type not found")

	// ErrUserNotFound возвращается, когда администратор не найден
	ErrUserNotFound = errors.New("event_types: user not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("event_types: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("event_types: internal error")
)
