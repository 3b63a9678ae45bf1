package get_available_slots

import "errors"

var (
	// ErrEventTypeNotFound возвращается, когда тип встречи не найден
	ErrEventTypeNotFound = errors.New("get_available_slots: event type not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
