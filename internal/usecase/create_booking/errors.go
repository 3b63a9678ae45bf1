package create_booking

import "errors"

var (
	// ErrEventTypeNotFound возвращается, когда тип встречи не найден
	ErrEventTypeNotFound = errors.New("create_booking: event type not found")

	// ErrSlotConflict возвращается, когда интервал пересекается с существующим бронированием
	ErrSlotConflict = errors.New("create_booking: time slot is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
