package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/validation"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	req.BookerName = strings.TrimSpace(req.BookerName)
	req.BookerEmail = strings.TrimSpace(req.BookerEmail)

	if err := validation.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// resolveDuration возвращает длительность бронирования
// Длительность типа встречи приоритетна: явно переданная отличающаяся длительность - ошибка
func resolveDuration(req *Request, eventType *domain.EventType) (int, error) {
	if req.DurationMinutes != 0 && req.DurationMinutes != eventType.DurationMinutes {
		return 0, fmt.Errorf("%w: duration %d does not match event type duration %d",
			ErrInvalidInput, req.DurationMinutes, eventType.DurationMinutes)
	}
	return eventType.DurationMinutes, nil
}
