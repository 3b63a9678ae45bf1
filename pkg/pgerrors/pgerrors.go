package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, которые сервис различает
const (
	CodeUniqueViolation      pq.ErrorCode = "23505"
	CodeExclusionViolation   pq.ErrorCode = "23P01"
	CodeSerializationFailure pq.ErrorCode = "40001"
	CodeDeadlockDetected     pq.ErrorCode = "40P01"
)

// Code возвращает код ошибки PostgreSQL, если err (или вложенная ошибка) - *pq.Error
func Code(err error) (pq.ErrorCode, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code, true
	}
	return "", false
}

// IsUniqueViolation нарушение UNIQUE ограничения
func IsUniqueViolation(err error) bool {
	code, ok := Code(err)
	return ok && code == CodeUniqueViolation
}

// IsExclusionViolation нарушение EXCLUDE ограничения (пересечение интервалов)
func IsExclusionViolation(err error) bool {
	code, ok := Code(err)
	return ok && code == CodeExclusionViolation
}

// IsSerializationFailure конфликт параллельных SERIALIZABLE транзакций
func IsSerializationFailure(err error) bool {
	code, ok := Code(err)
	return ok && (code == CodeSerializationFailure || code == CodeDeadlockDetected)
}
