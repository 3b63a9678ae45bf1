package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	unique := &pq.Error{Code: CodeUniqueViolation, Constraint: "event_types_slug_key"}
	exclusion := fmt.Errorf("wrapped: %w", &pq.Error{Code: CodeExclusionViolation})
	serialization := fmt.Errorf("commit: %w", &pq.Error{Code: CodeSerializationFailure})

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(exclusion))

	assert.True(t, IsExclusionViolation(exclusion))
	assert.True(t, IsSerializationFailure(serialization))
	assert.True(t, IsSerializationFailure(&pq.Error{Code: CodeDeadlockDetected}))

	// %v теряет *pq.Error, поэтому репозитории оборачивают ошибки драйвера через %w
	flattened := fmt.Errorf("scan: %v", &pq.Error{Code: CodeSerializationFailure})
	assert.False(t, IsSerializationFailure(flattened))

	plain := errors.New("plain")
	assert.False(t, IsUniqueViolation(plain))
	assert.False(t, IsSerializationFailure(plain))
}
