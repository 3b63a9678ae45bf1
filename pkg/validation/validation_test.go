package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string `json:"name" validate:"required,max=5"`
	Email    string `json:"email" validate:"required,email"`
	Slug     string `json:"slug" validate:"required,max=10"`
	Duration int    `json:"duration" validate:"gte=1"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   sample
		wantErr string
	}{
		{
			name:  "valid",
			input: sample{Name: "kavya", Email: "a@b.co", Slug: "intro-call", Duration: 30},
		},
		{
			name:    "missing name",
			input:   sample{Email: "a@b.co", Slug: "x", Duration: 30},
			wantErr: "name is required",
		},
		{
			name:    "bad email",
			input:   sample{Name: "a", Email: "nope", Slug: "x", Duration: 30},
			wantErr: "email must be a valid email address",
		},
		{
			name:  "free-form slug",
			input: sample{Name: "a", Email: "a@b.co", Slug: "Intro Call", Duration: 600},
		},
		{
			name:    "zero duration",
			input:   sample{Name: "a", Email: "a@b.co", Slug: "x", Duration: 0},
			wantErr: "duration must be at least 1",
		},
		{
			name:    "name too long",
			input:   sample{Name: "abcdef", Email: "a@b.co", Slug: "x", Duration: 30},
			wantErr: "name must not exceed 5 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestStruct_JoinsMessages(t *testing.T) {
	err := Struct(sample{Duration: 30})
	require.Error(t, err)
	assert.Equal(t, "name is required; email is required; slug is required", err.Error())
}
