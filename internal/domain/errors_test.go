package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		msg      string
		sentinel error
	}{
		{"not found", NewNotFoundError("saved quote", "42"), `saved quote "42" not found`, ErrNotFound},
		{"not found without id", NewNotFoundError("preference", ""), "preference not found", ErrNotFound},
		{"validation", NewValidationError("reflection", "must not be empty"), "invalid reflection: must not be empty", ErrValidation},
		{"validation without field", NewValidationError("", "bad input"), "validation failed: bad input", ErrValidation},
		{"unavailable", NewUnavailableError("sqlite", "database is locked"), "sqlite unavailable: database is locked", ErrUnavailable},
		{"unavailable without reason", NewUnavailableError("zenquotes", ""), "zenquotes unavailable", ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.msg)
			assert.ErrorIs(t, tt.err, tt.sentinel)

			wrapped := fmt.Errorf("journal: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)

			for _, other := range []error{ErrNotFound, ErrValidation, ErrUnavailable} {
				if other != tt.sentinel {
					assert.NotErrorIs(t, tt.err, other)
				}
			}
		})
	}
}

func TestValidationError_As(t *testing.T) {
	err := fmt.Errorf("schedule: %w", NewValidationErrorWithValue("hour", "must be between 0 and 23", 24))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "hour", ve.Field)
	assert.Equal(t, 24, ve.Value)
}

func TestKindErrors_UnwrapToSentinels(t *testing.T) {
	assert.ErrorIs(t, NewLoadingError("disk"), ErrUnavailable)
	assert.ErrorIs(t, NewSaveError("locked"), ErrUnavailable)
	assert.True(t, errors.Is(ErrTransportOffline, ErrUnavailable))
}

func TestKindHelpers(t *testing.T) {
	notFound := fmt.Errorf("delete: %w", NewNotFoundError("saved quote", "7"))
	invalid := fmt.Errorf("save: %w", NewValidationError("reflection", "must not be empty"))
	down := fmt.Errorf("fetch: %w", ErrTransportOffline)

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(invalid))

	assert.True(t, IsValidation(invalid))
	assert.False(t, IsValidation(down))

	assert.True(t, IsUnavailable(down))
	assert.True(t, IsUnavailable(NewSaveError("locked")))
	assert.False(t, IsUnavailable(notFound))

	for _, f := range []func(error) bool{IsNotFound, IsValidation, IsUnavailable} {
		assert.False(t, f(nil))
		assert.False(t, f(errors.New("boom")))
	}
}
