package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_IsMatchesSentinelByCode(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"not found", NewNotFoundError("workspace not found"), ErrNotFound, true},
		{"validation", NewValidationFailedError("bad dates"), ErrValidation, true},
		{"conflict", NewConflictError("overlap"), ErrConflict, true},
		{"conflict matches duplicate", NewConflictError("exists"), ErrDuplicate, true},
		{"forbidden", NewForbiddenError("not yours"), ErrForbidden, true},
		{"unauthorized", NewAppError(http.StatusUnauthorized, "bad token", nil), ErrUnauthorized, true},
		{"internal is nothing", NewAppError(http.StatusInternalServerError, "boom", nil), ErrNotFound, false},
		{"not found is not validation", NewNotFoundError("x"), ErrValidation, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}

func TestAppError_WrappedAndUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("service: %w", NewAppError(http.StatusInternalServerError, "failed to query", cause))

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "service: failed to query: connection reset", err.Error())

	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
}

func TestNewFieldValidationError(t *testing.T) {
	err := NewFieldValidationError("invalid search", map[string]string{"room": "must be at least 1"})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "must be at least 1", err.Fields["room"])
}
