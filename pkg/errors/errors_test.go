package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		err    *AppError
		code   string
		status int
	}{
		{Validation("bad"), CodeValidation, http.StatusBadRequest},
		{Unauthorized("no", nil), CodeUnauthorized, http.StatusUnauthorized},
		{Forbidden("no", nil), CodeForbidden, http.StatusForbidden},
		{NotFound("Job", nil), CodeNotFound, http.StatusNotFound},
		{Conflict("dup"), CodeConflict, http.StatusConflict},
		{InvalidState("state"), CodeInvalidState, http.StatusBadRequest},
		{Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, tt.err.Code)
		assert.Equal(t, tt.status, tt.err.Status)
	}
	assert.Equal(t, "Job not found", NotFound("Job", nil).Message)
}

func TestIsSeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("context: %w", Conflict("dup"))
	assert.True(t, Is(err, CodeConflict))
	assert.False(t, IsNotFound(err))
	assert.False(t, Is(stderrors.New("plain"), CodeConflict))
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "x"))

	nf := NotFound("Job", nil)
	assert.Same(t, nf, Wrap(nf, "x"))

	cause := stderrors.New("db down")
	wrapped := Wrap(cause, "Failed to load job")
	assert.True(t, Is(wrapped, CodeInternal))
	assert.ErrorIs(t, wrapped, cause)
}
