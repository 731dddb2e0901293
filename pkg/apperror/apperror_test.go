package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_StatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"validation", NewValidation("bad", nil), http.StatusBadRequest},
		{"conflict", NewConflict("dup", nil), http.StatusBadRequest},
		{"unauthenticated", NewUnauthenticated("who", nil), http.StatusUnauthorized},
		{"forbidden", NewForbidden("no", nil), http.StatusForbidden},
		{"not found", NewNotFound("gone", nil), http.StatusNotFound},
		{"internal", NewInternal("boom", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewInternal("load post", cause)

	assert.Equal(t, "load post: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "post not found", NewNotFound("post not found", nil).Error())
}

func TestKindOf_WrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("service: %w", NewForbidden("not owner", nil))

	assert.Equal(t, Forbidden, KindOf(wrapped))
	assert.True(t, IsForbidden(wrapped))
	assert.False(t, IsNotFound(wrapped))

	ae, ok := From(wrapped)
	require.True(t, ok)
	assert.Equal(t, "not owner", ae.Message)
}

func TestKindOf_UntaggedIsInternal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Internal, KindOf(errors.New("plain")))
	assert.False(t, IsValidation(nil))
	assert.False(t, IsUnauthenticated(nil))
	assert.False(t, IsConflict(errors.New("plain")))
	assert.Equal(t, "not_found", NotFound.String())
}
