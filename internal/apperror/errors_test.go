package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   Kind
		status int
	}{
		{"authentication", ErrInvalidCredentials, KindAuthentication, http.StatusUnauthorized},
		{"authorization", ErrForbidden, KindAuthorization, http.StatusForbidden},
		{"not found wrapped", fmt.Errorf("repo: %w", ErrOrderNotFound), KindNotFound, http.StatusNotFound},
		{"validation", Validation("invalid request", map[string]string{"email": "email"}), KindValidation, http.StatusBadRequest},
		{"conflict", ErrEmailInUse, KindConflict, http.StatusConflict},
		{"unavailable", ErrStorageDisabled, KindUnavailable, http.StatusServiceUnavailable},
		{"plain error", errors.New("connection refused"), KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.err))
			assert.Equal(t, tt.status, KindOf(tt.err).HTTPStatus())
		})
	}
}

func TestWrap_KeepsIdentity(t *testing.T) {
	cause := errors.New("signature is invalid")
	err := ErrInvalidToken.Wrap(cause)

	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrTokenExpired)
	assert.Equal(t, "invalid token: signature is invalid", err.Error())
	assert.Nil(t, ErrInvalidToken.Err)
}
