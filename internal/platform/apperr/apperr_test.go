// Copyright (c) 2026 Code2Lead. All rights reserved.

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/apperr"
)

func TestKind_Status(t *testing.T) {
	tests := []struct {
		kind apperr.Kind
		want int
	}{
		{apperr.KindValidation, http.StatusBadRequest},
		{apperr.KindConflict, http.StatusConflict},
		{apperr.KindAuthentication, http.StatusUnauthorized},
		{apperr.KindAuthorization, http.StatusForbidden},
		{apperr.KindAccountState, http.StatusForbidden},
		{apperr.KindNotFound, http.StatusNotFound},
		{apperr.KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Status())
		})
	}
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, apperr.NotFound("USER_NOT_FOUND", "User not found").HTTPStatus)
	assert.Equal(t, http.StatusConflict, apperr.Conflict("EMAIL_EXISTS", "taken").HTTPStatus)
	assert.Equal(t, http.StatusForbidden, apperr.AccountState("ACCOUNT_DEACTIVATED", "off").HTTPStatus)

	locked := apperr.Locked("ACCOUNT_LOCKED", "locked")
	assert.Equal(t, http.StatusLocked, locked.HTTPStatus)
	assert.Equal(t, apperr.KindAccountState, locked.Kind)

	validation := apperr.ValidationError("bad", apperr.FieldError{Field: "email", Message: "required"})
	assert.Equal(t, apperr.CodeValidation, validation.Code)
	assert.Len(t, validation.Details, 1)
	assert.Empty(t, validation.Stack())
}

func TestAppError_IsMatchesCode(t *testing.T) {
	sentinel := apperr.Conflict("EMAIL_EXISTS", "Email already registered")
	wrapped := fmt.Errorf("create_user_failed: %w", sentinel.WithCause(errors.New("duplicate key")))

	assert.ErrorIs(t, wrapped, sentinel)
	assert.NotErrorIs(t, wrapped, apperr.Conflict("USERNAME_EXISTS", "taken"))
	assert.True(t, apperr.IsAppError(wrapped))
	assert.False(t, apperr.IsAppError(errors.New("plain")))
}

func TestAppError_CopiesLeaveSentinelUntouched(t *testing.T) {
	sentinel := apperr.Forbidden(apperr.CodeInsufficientPermission, "denied")
	cause := errors.New("root cause")

	withCause := sentinel.WithCause(cause)
	assert.Nil(t, sentinel.Cause)
	assert.ErrorIs(t, withCause, cause)

	withMeta := sentinel.WithMeta("current", "user").WithMeta("required", []string{"admin"})
	assert.Nil(t, sentinel.Meta)
	assert.Equal(t, "user", withMeta.Meta["current"])
	assert.Equal(t, []string{"admin"}, withMeta.Meta["required"])
}

func TestInternal(t *testing.T) {
	cause := errors.New("connection refused")
	internal := apperr.Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, internal.HTTPStatus)
	assert.Equal(t, apperr.CodeInternal, internal.Code)
	assert.NotContains(t, internal.Error(), "connection refused")
	assert.ErrorIs(t, internal, cause)
	assert.NotEmpty(t, internal.Stack())

	extracted := apperr.As(fmt.Errorf("outer: %w", internal))
	require.NotNil(t, extracted)
	assert.Same(t, internal, extracted)
	assert.Nil(t, apperr.As(errors.New("plain")))
}
