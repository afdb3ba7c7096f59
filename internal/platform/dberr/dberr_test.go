// Copyright (c) 2026 Code2Lead. All rights reserved.

package dberr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/apperr"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/dberr"
)

var (
	errUserNotFound = apperr.NotFound("USER_NOT_FOUND", "User not found")
	errEmailExists  = apperr.Conflict("EMAIL_EXISTS", "Email already registered")

	mapping = dberr.Mapping{
		NotFound:  errUserNotFound,
		Conflicts: map[string]*apperr.AppError{"account_email_key": errEmailExists},
	}
)

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "find_user"))
}

func TestWrapWith(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   *apperr.AppError
		status int
	}{
		{
			name:   "no rows",
			err:    fmt.Errorf("scan: %w", pgx.ErrNoRows),
			want:   errUserNotFound,
			status: http.StatusNotFound,
		},
		{
			name:   "malformed uuid",
			err:    &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation},
			want:   errUserNotFound,
			status: http.StatusNotFound,
		},
		{
			name:   "known unique constraint",
			err:    &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "account_email_key"},
			want:   errEmailExists,
			status: http.StatusConflict,
		},
		{
			name:   "unknown unique constraint",
			err:    &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "other_key"},
			want:   apperr.Conflict(apperr.CodeDuplicateField, ""),
			status: http.StatusConflict,
		},
		{
			name:   "check violation",
			err:    &pgconn.PgError{Code: pgerrcode.CheckViolation, ColumnName: "role", ConstraintName: "account_role_check"},
			want:   apperr.ValidationError(""),
			status: http.StatusBadRequest,
		},
		{
			name:   "anything else",
			err:    errors.New("connection reset"),
			want:   apperr.Internal(nil),
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dberr.WrapWith(tt.err, "find_user", mapping)

			assert.ErrorIs(t, err, tt.want)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, tt.status, appError.HTTPStatus)
		})
	}
}

func TestWrap_DefaultNotFound(t *testing.T) {
	err := dberr.Wrap(pgx.ErrNoRows, "find_course")
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}

func TestWrap_InternalKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := dberr.Wrap(cause, "list_users")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, apperr.As(err).Cause.Error(), "list_users")
}

func TestWrapWith_CheckViolationDetails(t *testing.T) {
	err := dberr.WrapWith(&pgconn.PgError{Code: pgerrcode.CheckViolation, ColumnName: "role", ConstraintName: "account_role_check"}, "insert_user", mapping)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	require.Len(t, appError.Details, 1)
	assert.Equal(t, "role", appError.Details[0].Field)
}
