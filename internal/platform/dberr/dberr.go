// Copyright (c) 2026 Code2Lead. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// Repositories call [Wrap] on every error returned by pgx. Known SQLSTATE codes
// are classified (missing row, unique violation, check violation, malformed id)
// and everything else becomes an internal error.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/apperr"
)

var (
	// ErrNotFound is the generic error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound(apperr.CodeNotFound, "Resource not found")
)

// Mapping tells [Wrap] how to translate storage failures for one repository.
//
// NotFound replaces [ErrNotFound] for missing rows and malformed ids. Conflicts maps a
// unique constraint name to the error reported when it is violated.
type Mapping struct {
	NotFound  *apperr.AppError
	Conflicts map[string]*apperr.AppError
}

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	return WrapWith(err, action, Mapping{})
}

// WrapWith is [Wrap] with repository-specific translations.
func WrapWith(err error, action string, mapping Mapping) error {
	if err == nil {
		return nil
	}

	notFound := mapping.NotFound
	if notFound == nil {
		notFound = ErrNotFound
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}

	// 2. SQLSTATE classification
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			if conflict, ok := mapping.Conflicts[pgErr.ConstraintName]; ok {
				return conflict.WithCause(err)
			}
			return apperr.Conflict(apperr.CodeDuplicateField, "Duplicate field value entered").WithCause(err)

		case pgerrcode.InvalidTextRepresentation:
			// A malformed uuid can never match a row
			return notFound

		case pgerrcode.CheckViolation:
			return apperr.ValidationError("Invalid field value", apperr.FieldError{
				Field:   pgErr.ColumnName,
				Message: "Value violates constraint " + pgErr.ConstraintName,
			})
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
