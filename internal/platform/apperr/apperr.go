// Copyright (c) 2026 Code2Lead. All rights reserved.

/*
Package apperr defines the centralized error handling framework for Code2Lead.

It provides a tagged error type that bridges the gap between low-level Domain/Storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct carrying a Kind, a machine-readable Code and a client-safe message.
  - Kind: The fixed taxonomy (validation, conflict, authentication, ...) each mapped to one
    HTTP status.
  - Mapping: The HTTP boundary matches on [AppError] explicitly (see package respond).

Every error that leaves the service layer should be an [AppError] (or wrap one) so that
API responses stay consistent.
*/
package apperr

import (
	"errors"
	"net/http"
	"runtime/debug"
)

// # Taxonomy

// Kind classifies an [AppError] into one of the fixed failure families.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindConflict       Kind = "conflict"
	KindAuthentication Kind = "authentication"
	KindAuthorization  Kind = "authorization"
	KindNotFound       Kind = "not_found"
	KindAccountState   Kind = "account_state"
	KindInternal       Kind = "internal"
)

// Status returns the default HTTP status for the kind.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization, KindAccountState:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// # Machine-readable codes

const (
	CodeValidation             = "VALIDATION_ERROR"
	CodeInternal               = "INTERNAL_ERROR"
	CodeNotFound               = "RESOURCE_NOT_FOUND"
	CodeRouteNotFound          = "ROUTE_NOT_FOUND"
	CodeDuplicateField         = "DUPLICATE_FIELD"
	CodeMissingToken           = "MISSING_TOKEN"
	CodeTokenExpired           = "TOKEN_EXPIRED"
	CodeInvalidToken           = "INVALID_TOKEN"
	CodeAuthRequired           = "AUTH_REQUIRED"
	CodeInsufficientPermission = "INSUFFICIENT_PERMISSIONS"
)

// AppError is the canonical error type for the Code2Lead API.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Kind is the failure family. It determines the default HTTPStatus.
	Kind Kind `json:"-"`
	// Code is a stable machine-readable identifier (e.g. "EMAIL_EXISTS").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"message"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError `json:"errors,omitempty"`
	// Meta holds structured, client-safe extras (e.g. required vs current role).
	Meta map[string]any `json:"details,omitempty"`

	stack []byte
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an [*AppError] carrying the same Code.
//
// Sentinel values such as auth.ErrEmailExists can therefore be matched with
// [errors.Is] even after being copied by [AppError.WithCause].
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Stack returns the goroutine stack captured when an internal error was created.
// It is empty for client errors.
func (e *AppError) Stack() string { return string(e.stack) }

// WithCause returns a copy of e that wraps cause. Sentinels stay untouched.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

// WithMeta returns a copy of e with an extra client-safe detail attached.
func (e *AppError) WithMeta(key string, value any) *AppError {
	clone := *e
	clone.Meta = make(map[string]any, len(e.Meta)+1)
	for k, v := range e.Meta {
		clone.Meta[k] = v
	}
	clone.Meta[key] = value
	return &clone
}

// New creates an [AppError] whose status follows its Kind.
func New(kind Kind, code, msg string) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       code,
		Message:    msg,
		HTTPStatus: kind.Status(),
	}
}

// # Client Errors (4xx)

// NotFound creates a 404 [AppError].
//
// Example:
//
//	apperr.NotFound("USER_NOT_FOUND", "User not found")
func NotFound(code, msg string) *AppError {
	return New(KindNotFound, code, msg)
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(code, msg string) *AppError {
	return New(KindAuthentication, code, msg)
}

// Forbidden creates a 403 [AppError].
func Forbidden(code, msg string) *AppError {
	return New(KindAuthorization, code, msg)
}

// Conflict creates a 409 [AppError] for duplicate or unique-constraint violations.
func Conflict(code, msg string) *AppError {
	return New(KindConflict, code, msg)
}

// AccountState creates a 403 [AppError] for accounts that may not act right now.
func AccountState(code, msg string) *AppError {
	return New(KindAccountState, code, msg)
}

// Locked creates a 423 [AppError]. It belongs to the account-state family.
func Locked(code, msg string) *AppError {
	e := New(KindAccountState, code, msg)
	e.HTTPStatus = http.StatusLocked
	return e
}

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	e := New(KindValidation, CodeValidation, msg)
	e.Details = details
	return e
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause and the current stack are kept for logging; neither is sent to
// clients in production.
func Internal(cause error) *AppError {
	e := New(KindInternal, CodeInternal, "An unexpected error occurred")
	e.Cause = cause
	e.stack = debug.Stack()
	return e
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
