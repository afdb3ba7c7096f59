// Copyright (c) 2026 Code2Lead. All rights reserved.

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// It ensures that every response (Success or Error) across the entire application
// follows a strict, predictable JSON envelope structure:
//
//	{ "success": bool, "message"?, "data"?, "meta"?, "code"?, "errors"?, "details"?, "stack"? }
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/apperr"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/ctxutil"
	"github.com/Abdulmajid-Alhaj/Code2Lead/pkg/pagination"
)

// Envelope is the single JSON shape used by every response.
type Envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    any                 `json:"data,omitempty"`
	Meta    *pagination.Meta    `json:"meta,omitempty"`
	Code    string              `json:"code,omitempty"`
	Errors  []apperr.FieldError `json:"errors,omitempty"`
	Details map[string]any      `json:"details,omitempty"`
	Stack   string              `json:"stack,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with data wrapped in the standard success envelope.
func OK(writer http.ResponseWriter, message string, data any) {
	JSON(writer, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Created writes a 201 Created response with data wrapped in the standard success envelope.
func Created(writer http.ResponseWriter, message string, data any) {
	JSON(writer, http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Paginated writes a 200 OK response with paginated data and a metadata block.
func Paginated(writer http.ResponseWriter, data any, metadata pagination.Meta) {
	JSON(writer, http.StatusOK, Envelope{Success: true, Data: data, Meta: &metadata})
}

// Message writes a 200 OK response carrying only a message.
func Message(writer http.ResponseWriter, message string) {
	JSON(writer, http.StatusOK, Envelope{Success: true, Message: message})
}

// Error converts any Go error into a standardized JSON API error response.
//
// Errors that are not an [*apperr.AppError] are logged and reported as a generic
// internal error. Stack traces are only emitted for 5xx responses on requests
// marked with [ctxutil.WithDebug].
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	context := request.Context()
	logger := ctxutil.GetLogger(context)

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client.
		logger.ErrorContext(context, "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(context)),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= http.StatusInternalServerError {
		logger.ErrorContext(context, "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(context)),
			slog.Any("cause", appError.Cause),
		)
	}

	envelope := Envelope{
		Success: false,
		Message: appError.Message,
		Code:    appError.Code,
		Errors:  appError.Details,
		Details: appError.Meta,
	}

	if appError.HTTPStatus >= http.StatusInternalServerError && ctxutil.IsDebug(context) {
		envelope.Stack = appError.Stack()
	}

	JSON(writer, appError.HTTPStatus, envelope)
}
