// Copyright (c) 2026 Code2Lead. All rights reserved.

package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/ctxutil"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/middleware"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/sec"
)

const cookieName = "token"

// stubVerifier accepts "good-<role>" tokens and reports "expired" as expired.
type stubVerifier struct{}

func (stubVerifier) Verify(token string) (*sec.Identity, error) {
	switch token {
	case "good-admin":
		return &sec.Identity{ID: "admin-1", Role: sec.RoleAdmin}, nil
	case "good-user":
		return &sec.Identity{ID: "user-1", Role: sec.RoleUser}, nil
	case "expired":
		return nil, sec.ErrTokenExpired
	default:
		return nil, errors.New("bad signature")
	}
}

// whoAmI echoes the identity found on the context, or "anonymous".
var whoAmI = http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
	if identity := ctxutil.GetIdentity(request.Context()); identity != nil {
		_, _ = writer.Write([]byte(identity.ID))
		return
	}
	_, _ = writer.Write([]byte("anonymous"))
})

func errorCode(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body.Code
}

func TestAuthenticate(t *testing.T) {
	handler := middleware.Authenticate(stubVerifier{}, cookieName)(whoAmI)

	tests := []struct {
		name     string
		header   string
		cookie   string
		status   int
		code     string
		identity string
	}{
		{name: "bearer header", header: "Bearer good-admin", status: http.StatusOK, identity: "admin-1"},
		{name: "lowercase scheme", header: "bearer good-user", status: http.StatusOK, identity: "user-1"},
		{name: "cookie fallback", cookie: "good-user", status: http.StatusOK, identity: "user-1"},
		{name: "header wins over cookie", header: "Bearer good-admin", cookie: "good-user", status: http.StatusOK, identity: "admin-1"},
		{name: "missing", status: http.StatusUnauthorized, code: "MISSING_TOKEN"},
		{name: "empty bearer", header: "Bearer ", status: http.StatusUnauthorized, code: "MISSING_TOKEN"},
		{name: "expired", header: "Bearer expired", status: http.StatusUnauthorized, code: "TOKEN_EXPIRED"},
		{name: "invalid", cookie: "forged", status: http.StatusUnauthorized, code: "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				request.AddCookie(&http.Cookie{Name: cookieName, Value: tt.cookie})
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.status, recorder.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, errorCode(t, recorder))
				return
			}
			assert.Equal(t, tt.identity, recorder.Body.String())
		})
	}
}

func TestOptionalAuthenticate(t *testing.T) {
	handler := middleware.OptionalAuthenticate(stubVerifier{}, cookieName)(whoAmI)

	for token, want := range map[string]string{
		"":           "anonymous",
		"expired":    "anonymous",
		"forged":     "anonymous",
		"good-admin": "admin-1",
	} {
		request := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
		if token != "" {
			request.Header.Set("Authorization", "Bearer "+token)
		}

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code, token)
		assert.Equal(t, want, recorder.Body.String(), token)
	}
}

func TestRequireRole(t *testing.T) {
	guarded := middleware.RequireRole(sec.RoleAdmin)(whoAmI)

	t.Run("anonymous", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		guarded.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, "AUTH_REQUIRED", errorCode(t, recorder))
	})

	t.Run("wrong role", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request = request.WithContext(ctxutil.WithIdentity(request.Context(), &sec.Identity{ID: "user-1", Role: sec.RoleUser}))

		recorder := httptest.NewRecorder()
		guarded.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		var body struct {
			Code    string `json:"code"`
			Details struct {
				Required []string `json:"required"`
				Current  string   `json:"current"`
			} `json:"details"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "INSUFFICIENT_PERMISSIONS", body.Code)
		assert.Equal(t, []string{"admin"}, body.Details.Required)
		assert.Equal(t, "user", body.Details.Current)
	})

	t.Run("allowed", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request = request.WithContext(ctxutil.WithIdentity(request.Context(), &sec.Identity{ID: "admin-1", Role: sec.RoleAdmin}))

		recorder := httptest.NewRecorder()
		guarded.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "admin-1", recorder.Body.String())
	})
}
