// Copyright (c) 2026 Code2Lead. All rights reserved.

package auth_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/apperr"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/middleware"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/session"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/users/auth"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
	Details map[string]any  `json:"details"`
	Meta    map[string]int  `json:"meta"`
}

func newRouter(t *testing.T) (http.Handler, fixture) {
	t.Helper()
	f := newFixture(t)
	cookie := session.NewCookie(session.Options{Name: "token"})

	router := chi.NewRouter()
	router.Route("/api/auth", func(r chi.Router) {
		auth.NewHandler(f.service, cookie).RegisterRoutes(r, middleware.Authenticate(f.tokens, cookie.Name()))
	})
	return router, f
}

func do(t *testing.T, router http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}

	request := httptest.NewRequest(method, path, &payload)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	var decoded envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	return recorder, decoded
}

func adminBody() map[string]string {
	return map[string]string{
		"name":     "Ada Lovelace",
		"username": "ada_l",
		"email":    "ada@code2lead.dev",
		"password": "Secret1",
	}
}

/*
TestHandler_AdminLoginFlow walks through bootstrap, login and logout.
*/
func TestHandler_AdminLoginFlow(t *testing.T) {
	router, _ := newRouter(t)

	// 1. Bootstrap admin
	recorder, body := do(t, router, http.MethodPost, "/api/auth/admin", "", adminBody())
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.True(t, body.Success)
	assert.Equal(t, auth.MessageAdminCreated, body.Message)
	assert.NotContains(t, string(body.Data), "password")

	// 2. Duplicate is a conflict
	recorder, body = do(t, router, http.MethodPost, "/api/auth/admin", "", adminBody())
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "EMAIL_EXISTS", body.Code)

	// 3. Login sets the session cookie
	recorder, body = do(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ada@code2lead.dev", "password": "Secret1",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	var data struct {
		Token string         `json:"token"`
		User  map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, cookies[0].Value, data.Token)
	assert.Equal(t, "admin", data.User["role"])

	// 4. Logout clears the cookie
	recorder, body = do(t, router, http.MethodPost, "/api/auth/logout", data.Token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, auth.MessageLoggedOut, body.Message)
	assert.Negative(t, recorder.Result().Cookies()[0].MaxAge)
}

/*
TestHandler_EmailHasOneSpelling verifies that address forms wrapping an
already registered mailbox are rejected rather than stored as new accounts.
*/
func TestHandler_EmailHasOneSpelling(t *testing.T) {
	router, _ := newRouter(t)

	recorder, _ := do(t, router, http.MethodPost, "/api/auth/admin", "", adminBody())
	require.Equal(t, http.StatusCreated, recorder.Code)

	for i, email := range []string{"Ada <ada@code2lead.dev>", "<ada@code2lead.dev>"} {
		body := adminBody()
		body["email"] = email
		body["username"] = fmt.Sprintf("ada_alias%d", i)

		recorder, decoded := do(t, router, http.MethodPost, "/api/auth/admin", "", body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, email)
		assert.Equal(t, apperr.CodeValidation, decoded.Code, email)
	}

	recorder, _ = do(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "Ada <ada@code2lead.dev>", "password": "Secret1",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

/*
TestHandler_AdminRoutes verifies role gating and the admin user management endpoints.
*/
func TestHandler_AdminRoutes(t *testing.T) {
	router, _ := newRouter(t)

	do(t, router, http.MethodPost, "/api/auth/admin", "", adminBody())
	_, body := do(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "ada@code2lead.dev", "password": "Secret1"})

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &login))

	// 1. Anonymous access is rejected before the role check
	recorder, body := do(t, router, http.MethodGet, "/api/auth/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "MISSING_TOKEN", body.Code)

	// 2. Admin creates a trainer
	recorder, body = do(t, router, http.MethodPost, "/api/auth/users", login.Token, map[string]string{
		"name": "Grace Hopper", "username": "grace", "email": "grace@code2lead.dev", "password": "Cobol59", "role": "trainer",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created struct {
		ID   string `json:"id"`
		Role string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &created))
	assert.Equal(t, "trainer", created.Role)

	// 3. Trainer cannot reach admin routes
	_, body = do(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "grace@code2lead.dev", "password": "Cobol59"})
	var trainerLogin struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &trainerLogin))

	recorder, body = do(t, router, http.MethodGet, "/api/auth/users", trainerLogin.Token, nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, "INSUFFICIENT_PERMISSIONS", body.Code)
	assert.Equal(t, "trainer", body.Details["current"])
	assert.Equal(t, []any{"admin"}, body.Details["required"])

	// 4. Listing with meta
	recorder, body = do(t, router, http.MethodGet, "/api/auth/users?page=1&limit=1", login.Token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 2, body.Meta["total"])
	assert.Equal(t, 2, body.Meta["totalPages"])

	// 5. Deactivate then activate
	recorder, body = do(t, router, http.MethodPut, "/api/auth/users/"+created.ID+"/deactivate", login.Token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, auth.MessageUserDeactivated, body.Message)
	assert.True(t, strings.Contains(string(body.Data), `"isActive":false`))

	recorder, _ = do(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "grace@code2lead.dev", "password": "Cobol59"})
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder, body = do(t, router, http.MethodPut, "/api/auth/users/"+created.ID+"/activate", login.Token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, auth.MessageUserActivated, body.Message)
}

/*
TestHandler_InvalidJSON verifies malformed bodies are reported as validation errors.
*/
func TestHandler_InvalidJSON(t *testing.T) {
	router, _ := newRouter(t)

	request := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{"))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"code":"VALIDATION_ERROR"`)
}
