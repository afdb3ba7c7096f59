// Copyright (c) 2026 Code2Lead. All rights reserved.

package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/session"
)

/*
TestCookie_Set verifies the cookie attributes and that the browser sends the value back.
*/
func TestCookie_Set(t *testing.T) {
	cookie := session.NewCookie(session.Options{
		Name:     "token",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   7 * 24 * time.Hour,
	})

	// 1. Set the cookie
	recorder := httptest.NewRecorder()
	cookie.Set(recorder, "signed.jwt.value")

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)

	written := cookies[0]
	assert.Equal(t, "token", written.Name)
	assert.Equal(t, "signed.jwt.value", written.Value)
	assert.True(t, written.HttpOnly)
	assert.False(t, written.Secure)
	assert.Equal(t, "/", written.Path)
	assert.Equal(t, 7*24*60*60, written.MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, written.SameSite)

	// 2. Echoed back by the client
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(written)
	echoed, err := request.Cookie("token")
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.value", echoed.Value)
}

/*
TestCookie_Clear verifies that clearing expires the cookie immediately.
*/
func TestCookie_Clear(t *testing.T) {
	cookie := session.NewCookie(session.Options{Name: "token"})

	recorder := httptest.NewRecorder()
	cookie.Clear(recorder)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

/*
TestCookie_SameSiteNoneForcesSecure verifies cross-site cookies are always Secure.
*/
func TestCookie_SameSiteNoneForcesSecure(t *testing.T) {
	cookie := session.NewCookie(session.Options{SameSite: http.SameSiteNoneMode})

	recorder := httptest.NewRecorder()
	cookie.Set(recorder, "value")

	written := recorder.Result().Cookies()[0]
	assert.Equal(t, "token", written.Name)
	assert.True(t, written.Secure)
}
