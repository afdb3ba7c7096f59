// Copyright (c) 2026 Code2Lead. All rights reserved.

/*
Package session carries the session token between server and browser.

The token itself is stateless (see package sec). This package only decides how
it travels: an HttpOnly cookie whose security attributes come from configuration.
Clearing the cookie on logout is a client-side convenience; a copied token stays
valid until it expires.
*/
package session

import (
	"net/http"
	"time"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/constants"
)

// Options configures the session cookie.
type Options struct {
	Name     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
	MaxAge   time.Duration
}

// Cookie builds, reads and clears the session cookie.
type Cookie struct {
	options Options
}

// NewCookie creates a session cookie helper. An empty name falls back to "token".
func NewCookie(options Options) *Cookie {
	if options.Name == "" {
		options.Name = "token"
	}
	// Browsers reject SameSite=None cookies that are not Secure
	if options.SameSite == http.SameSiteNoneMode {
		options.Secure = true
	}
	return &Cookie{options: options}
}

// Name returns the cookie name, used by the authentication middleware.
func (cookie *Cookie) Name() string {
	return cookie.options.Name
}

// Set writes the session token cookie.
func (cookie *Cookie) Set(writer http.ResponseWriter, token string) {
	http.SetCookie(writer, cookie.build(token, int(cookie.options.MaxAge.Seconds())))
}

// Clear instructs the browser to drop the session cookie immediately.
func (cookie *Cookie) Clear(writer http.ResponseWriter) {
	expired := cookie.build("", -1)
	expired.Expires = time.Unix(0, 0)
	http.SetCookie(writer, expired)
}

func (cookie *Cookie) build(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     cookie.options.Name,
		Value:    value,
		Path:     constants.SessionCookiePath,
		Domain:   cookie.options.Domain,
		MaxAge:   maxAge,
		Secure:   cookie.options.Secure,
		HttpOnly: true,
		SameSite: cookie.options.SameSite,
	}
}
