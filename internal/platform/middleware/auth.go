// Copyright (c) 2026 Code2Lead. All rights reserved.

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/apperr"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/constants"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/ctxutil"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/respond"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// Defining TokenVerifier here decouples the middleware from [sec.TokenService],
// allowing tests to inject a stub.
type TokenVerifier interface {
	Verify(token string) (*sec.Identity, error)
}

var (
	errMissingToken = apperr.Unauthorized(apperr.CodeMissingToken, "Access denied. No token provided.")
	errTokenExpired = apperr.Unauthorized(apperr.CodeTokenExpired, "Token has expired")
	errInvalidToken = apperr.Unauthorized(apperr.CodeInvalidToken, "Invalid token")
	errAuthRequired = apperr.Unauthorized(apperr.CodeAuthRequired, "Authentication required")
)

// Authenticate requires a valid session token on the request.
//
// # Flow
//  1. Read 'Authorization: Bearer <token>'; fall back to the session cookie.
//  2. No token at all aborts with 401 MISSING_TOKEN.
//  3. Verify via [TokenVerifier]: expiry gives TOKEN_EXPIRED, anything else INVALID_TOKEN.
//  4. Inject the [*sec.Identity] into the request context.
func Authenticate(verifier TokenVerifier, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token := extractToken(request, cookieName)
			if token == "" {
				respond.Error(writer, request, errMissingToken)
				return
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				if errors.Is(err, sec.ErrTokenExpired) {
					respond.Error(writer, request, errTokenExpired)
					return
				}
				respond.Error(writer, request, errInvalidToken)
				return
			}

			context := ctxutil.WithIdentity(request.Context(), identity)
			next.ServeHTTP(writer, request.WithContext(context))
		})
	}
}

// OptionalAuthenticate attaches the caller's identity when a valid token is present.
// Missing, expired or invalid tokens let the request continue anonymously.
func OptionalAuthenticate(verifier TokenVerifier, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token := extractToken(request, cookieName)
			if token == "" {
				next.ServeHTTP(writer, request)
				return
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				next.ServeHTTP(writer, request)
				return
			}

			context := ctxutil.WithIdentity(request.Context(), identity)
			next.ServeHTTP(writer, request.WithContext(context))
		})
	}
}

// RequireRole blocks requests whose identity role is not in roles.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate] or [OptionalAuthenticate].
//
// # Flow
//  1. No identity on the context aborts with 401 AUTH_REQUIRED.
//  2. A role outside the allowed set aborts with 403 INSUFFICIENT_PERMISSIONS,
//     reporting the required roles and the caller's current role.
func RequireRole(roles ...sec.UserRole) func(http.Handler) http.Handler {
	required := make([]string, len(roles))
	for i, role := range roles {
		required[i] = string(role)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			identity := ctxutil.GetIdentity(request.Context())
			if identity == nil {
				respond.Error(writer, request, errAuthRequired)
				return
			}

			if !identity.Role.In(roles...) {
				respond.Error(writer, request,
					apperr.Forbidden(apperr.CodeInsufficientPermission, "Access denied. Insufficient permissions.").
						WithMeta("required", required).
						WithMeta("current", string(identity.Role)),
				)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// extractToken returns the bearer token or, failing that, the session cookie value.
func extractToken(request *http.Request, cookieName string) string {
	header := request.Header.Get(constants.HeaderAuthorization)
	if len(header) > len(constants.BearerPrefix) && strings.EqualFold(header[:len(constants.BearerPrefix)], constants.BearerPrefix) {
		if token := strings.TrimSpace(header[len(constants.BearerPrefix):]); token != "" {
			return token
		}
	}

	if cookieName == "" {
		return ""
	}

	cookie, err := request.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
