// Copyright (c) 2026 Code2Lead. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer through small interfaces declared by the consumers.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned by [TokenService.Verify] for a well-formed token past its expiry.
	ErrTokenExpired = errors.New("sec: token expired")

	// ErrTokenMalformed covers every other verification failure (signature, structure,
	// algorithm, issuer or audience).
	ErrTokenMalformed = errors.New("sec: token malformed")
)

// SessionClaims represents the payload embedded inside a session token.
//
// By embedding the id, role, email and username directly inside the JWT,
// [middleware.Authenticate] can reconstruct the caller WITHOUT querying the
// database on every request.
type SessionClaims struct {
	jwt.RegisteredClaims

	ID       string `json:"id"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// TokenService issues and verifies HS256 session tokens.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
	now      func() time.Time
}

// NewTokenService creates a new TokenService signing with secret.
func NewTokenService(secret, issuer, audience string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: token secret must not be empty")
	}
	return &TokenService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		now:      time.Now,
	}, nil
}

// Issue signs a session token for identity that expires after ttl.
func (service *TokenService) Issue(identity Identity, ttl time.Duration) (string, error) {
	currentTime := service.now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			Issuer:    service.issuer,
			Audience:  jwt.ClaimStrings{service.audience},
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(ttl)),
		},
		ID:       identity.ID,
		Role:     string(identity.Role),
		Email:    identity.Email,
		Username: identity.Username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature, algorithm, issuer, audience and expiry of tokenString
// and returns the identity it carries.
func (service *TokenService) Verify(tokenString string) (*Identity, error) {
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return service.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(service.issuer),
		jwt.WithAudience(service.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(service.now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	if claims.ID == "" {
		return nil, fmt.Errorf("%w: missing id claim", ErrTokenMalformed)
	}

	return &Identity{
		ID:       claims.ID,
		Role:     UserRole(claims.Role),
		Email:    claims.Email,
		Username: claims.Username,
	}, nil
}
