// Copyright (c) 2026 Code2Lead. All rights reserved.

package sec_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/sec"
)

var trainer = sec.Identity{
	ID:       "0192b0a4-0000-7000-8000-000000000001",
	Role:     sec.RoleTrainer,
	Email:    "ada@example.com",
	Username: "ada_l",
}

func newTokenService(t *testing.T, secret, audience string) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService(secret, "code2lead", audience)
	require.NoError(t, err)
	return service
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	service := newTokenService(t, "test-secret", "code2lead-api")

	token, err := service.Issue(trainer, time.Hour)
	require.NoError(t, err)

	identity, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, trainer, *identity)
}

func TestTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "code2lead", "code2lead-api")
	assert.Error(t, err)
}

func TestTokenService_Expired(t *testing.T) {
	service := newTokenService(t, "test-secret", "code2lead-api")

	token, err := service.Issue(trainer, -time.Minute)
	require.NoError(t, err)

	_, err = service.Verify(token)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)
	assert.NotErrorIs(t, err, sec.ErrTokenMalformed)
}

func TestTokenService_Rejects(t *testing.T) {
	issuer := newTokenService(t, "test-secret", "code2lead-api")
	token, err := issuer.Issue(trainer, time.Hour)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  trainer.ID,
		"iss": "code2lead",
		"aud": "code2lead-api",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name     string
		verifier *sec.TokenService
		token    string
	}{
		{"wrong secret", newTokenService(t, "other-secret", "code2lead-api"), token},
		{"wrong audience", newTokenService(t, "test-secret", "someone-else"), token},
		{"garbage", issuer, "not.a.token"},
		{"unsigned", issuer, noneToken},
		{"tampered", issuer, token + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.verifier.Verify(tt.token)
			assert.ErrorIs(t, err, sec.ErrTokenMalformed)
		})
	}
}

func TestUserRole(t *testing.T) {
	assert.True(t, sec.RoleAdmin.Valid())
	assert.False(t, sec.UserRole("owner").Valid())

	assert.True(t, sec.RoleTrainer.In(sec.RoleTrainer, sec.RoleAdmin))
	assert.False(t, sec.RoleUser.In(sec.RoleTrainer, sec.RoleAdmin))
}
