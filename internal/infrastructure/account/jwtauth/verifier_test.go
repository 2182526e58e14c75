package jwtauth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/riskibarqy/fantasy-basketball/internal/usecase"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestVerifier_AcceptsValidToken(t *testing.T) {
	t.Parallel()

	v, err := NewVerifier(testSecret, WithAudience("authenticated"))
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}

	token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub":   "user-42",
		"email": "coach@example.com",
		"aud":   "authenticated",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	principal, err := v.VerifyAccessToken(t.Context(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if principal.UserID != "user-42" || principal.Email != "coach@example.com" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestVerifier_RejectsBadTokens(t *testing.T) {
	t.Parallel()

	v, err := NewVerifier(testSecret, WithAudience("authenticated"))
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	future := time.Now().Add(time.Hour).Unix()

	tests := map[string]string{
		"empty":        "",
		"garbage":      "not-a-jwt",
		"wrong secret": sign(t, jwt.SigningMethodHS256, []byte("another-secret-another-secret-123"), jwt.MapClaims{"sub": "u", "aud": "authenticated", "exp": future}),
		"expired":      sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "u", "aud": "authenticated", "exp": time.Now().Add(-time.Hour).Unix()}),
		"no exp":       sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "u", "aud": "authenticated"}),
		"wrong aud":    sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "u", "aud": "anon", "exp": future}),
		"no subject":   sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"aud": "authenticated", "exp": future}),
		"hs512":        sign(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.MapClaims{"sub": "u", "aud": "authenticated", "exp": future}),
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := v.VerifyAccessToken(t.Context(), token); !errors.Is(err, usecase.ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}

func TestNewVerifier_RequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewVerifier("  "); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}
