package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hangpay/internal/auth"
)

const jwtSecret = "test-secret"

func TestRequireJWT(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	validToken, err := auth.CreateJWTToken(
		jwtSecret,
		time.Minute,
		auth.Identity{UserID: 42, IsAdmin: true},
	)
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}

	wrongSecretToken, err := auth.CreateJWTToken(
		"other-secret",
		time.Minute,
		auth.Identity{UserID: 42},
	)
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}

	expiredToken, err := auth.CreateJWTToken(
		jwtSecret,
		-time.Minute,
		auth.Identity{UserID: 42},
	)
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}

	tests := []struct {
		name         string
		authHeader   string
		wantCode     int
		wantIdentity *auth.Identity
	}{
		{
			name:         "valid token",
			authHeader:   "Bearer " + validToken,
			wantCode:     http.StatusOK,
			wantIdentity: &auth.Identity{UserID: 42, IsAdmin: true},
		},
		{
			name:       "missing header",
			authHeader: "",
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			authHeader: "Basic dXNlcjpwYXNz",
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			authHeader: "Bearer not.a.jwt",
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "wrong signing secret",
			authHeader: "Bearer " + wrongSecretToken,
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer " + expiredToken,
			wantCode:   http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got auth.Identity
			var called bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				got, _ = IdentityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := RequireJWT(jwtSecret)(next)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			if tc.wantIdentity != nil {
				assert.True(t, called)
				assert.Equal(t, *tc.wantIdentity, got)
			} else {
				assert.False(t, called)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	tests := []struct {
		name     string
		identity *auth.Identity
		wantCode int
	}{
		{
			name:     "admin passes",
			identity: &auth.Identity{UserID: 1, IsAdmin: true},
			wantCode: http.StatusOK,
		},
		{
			name:     "non-admin forbidden",
			identity: &auth.Identity{UserID: 1},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "no identity",
			identity: nil,
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			handler := RequireAdmin()(next)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.identity != nil {
				ctx := context.WithValue(
					req.Context(),
					CtxIdentityKey,
					*tc.identity,
				)
				req = req.WithContext(ctx)
			}

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}
