package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"hangpay/internal/auth"
)

type ctxKey string

// CtxIdentityKey holds the verified auth.Identity of the caller.
const CtxIdentityKey ctxKey = "identity"

func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	v := ctx.Value(CtxIdentityKey)
	if v == nil {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}

func RequireJWT(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if authz == "" {
				slog.Error(
					"authentication error",
					slog.String("error", "header not set"),
				)
				http.Error(
					w,
					http.StatusText(http.StatusUnauthorized),
					http.StatusUnauthorized,
				)
				return
			}

			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") ||
				parts[1] == "" {
				http.Error(
					w,
					http.StatusText(http.StatusUnauthorized),
					http.StatusUnauthorized,
				)
				return
			}

			token := parts[1]
			identity, err := auth.IdentityFromJWTToken(secret, token)
			if err != nil {
				slog.Warn("invalid jwt", slog.Any("error", err))
				http.Error(
					w,
					http.StatusText(http.StatusUnauthorized),
					http.StatusUnauthorized,
				)
				return
			}

			ctx := context.WithValue(r.Context(), CtxIdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates the manual-adjustment and ticketing endpoints. It must
// run inside RequireJWT.
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				http.Error(
					w,
					http.StatusText(http.StatusUnauthorized),
					http.StatusUnauthorized,
				)
				return
			}
			if !identity.IsAdmin {
				http.Error(
					w,
					http.StatusText(http.StatusForbidden),
					http.StatusForbidden,
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
