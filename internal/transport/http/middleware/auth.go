package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/inkwell-press/inkwell/internal/auth"
)

type contextKey string

const identityKey contextKey = "identity"

// Auth verifies the bearer token on protected routes and attaches the
// resolved acting identity to the request context. On failure the
// downstream handler never runs.
func Auth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, `{"message":"Missing or invalid token","statusCode":401}`, http.StatusUnauthorized)
				return
			}

			identity, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				http.Error(w, `{"message":"Invalid or expired token","statusCode":401}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity extracts the acting identity from the request context.
func GetIdentity(ctx context.Context) auth.Identity {
	return ctx.Value(identityKey).(auth.Identity)
}
