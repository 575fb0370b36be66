// Package auth guards mutating routes with a static API key. The service
// fronts a single device's verse flow, so there are no user accounts, only
// an optional bearer key.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/tobiajayi/daily-verse-api/pkg/response"
)

// APIKeyMiddleware rejects requests whose Authorization header does not
// carry the configured bearer key. An empty key disables the guard.
func APIKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Error(w, http.StatusUnauthorized, "Missing Authorization header", "")
				return
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				response.Error(w, http.StatusUnauthorized, "Invalid token format", "")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
				response.Error(w, http.StatusUnauthorized, "Invalid API key", "")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
