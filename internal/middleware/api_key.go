package middleware

import (
	"crypto/subtle"
	"net/http"

	"emergencyAPI/internal/render"
)

// APIKeyMiddleware guards the admin routes with the X-API-Key header.
func APIKeyMiddleware(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-API-Key")
			if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				render.Fail(w, http.StatusUnauthorized, "Unauthorized", "invalid or missing API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
