package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"

	"emergencyAPI/internal/auth"
	"emergencyAPI/internal/render"
)

type TokenVerifier interface {
	Verify(raw string) (auth.Identity, error)
}

// Authenticate requires a valid bearer token and stores the caller
// identity in the request context.
func Authenticate(verifier TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				logger.Warn("missing bearer token",
					slog.String("path", r.URL.Path),
					slog.String("request_id", chimw.GetReqID(r.Context())))
				render.Fail(w, http.StatusUnauthorized, "Unauthorized", "authentication token required")
				return
			}

			id, err := verifier.Verify(token)
			if err != nil {
				logger.Warn("invalid bearer token",
					slog.String("path", r.URL.Path),
					slog.String("request_id", chimw.GetReqID(r.Context())),
					slog.Any("error", err))
				render.Fail(w, http.StatusUnauthorized, "Unauthorized", "invalid authentication token")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(h[7:])
	return token, token != ""
}
