// Package render writes the JSON envelope shared by every endpoint.
package render

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	geojson "github.com/paulmach/go.geojson"

	"emergencyAPI/internal/domain"
	"emergencyAPI/pkg/e"
)

func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func OK(w http.ResponseWriter, code int, message string, data any) {
	JSON(w, code, domain.OK(message, data))
}

// Fail answers with success=false and the given field messages.
func Fail(w http.ResponseWriter, code int, message string, errs ...string) {
	JSON(w, code, domain.Fail(message, errs...))
}

// Error maps err onto its status. Validation errors keep their text so
// the client knows which field to fix; server failures never leak details.
func Error(w http.ResponseWriter, l *slog.Logger, r *http.Request, err error) {
	code, message := e.HTTPStatus(err)

	attrs := []any{
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", code),
		slog.Any("error", err),
	}
	if code >= http.StatusInternalServerError {
		l.Error("request failed", attrs...)
		Fail(w, code, message)
		return
	}
	l.Warn("request rejected", attrs...)

	if errors.Is(err, e.ErrInvalidInput) {
		Fail(w, code, message, err.Error())
		return
	}
	Fail(w, code, message)
}

// GeoJSON writes a bare FeatureCollection, not wrapped in the envelope.
func GeoJSON(w http.ResponseWriter, l *slog.Logger, fc *geojson.FeatureCollection) {
	body, err := fc.MarshalJSON()
	if err != nil {
		l.Error("geojson encode failed", slog.Any("error", err))
		Fail(w, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
