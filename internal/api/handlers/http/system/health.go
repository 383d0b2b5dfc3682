package system

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"emergencyAPI/internal/render"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	logger *slog.Logger
	checks map[string]Pinger
}

// NewHandler takes the dependencies the readiness check pings, by name.
func NewHandler(logger *slog.Logger, checks map[string]Pinger) *Handler {
	return &Handler{logger: logger, checks: checks}
}

func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) SystemReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := make(map[string]string, len(h.checks))
	var failed []string
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			h.logger.Warn("readiness check failed", slog.String("dependency", name), slog.Any("error", err))
			status[name] = "down"
			failed = append(failed, name+" is unavailable")
			continue
		}
		status[name] = "up"
	}

	if len(failed) > 0 {
		render.JSON(w, http.StatusServiceUnavailable, map[string]any{
			"success": false,
			"message": "Not ready",
			"data":    status,
			"errors":  failed,
		})
		return
	}
	render.OK(w, http.StatusOK, "Ready", status)
}
