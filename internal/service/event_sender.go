package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"emergencyAPI/internal/config"
	"emergencyAPI/internal/domain"
	"emergencyAPI/internal/metrics"
	"emergencyAPI/pkg/e"
)

// EventSource blocks up to timeout for the next report event and returns
// e.ErrQueueEmpty when none arrived.
type EventSource interface {
	Dequeue(ctx context.Context, timeout time.Duration) (domain.ReportEvent, error)
}

// EventSender delivers queued report events to the configured webhook.
type EventSender struct {
	logger  *slog.Logger
	cfg     config.WebhookConfig
	source  EventSource
	http    *http.Client
	backoff func(attempt int) time.Duration
}

func NewEventSender(logger *slog.Logger, cfg config.WebhookConfig, source EventSource) *EventSender {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	return &EventSender{
		logger:  logger,
		cfg:     cfg,
		source:  source,
		http:    &http.Client{Timeout: cfg.Timeout},
		backoff: func(attempt int) time.Duration { return time.Duration(attempt) * time.Second },
	}
}

// SetBackoff replaces the delay between delivery attempts.
func (s *EventSender) SetBackoff(fn func(attempt int) time.Duration) {
	if fn != nil {
		s.backoff = fn
	}
}

func (s *EventSender) Run(ctx context.Context) {
	s.logger.Info("event sender started", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("event sender stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		event, err := s.source.Dequeue(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			s.logger.Error("dequeue failed", slog.Any("error", err))
			s.sleep(ctx, 500*time.Millisecond)
			continue
		}

		s.logger.Debug("sending report event",
			slog.String("type", string(event.Type)),
			slog.String("report_id", event.ReportID.String()),
		)
		s.Deliver(ctx, event)
	}
}

// Deliver posts one event, retrying with a linear backoff. It reports
// whether the webhook accepted the event.
func (s *EventSender) Deliver(ctx context.Context, event domain.ReportEvent) bool {
	body, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal report event failed", slog.Any("error", err))
		return false
	}

	for attempt := 1; attempt <= s.cfg.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return false
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create webhook request failed", slog.Any("error", err))
			return false
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Event-Type", string(event.Type))

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			metrics.WebhookDeliveriesTotal.WithLabelValues("ok").Inc()
			return true
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else {
			reason = resp.Status
			_ = resp.Body.Close()
		}

		s.logger.Warn("webhook failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.URL),
			slog.String("reason", reason),
		)
		metrics.WebhookDeliveriesTotal.WithLabelValues("retry").Inc()

		if attempt < s.cfg.MaxRetries {
			s.sleep(ctx, s.backoff(attempt))
		}
	}

	metrics.WebhookDeliveriesTotal.WithLabelValues("failed").Inc()
	return false
}

func (s *EventSender) sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
