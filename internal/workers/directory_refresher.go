package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DirectoryReloader rebuilds the facility index from the store.
type DirectoryReloader interface {
	Reload(ctx context.Context) error
}

// EventRunner drains the report event queue until ctx is done.
type EventRunner interface {
	Run(ctx context.Context)
}

// DirectoryRefresher periodically reloads the emergency site directory so
// facilities written by other instances show up without a restart.
type DirectoryRefresher struct {
	directory DirectoryReloader
	interval  time.Duration
	logger    *slog.Logger
}

func NewDirectoryRefresher(directory DirectoryReloader, interval time.Duration, logger *slog.Logger) *DirectoryRefresher {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &DirectoryRefresher{
		directory: directory,
		interval:  interval,
		logger:    logger,
	}
}

// Run loads the directory once and then on every tick.
func (w *DirectoryRefresher) Run(ctx context.Context) {
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *DirectoryRefresher) refresh(ctx context.Context) {
	const op = "workers.DirectoryRefresher.refresh"

	start := time.Now()
	if err := w.directory.Reload(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Error("directory reload failed", slog.String("op", op), slog.Any("error", err))
		return
	}
	w.logger.Debug("directory reloaded", slog.Duration("latency", time.Since(start)))
}

// Pool runs the background jobs and waits for all of them to stop.
type Pool struct {
	refresher *DirectoryRefresher
	senders   []EventRunner
}

func NewPool(refresher *DirectoryRefresher, senders ...EventRunner) *Pool {
	return &Pool{refresher: refresher, senders: senders}
}

func (p *Pool) Run(ctx context.Context) {
	var wg sync.WaitGroup

	if p.refresher != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.refresher.Run(ctx)
		}()
	}

	for _, s := range p.senders {
		wg.Add(1)
		go func(s EventRunner) {
			defer wg.Done()
			s.Run(ctx)
		}(s)
	}

	wg.Wait()
}
