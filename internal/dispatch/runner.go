package dispatch

import (
	"context"
	"log/slog"
	"time"
)

// DefaultInterval is how often the Runner triggers a dispatch run.
const DefaultInterval = time.Minute

// Runner drives the Dispatcher on a fixed interval, replacing an external
// cron. A run fires immediately on Start so a restart never delays overdue
// jobs by a full interval.
type Runner struct {
	dispatcher *Dispatcher
	interval   time.Duration
	logger     *slog.Logger
}

// NewRunner constructs a Runner. A non-positive interval selects
// DefaultInterval.
func NewRunner(d *Dispatcher, interval time.Duration, logger *slog.Logger) *Runner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Runner{dispatcher: d, interval: interval, logger: logger}
}

// Start blocks until ctx is cancelled. Call it in a goroutine from main:
//
//	go runner.Start(ctx)
func (r *Runner) Start(ctx context.Context) {
	r.logger.Info("dispatch runner starting", "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("dispatch runner stopped")
			return
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

func (r *Runner) runOnce(ctx context.Context) {
	if _, err := r.dispatcher.Run(ctx); err != nil {
		r.logger.Error("dispatch run failed", "error", err)
	}
}
