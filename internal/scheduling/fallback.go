package scheduling

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// fallbackScheduler wraps two Schedulers. It calls the primary first; if that
// returns an error it logs the failure and tries the secondary. This gives
// you the AMQP queue as the default with direct store insertion as the safety
// net — a broker outage degrades scheduling to synchronous writes instead of
// losing the campaign.
type fallbackScheduler struct {
	primary   Scheduler
	secondary Scheduler
	logger    *slog.Logger
}

// NewFallbackScheduler returns a Scheduler that calls primary and, on
// failure, falls back to secondary. Either argument may be nil — if primary
// is nil it goes straight to secondary; if secondary is nil and primary
// fails, the primary error is returned directly.
func NewFallbackScheduler(primary, secondary Scheduler, logger *slog.Logger) Scheduler {
	return &fallbackScheduler{
		primary:   primary,
		secondary: secondary,
		logger:    logger,
	}
}

func (f *fallbackScheduler) ScheduleFollowUps(ctx context.Context, customerID uuid.UUID, now time.Time) error {
	if f.primary != nil {
		err := f.primary.ScheduleFollowUps(ctx, customerID, now)
		if err == nil {
			return nil
		}
		f.logger.Warn("scheduling: primary transport failed, trying fallback",
			"customer_id", customerID,
			"error", err,
		)
		if f.secondary == nil {
			return fmt.Errorf("scheduling: primary failed and no fallback configured: %w", err)
		}
	}

	return f.secondary.ScheduleFollowUps(ctx, customerID, now)
}
