// Package scheduling creates follow-up jobs for a customer. Two transports
// exist: an AMQP queue (the broker decouples scheduling from the request
// path) and direct insertion through the store. Both end in the same
// store.ScheduleFollowUps call, so the persisted rows are identical whichever
// path ran.
package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/reviewloop/reviewloop-backend/internal/store"
)

// Scheduler queues the two follow-up emails for a customer. The now argument
// anchors the +5d/+10d offsets so retries and queued messages produce the
// same schedule as an immediate insert.
type Scheduler interface {
	ScheduleFollowUps(ctx context.Context, customerID uuid.UUID, now time.Time) error
}

// storeScheduler inserts the jobs directly. It is both the fallback when the
// broker is down and the only transport in broker-less deployments.
type storeScheduler struct {
	store *store.Store
}

// NewStoreScheduler returns a Scheduler that writes straight to the store.
func NewStoreScheduler(st *store.Store) Scheduler {
	return &storeScheduler{store: st}
}

func (s *storeScheduler) ScheduleFollowUps(ctx context.Context, customerID uuid.UUID, now time.Time) error {
	_, err := s.store.ScheduleFollowUps(ctx, customerID, now)
	return err
}
