package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reviewloop/reviewloop-backend/internal/db"
)

// Follow-up offsets from the moment the initial request is sent. Two jobs per
// customer, step 1 before step 2, never rescheduled.
const (
	FollowUp1Offset = 5 * 24 * time.Hour
	FollowUp2Offset = 10 * 24 * time.Hour
)

// ScheduleFollowUps inserts the two follow-up jobs for a customer in one
// transaction: followup1 at now+5d and followup2 at now+10d, both scheduled
// with zero attempts. Either both rows exist afterwards or neither does.
//
// Idempotent: the inserts are ON CONFLICT DO NOTHING against the unique
// (customer_id, email_type) constraint, so a repeat call (queue redelivery,
// fallback after an ambiguous publish) leaves the existing campaign alone and
// returns only the rows it created. The review request's follow_ups_scheduled
// flag still keeps the orchestrator from calling this more than once per
// customer in the common path.
func (s *Store) ScheduleFollowUps(ctx context.Context, customerID uuid.UUID, now time.Time) ([]db.ScheduledEmail, error) {
	var jobs []db.ScheduledEmail

	err := s.withTx(ctx, func(ctx context.Context, q db.Querier) error {
		steps := []struct {
			emailType db.EmailType
			offset    time.Duration
		}{
			{db.EmailTypeFollowup1, FollowUp1Offset},
			{db.EmailTypeFollowup2, FollowUp2Offset},
		}

		jobs = jobs[:0]
		for _, step := range steps {
			job, err := q.InsertScheduledEmail(ctx, db.InsertScheduledEmailParams{
				CustomerID:   customerID,
				EmailType:    step.emailType,
				ScheduledFor: now.Add(step.offset),
			})
			if errors.Is(err, sql.ErrNoRows) {
				// Conflict with an existing job of this type: already
				// scheduled, nothing to do.
				continue
			}
			if err != nil {
				return fmt.Errorf("ScheduleFollowUps: insert %s: %w", step.emailType, err)
			}
			jobs = append(jobs, job)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return jobs, nil
}
