// Package dispatch drains due follow-up jobs and delivers them. It is the
// only component that moves a ScheduledEmail through its state machine:
// scheduled → sent on delivery, scheduled → failed when the attempt budget is
// exhausted. It never creates or reschedules jobs; that is the scheduler's
// territory.
package dispatch

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/reviewloop/reviewloop-backend/internal/db"
	"github.com/reviewloop/reviewloop-backend/internal/email"
	"github.com/reviewloop/reviewloop-backend/internal/outreach"
	"github.com/reviewloop/reviewloop-backend/internal/templates"
)

// MaxAttempts is the delivery attempt ceiling. The claim increments the
// counter before the send, so a job whose claimed attempts equal MaxAttempts
// has just consumed its final try and moves to failed.
const MaxAttempts = 3

// DefaultBatchSize caps how many due jobs one run picks up.
const DefaultBatchSize = 50

// Config tunes a Dispatcher. Zero values fall back to defaults.
type Config struct {
	// Workers is the number of concurrent delivery goroutines. Default: 3.
	Workers int

	// JobTimeout is the per-job context deadline covering the render, the
	// send, and the state writes. Default: 30s.
	JobTimeout time.Duration

	// BatchSize caps the jobs fetched per run. Default: DefaultBatchSize.
	BatchSize int32
}

// Summary reports one dispatch run.
type Summary struct {
	Processed int `json:"processed"` // delivered and marked sent
	Errors    int `json:"errors"`    // attempts that failed (job may retry later)
	Total     int `json:"total"`     // due jobs picked up this run
}

// Dispatcher owns one batch-processing pass over the scheduled_emails table.
type Dispatcher struct {
	q        db.Querier
	provider email.Provider
	baseURL  string
	cfg      Config
	logger   *slog.Logger
}

// New constructs a Dispatcher. baseURL is the public origin for review links,
// identical to the one the outreach service uses.
func New(q db.Querier, provider email.Provider, baseURL string, cfg Config, logger *slog.Logger) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = 3
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 30 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	return &Dispatcher{
		q:        q,
		provider: provider,
		baseURL:  baseURL,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run fetches one batch of due jobs and processes them with a bounded worker
// pool. A failing job never stops the batch; per-job errors only show up in
// the summary counters. Run itself errors only when the due-job query fails.
func (d *Dispatcher) Run(ctx context.Context) (Summary, error) {
	now := time.Now().UTC()

	jobs, err := d.q.ListDueScheduledEmails(ctx, db.ListDueScheduledEmailsParams{
		ScheduledFor: now,
		Attempts:     MaxAttempts,
		Limit:        d.cfg.BatchSize,
	})
	if err != nil {
		return Summary{}, fmt.Errorf("dispatch: list due jobs: %w", err)
	}

	d.logger.Info("dispatch run starting", "due", len(jobs))

	var (
		mu      sync.Mutex
		summary = Summary{Total: len(jobs)}
		wg      sync.WaitGroup
		queue   = make(chan db.ScheduledEmail)
	)

	for i := 0; i < d.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				ok, attempted := d.processJob(ctx, job)
				mu.Lock()
				if ok {
					summary.Processed++
				} else if attempted {
					summary.Errors++
				}
				mu.Unlock()
			}
		}()
	}

	for _, job := range jobs {
		queue <- job
	}
	close(queue)
	wg.Wait()

	d.logger.Info("dispatch run complete",
		"processed", summary.Processed,
		"errors", summary.Errors,
		"total", summary.Total,
	)
	return summary, nil
}

// processJob claims and delivers a single job. The bool pair is
// (delivered, attempted): the summary only counts jobs whose claim went
// through. A lost claim race or a claim that never reached the database
// reports (false, false) — the job was not attempted, no attempt was
// consumed, and the next run picks it up again.
func (d *Dispatcher) processJob(ctx context.Context, job db.ScheduledEmail) (bool, bool) {
	log := d.logger.With("job_id", job.ID, "email_type", job.EmailType)

	ctx, cancel := context.WithTimeout(ctx, d.cfg.JobTimeout)
	defer cancel()

	// Atomic claim: bump attempts only if the job is still scheduled with the
	// attempt count we read. Zero rows means another dispatcher got here
	// first — skip without counting anything.
	claimed, err := d.q.ClaimScheduledEmail(ctx, db.ClaimScheduledEmailParams{
		ID:       job.ID,
		Attempts: job.Attempts,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("job claimed elsewhere, skipping")
			return false, false
		}
		log.Error("job claim failed", "error", err)
		return false, false
	}

	result, deliverErr := d.deliver(ctx, claimed)
	if deliverErr == nil {
		now := time.Now().UTC()
		if _, err := d.q.MarkScheduledEmailSent(ctx, db.MarkScheduledEmailSentParams{
			ID:     claimed.ID,
			SentAt: sql.NullTime{Time: now, Valid: true},
		}); err != nil {
			log.Error("mark sent failed", "error", err)
			return false, true
		}
		d.logOutcome(ctx, claimed, result.Provider, "sent", nil)
		log.Info("follow-up delivered", "provider", result.Provider, "attempt", claimed.Attempts)
		return true, true
	}

	log.Warn("delivery attempt failed",
		"attempt", claimed.Attempts,
		"max", MaxAttempts,
		"error", deliverErr,
	)

	// Terminal failure: the claim consumed the last attempt. Intermediate
	// failures leave the job scheduled; only the terminal outcome is logged.
	if claimed.Attempts >= MaxAttempts {
		if _, err := d.q.MarkScheduledEmailFailed(ctx, claimed.ID); err != nil {
			log.Error("mark failed failed", "error", err)
		}
		d.logOutcome(ctx, claimed, "system", "failed", deliverErr)
		log.Error("follow-up permanently failed", "error", deliverErr)
	}
	return false, true
}

// deliver renders and sends one claimed job.
func (d *Dispatcher) deliver(ctx context.Context, job db.ScheduledEmail) (email.Result, error) {
	customer, err := d.q.GetCustomerByID(ctx, job.CustomerID)
	if err != nil {
		return email.Result{}, fmt.Errorf("dispatch: get customer: %w", err)
	}
	user, err := d.q.GetUserByID(ctx, customer.UserID)
	if err != nil {
		return email.Result{}, fmt.Errorf("dispatch: get business: %w", err)
	}

	businessName := user.BusinessName
	if businessName == "" {
		businessName = "Our Business"
	}

	reviewURL := outreach.ReviewURL(d.baseURL, customer.ID, customer.Name, businessName)

	// email_type values double as template names.
	rendered, err := templates.Render(string(job.EmailType), templates.Variables{
		CustomerName: customer.Name,
		BusinessName: businessName,
		ReviewURL:    reviewURL,
	})
	if err != nil {
		return email.Result{}, fmt.Errorf("dispatch: render: %w", err)
	}

	return d.provider.Send(ctx, email.Message{
		To:      customer.Email,
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Text:    rendered.Text,
	})
}

// logOutcome appends the terminal email log row. Best-effort.
func (d *Dispatcher) logOutcome(ctx context.Context, job db.ScheduledEmail, provider, status string, deliverErr error) {
	recipient := "unknown"
	if customer, err := d.q.GetCustomerByID(ctx, job.CustomerID); err == nil {
		recipient = customer.Email
	}

	var errMsg sql.NullString
	if deliverErr != nil {
		errMsg = sql.NullString{String: deliverErr.Error(), Valid: true}
	}

	if _, err := d.q.InsertEmailLog(ctx, db.InsertEmailLogParams{
		CustomerID:     job.CustomerID,
		EmailType:      string(job.EmailType),
		RecipientEmail: recipient,
		Provider:       provider,
		Status:         status,
		SentAt:         time.Now().UTC(),
		ErrorMessage:   errMsg,
	}); err != nil {
		d.logger.Error("email log write failed", "job_id", job.ID, "error", err)
	}
}
