// Package outreach orchestrates the review-request flow: look up the
// customer and owning business, build the review link, render the template,
// deliver through the email provider, and record the outcome in the delivery
// log.
package outreach

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/reviewloop/reviewloop-backend/internal/db"
	"github.com/reviewloop/reviewloop-backend/internal/email"
	"github.com/reviewloop/reviewloop-backend/internal/scheduling"
	"github.com/reviewloop/reviewloop-backend/internal/templates"
)

// Email types accepted by SendReviewRequest. Anything else renders the
// initial template, matching the review form's default.
const (
	TypeInitial   = "initial"
	TypeFollowUp1 = "followup1"
	TypeFollowUp2 = "followup2"
)

var (
	// ErrCustomerNotFound is returned when the customer row is missing.
	ErrCustomerNotFound = errors.New("outreach: customer not found")

	// ErrBusinessNotFound is returned when the customer's owning user row is
	// missing.
	ErrBusinessNotFound = errors.New("outreach: business not found")
)

// Service is the review-request orchestrator.
type Service struct {
	q         db.Querier
	provider  email.Provider
	scheduler scheduling.Scheduler
	baseURL   string // public site origin for review links
	logger    *slog.Logger
}

// New wires the orchestrator. baseURL is the public origin review links point
// at, e.g. "https://app.reviewloop.io".
func New(q db.Querier, provider email.Provider, scheduler scheduling.Scheduler, baseURL string, logger *slog.Logger) *Service {
	return &Service{
		q:         q,
		provider:  provider,
		scheduler: scheduler,
		baseURL:   baseURL,
		logger:    logger,
	}
}

// templateFor maps an outreach email type to its template name.
func templateFor(emailType string) string {
	switch emailType {
	case TypeFollowUp1:
		return templates.FollowUp1
	case TypeFollowUp2:
		return templates.FollowUp2
	default:
		return templates.ReviewRequest
	}
}

// SendReviewRequest delivers one outreach email to the customer and appends a
// delivery log entry with the outcome. Delivery failures are returned to the
// caller after logging; log-write failures are swallowed so they never mask
// the delivery outcome.
func (s *Service) SendReviewRequest(ctx context.Context, customerID uuid.UUID, emailType string) (email.Result, error) {
	customer, err := s.q.GetCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return email.Result{}, ErrCustomerNotFound
		}
		return email.Result{}, fmt.Errorf("outreach: get customer: %w", err)
	}

	user, err := s.q.GetUserByID(ctx, customer.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return email.Result{}, ErrBusinessNotFound
		}
		return email.Result{}, fmt.Errorf("outreach: get business: %w", err)
	}

	businessName := user.BusinessName
	if businessName == "" {
		businessName = "Our Business"
	}

	reviewURL := ReviewURL(s.baseURL, customer.ID, customer.Name, businessName)

	rendered, err := templates.Render(templateFor(emailType), templates.Variables{
		CustomerName: customer.Name,
		BusinessName: businessName,
		ReviewURL:    reviewURL,
	})
	if err != nil {
		return email.Result{}, fmt.Errorf("outreach: render %s: %w", emailType, err)
	}

	result, sendErr := s.provider.Send(ctx, email.Message{
		To:      customer.Email,
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Text:    rendered.Text,
	})

	s.logDelivery(ctx, customer, emailType, result, sendErr)

	if sendErr != nil {
		return email.Result{}, sendErr
	}
	return result, nil
}

// AutomateReviewRequest runs the full flow for a new customer: send the
// initial request, schedule the two follow-ups (once — guarded by the review
// request's flag), and mark the request sent. A scheduling failure is logged
// but does not abort the flow; the request is still marked sent so the
// initial delivery is never repeated.
func (s *Service) AutomateReviewRequest(ctx context.Context, customerID uuid.UUID) error {
	request, err := s.q.GetReviewRequestByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("outreach: get review request: %w", err)
	}

	if _, err := s.SendReviewRequest(ctx, customerID, TypeInitial); err != nil {
		return err
	}

	now := time.Now().UTC()

	if !request.FollowUpsScheduled {
		if err := s.scheduler.ScheduleFollowUps(ctx, customerID, now); err != nil {
			s.logger.Error("follow-up scheduling failed",
				"customer_id", customerID,
				"error", err,
			)
		}
	}

	if _, err := s.q.MarkReviewRequestSent(ctx, db.MarkReviewRequestSentParams{
		CustomerID: customerID,
		SentAt:     sql.NullTime{Time: now, Valid: true},
	}); err != nil {
		return fmt.Errorf("outreach: mark request sent: %w", err)
	}
	return nil
}

// logDelivery appends the email log row. Best-effort: a failed write is
// logged and dropped.
func (s *Service) logDelivery(ctx context.Context, customer db.Customer, emailType string, result email.Result, sendErr error) {
	status := "sent"
	var errMsg sql.NullString
	if sendErr != nil {
		status = "failed"
		errMsg = sql.NullString{String: sendErr.Error(), Valid: true}
	}

	provider := result.Provider
	if provider == "" {
		provider = s.provider.Name()
	}

	if _, err := s.q.InsertEmailLog(ctx, db.InsertEmailLogParams{
		CustomerID:     customer.ID,
		EmailType:      emailType,
		RecipientEmail: customer.Email,
		Provider:       provider,
		Status:         status,
		SentAt:         time.Now().UTC(),
		ErrorMessage:   errMsg,
	}); err != nil {
		s.logger.Error("email log write failed",
			"customer_id", customer.ID,
			"email_type", emailType,
			"error", err,
		)
	}
}
