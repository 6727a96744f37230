package api

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/reviewloop/reviewloop-backend/internal/billing"
)

// ─── POST /api/webhooks/stripe ────────────────────────────────────────────────

// handleStripeWebhook is the entry point for all Stripe webhook deliveries.
//
// Stripe delivers events at-least-once and may retry on non-2xx responses.
// The handler must be idempotent: the billing_events ledger uses ON CONFLICT
// DO NOTHING, so a replayed event is acked without re-running its handler.
//
// The only events we act on are:
//   - payment_intent.succeeded      → activate the user's plan
//   - payment_intent.payment_failed → flag the pending upgrade as failed
func (s *Server) handleStripeWebhook(w http.ResponseWriter, r *http.Request) {
	if s.billing == nil {
		respondErr(w, http.StatusServiceUnavailable, "billing is not configured")
		return
	}

	// ── 1. Read and size-limit the body ───────────────────────────────────────
	// Stripe recommends reading the raw body before any other processing so
	// the signature check runs against the exact bytes Stripe signed.
	r.Body = http.MaxBytesReader(w, r.Body, 65536) // 64 KB — generous for any Stripe event
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		respondErr(w, http.StatusBadRequest, "could not read request body")
		return
	}

	// ── 2. Verify the Stripe-Signature header ─────────────────────────────────
	sig := r.Header.Get("Stripe-Signature")
	event, err := s.billing.VerifyWebhook(payload, sig, s.cfg.StripeWebhookSecret)
	if err != nil {
		s.logger.Warn("webhook: invalid signature", "error", err, logField(r))
		respondErr(w, http.StatusBadRequest, "invalid webhook signature")
		return
	}

	// ── 3. Idempotency: record the event, skip if already processed ───────────
	// When a duplicate event_id arrives Postgres returns zero rows, which sqlc
	// surfaces as sql.ErrNoRows — not a nil struct. We treat that as an
	// idempotent success and ack immediately so Stripe stops retrying.
	_, err = s.q.UpsertBillingEvent(r.Context(), billing.ToUpsertParams(event, payload))
	if errors.Is(err, sql.ErrNoRows) {
		s.logger.Debug("webhook: duplicate event, skipping", "event_id", event.ID, logField(r))
		w.WriteHeader(http.StatusOK)
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("upsert billing event: %w", err))
		return
	}

	// ── 4. Dispatch by event type ─────────────────────────────────────────────
	var handlerErr error

	switch event.Type {
	case "payment_intent.succeeded":
		handlerErr = s.onPaymentSucceeded(r, event)

	case "payment_intent.payment_failed":
		handlerErr = s.onPaymentFailed(r, event)

	default:
		// Unknown event type — ack immediately so Stripe stops retrying.
		s.logger.Debug("webhook: unhandled event type", "type", event.Type, logField(r))
	}

	// ── 5. Mark event processed (or failed) ───────────────────────────────────
	if handlerErr != nil {
		s.logger.Error("webhook: handler error",
			"event_id", event.ID,
			"type", event.Type,
			"error", handlerErr,
			logField(r),
		)
		// Record the failure in billing_events so it can be investigated.
		_, _ = s.q.MarkBillingEventFailed(r.Context(), billing.ToMarkFailedParams(event.ID, handlerErr))
		// Return 500 so Stripe retries delivery.
		respondErr(w, http.StatusInternalServerError, "webhook handler failed")
		return
	}

	_, _ = s.q.MarkBillingEventProcessed(r.Context(), event.ID)
	w.WriteHeader(http.StatusOK)
}

// ─── EVENT HANDLERS ───────────────────────────────────────────────────────────

func (s *Server) onPaymentSucceeded(r *http.Request, event billing.Event) error {
	piID, err := billing.ExtractPaymentIntentID(event)
	if err != nil {
		return fmt.Errorf("onPaymentSucceeded: extract PI id: %w", err)
	}

	user, err := s.q.ActivatePlanByPaymentIntent(r.Context(), sql.NullString{
		String: piID,
		Valid:  true,
	})
	if errors.Is(err, sql.ErrNoRows) {
		// No user row carries this PI. Either the attach step never committed
		// or the PI belongs to another environment; retrying won't help.
		s.logger.Warn("webhook: payment succeeded for unknown PI",
			"pi_id", piID,
			"event_id", event.ID,
			logField(r),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("onPaymentSucceeded: activate plan: %w", err)
	}

	s.logger.Info("plan activated",
		"user_id", user.ID,
		"plan", user.Plan,
		logField(r),
	)
	return nil
}

func (s *Server) onPaymentFailed(r *http.Request, event billing.Event) error {
	piID, err := billing.ExtractPaymentIntentID(event)
	if err != nil {
		return fmt.Errorf("onPaymentFailed: extract PI id: %w", err)
	}

	_, err = s.q.MarkPlanPaymentFailed(r.Context(), sql.NullString{
		String: piID,
		Valid:  true,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil // informational event for a PI we don't track
	}
	if err != nil {
		return fmt.Errorf("onPaymentFailed: mark plan failed: %w", err)
	}

	return nil
}
