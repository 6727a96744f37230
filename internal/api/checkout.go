package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/reviewloop/reviewloop-backend/internal/billing"
	"github.com/reviewloop/reviewloop-backend/internal/db"
)

// ─── POST /api/billing/checkout ───────────────────────────────────────────────

type createCheckoutRequest struct {
	UserID string `json:"user_id"`
	Plan   string `json:"plan"` // "pro" | "premium"
}

type createCheckoutResponse struct {
	// ClientSecret is the Stripe PaymentIntent client_secret. The browser
	// passes this to Stripe.js to render the payment UI and confirm the charge.
	ClientSecret string `json:"client_secret"`
	// IsExisting is true when the user already had a pending PaymentIntent
	// (i.e. they opened checkout twice). The returned secret is still valid
	// and confirmable.
	IsExisting bool `json:"is_existing,omitempty"`
}

// handleCreateCheckout creates a Stripe PaymentIntent for the chosen plan and
// attaches it to the user. Opening checkout a second time returns the pending
// PaymentIntent's client_secret instead of creating another charge.
func (s *Server) handleCreateCheckout(w http.ResponseWriter, r *http.Request) {
	if s.billing == nil {
		respondErr(w, http.StatusServiceUnavailable, "billing is not configured")
		return
	}

	var req createCheckoutRequest
	if !decode(w, r, &req) {
		return
	}

	userID, err := parseUUID(req.UserID)
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid user_id")
		return
	}

	plan, err := billing.PlanByName(req.Plan)
	if err != nil {
		respondErr(w, http.StatusBadRequest, "unknown plan: "+req.Plan)
		return
	}

	user, err := s.q.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondErr(w, http.StatusNotFound, "user not found")
			return
		}
		s.respondInternalErr(w, r, fmt.Errorf("get user: %w", err))
		return
	}

	// ── Retry path: a pending upgrade already has a PI ────────────────────────
	if user.PlanStatus == "pending" && user.StripePaymentIntent.Valid {
		clientSecret, err := s.billing.GetClientSecret(r.Context(), user.StripePaymentIntent.String)
		if err != nil {
			// PI exists in our DB but Stripe can't find it — unusual.
			// Fall through to create a new one.
			s.logger.Warn("checkout: pending PI not found in Stripe, creating new",
				"pi", user.StripePaymentIntent.String,
				"error", err,
				logField(r),
			)
		} else {
			respond(w, http.StatusOK, createCheckoutResponse{
				ClientSecret: clientSecret,
				IsExisting:   true,
			})
			return
		}
	}

	// ── Create a new Stripe PaymentIntent ─────────────────────────────────────
	pi, err := s.billing.CreatePaymentIntent(r.Context(), billing.CreatePaymentIntentParams{
		AmountCents: plan.AmountCents,
		Currency:    "usd",
		Email:       user.Email,
		Metadata: map[string]string{
			"user_id": userID.String(),
			"plan":    plan.Name,
		},
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("create payment intent: %w", err))
		return
	}

	if _, err := s.q.AttachPlanPaymentIntent(r.Context(), db.AttachPlanPaymentIntentParams{
		ID:                  userID,
		Plan:                plan.Name,
		StripeCustomerID:    sql.NullString{String: pi.CustomerID, Valid: pi.CustomerID != ""},
		StripePaymentIntent: sql.NullString{String: pi.ID, Valid: true},
	}); err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("attach payment intent: %w", err))
		return
	}

	respond(w, http.StatusOK, createCheckoutResponse{
		ClientSecret: pi.ClientSecret,
	})
}
