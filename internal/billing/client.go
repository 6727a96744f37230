// Package billing defines the interface for Stripe API calls and webhook
// verification used by the plan-upgrade flow, plus helpers shared with the
// api package.
package billing

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sqlc-dev/pqtype"

	"github.com/reviewloop/reviewloop-backend/internal/db"
)

// ─── PLANS ────────────────────────────────────────────────────────────────────

// Plan is a purchasable subscription tier.
type Plan struct {
	Name        string
	AmountCents int64
}

// Plans is the catalogue of paid tiers.
var Plans = map[string]Plan{
	"pro":     {Name: "pro", AmountCents: 2999},
	"premium": {Name: "premium", AmountCents: 4999},
}

// ErrUnknownPlan is returned for a plan name outside the catalogue.
var ErrUnknownPlan = errors.New("billing: unknown plan")

// PlanByName resolves a catalogue entry.
func PlanByName(name string) (Plan, error) {
	p, ok := Plans[name]
	if !ok {
		return Plan{}, fmt.Errorf("%w: %q", ErrUnknownPlan, name)
	}
	return p, nil
}

// ─── TYPES ────────────────────────────────────────────────────────────────────

// CreatePaymentIntentParams holds the inputs for creating a Stripe PI.
type CreatePaymentIntentParams struct {
	AmountCents int64
	Currency    string
	Email       string
	Metadata    map[string]string
}

// PaymentIntent is the subset of a Stripe PaymentIntent that callers need.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	CustomerID   string // may be empty if no Customer was created
}

// Event is a parsed Stripe webhook event. DataRaw contains the raw JSON of the
// event's data.object so handlers can unmarshal only what they need.
type Event struct {
	ID      string
	Type    string
	DataRaw json.RawMessage
}

// ─── CLIENT INTERFACE ─────────────────────────────────────────────────────────

// Client is the interface the api package uses for all Stripe calls. The
// concrete implementation wraps the official stripe-go SDK. Tests inject a
// stub.
type Client interface {
	// CreatePaymentIntent creates a new PI and returns its client_secret.
	CreatePaymentIntent(ctx context.Context, p CreatePaymentIntentParams) (PaymentIntent, error)

	// GetClientSecret retrieves the client_secret for an existing PI by ID.
	// Used when the user already has a pending upgrade (checkout retry path).
	GetClientSecret(ctx context.Context, paymentIntentID string) (string, error)

	// VerifyWebhook validates the Stripe-Signature header and returns the
	// parsed event. Returns an error if the signature is invalid or expired.
	VerifyWebhook(payload []byte, sigHeader string, secret string) (Event, error)
}

// ─── HELPERS USED BY api/ ────────────────────────────────────────────────────

// ToUpsertParams converts a parsed Event and its raw payload into the params
// for db.Querier.UpsertBillingEvent. The ON CONFLICT DO NOTHING query
// surfaces a duplicate delivery as sql.ErrNoRows.
func ToUpsertParams(event Event, rawPayload []byte) db.UpsertBillingEventParams {
	return db.UpsertBillingEventParams{
		StripeEventID: event.ID,
		Type:          event.Type,
		Payload:       pqRaw(rawPayload),
	}
}

// ToMarkFailedParams builds the params for db.Querier.MarkBillingEventFailed.
func ToMarkFailedParams(eventID string, err error) db.MarkBillingEventFailedParams {
	return db.MarkBillingEventFailedParams{
		StripeEventID: eventID,
		Error:         sql.NullString{String: err.Error(), Valid: true},
	}
}

func pqRaw(b []byte) pqtype.NullRawMessage {
	return pqtype.NullRawMessage{RawMessage: json.RawMessage(b), Valid: len(b) > 0}
}

// ExtractPaymentIntentID pulls the PaymentIntent id field from the event's
// data.object. Works for payment_intent.* events.
func ExtractPaymentIntentID(event Event) (string, error) {
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(event.DataRaw, &obj); err != nil {
		return "", fmt.Errorf("billing: unmarshal payment intent id: %w", err)
	}
	if obj.ID == "" {
		return "", fmt.Errorf("billing: payment intent id is empty in event %s", event.ID)
	}
	return obj.ID, nil
}
