// Package api implements the HTTP layer for ReviewLoop. Handlers are methods
// on *Server. Each handler file is responsible for one resource group and only
// imports the dependencies it actually uses.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/reviewloop/reviewloop-backend/internal/billing"
	"github.com/reviewloop/reviewloop-backend/internal/db"
	"github.com/reviewloop/reviewloop-backend/internal/dispatch"
	"github.com/reviewloop/reviewloop-backend/internal/outreach"
	"github.com/reviewloop/reviewloop-backend/internal/store"
)

// The concrete types from main satisfy the handler-facing interfaces.
var (
	_ Store      = (*store.Store)(nil)
	_ Outreach   = (*outreach.Service)(nil)
	_ Dispatcher = (*dispatch.Dispatcher)(nil)
)

// Config holds values read from environment variables at startup.
type Config struct {
	// BaseURL is the public origin review links point at.
	// e.g. "https://app.reviewloop.io"
	BaseURL string

	// StripeWebhookSecret is the signing secret from the Stripe dashboard.
	StripeWebhookSecret string

	// Env is "production", "staging", or "development".
	Env string
}

// Store is the subset of *store.Store the handlers use. Tests inject a stub.
type Store interface {
	CreateCustomerWithRequest(ctx context.Context, p store.CreateCustomerParams) (db.Customer, db.ReviewRequest, error)
	DeleteCustomer(ctx context.Context, customerID uuid.UUID) error
	SubmitReview(ctx context.Context, p store.SubmitReviewParams) (db.Review, error)
}

// Outreach sends the initial review request and schedules follow-ups after a
// customer is created.
type Outreach interface {
	AutomateReviewRequest(ctx context.Context, customerID uuid.UUID) error
}

// Dispatcher runs one pass over due follow-up jobs.
type Dispatcher interface {
	Run(ctx context.Context) (dispatch.Summary, error)
}

// Server holds all shared dependencies. Each handler file attaches methods to
// this type and uses only the fields it needs.
type Server struct {
	// q handles all single-query reads. Injected directly — no repo wrapper.
	q db.Querier

	// store handles multi-step atomic writes.
	store Store

	// outreach runs the initial-request flow for new customers.
	outreach Outreach

	// dispatcher processes due follow-ups when /internal/dispatch is hit.
	dispatcher Dispatcher

	// billing creates PaymentIntents and verifies webhook signatures.
	// May be nil when Stripe is not configured; billing routes return 503.
	billing billing.Client

	cfg    Config
	logger *slog.Logger
}

// NewServer constructs the Server and wires the chi router. The returned
// http.Handler is ready to pass to http.ListenAndServe.
func NewServer(
	q db.Querier,
	st Store,
	outreach Outreach,
	dispatcher Dispatcher,
	billingClient billing.Client,
	cfg Config,
	logger *slog.Logger,
) http.Handler {
	s := &Server{
		q:          q,
		store:      st,
		outreach:   outreach,
		dispatcher: dispatcher,
		billing:    billingClient,
		cfg:        cfg,
		logger:     logger,
	}

	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// ── Global middleware ─────────────────────────────────────────────────────
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(s.corsMiddleware)
	r.Use(middleware.Timeout(30 * time.Second))

	// ── Health ────────────────────────────────────────────────────────────────
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// ── Public review form ────────────────────────────────────────────────────
	// No auth: the customer reaches this from the link in their email.
	r.Post("/review/{customerID}", s.handleSubmitReview)

	// ── API v1 ────────────────────────────────────────────────────────────────
	r.Route("/api", func(r chi.Router) {
		r.Post("/users", s.handleCreateUser)

		r.Route("/customers", func(r chi.Router) {
			r.Post("/", s.handleCreateCustomer)
			r.Get("/", s.handleListCustomers)
			r.Route("/{customerID}", func(r chi.Router) {
				r.Delete("/", s.handleDeleteCustomer)
				r.Get("/emails", s.handleCustomerEmails)
				r.Patch("/tags", s.handleUpdateCustomerTags)
			})
		})

		r.Get("/reviews", s.handleListReviews)

		r.Get("/alerts", s.handleListAlerts)
		r.Post("/alerts/{alertID}/read", s.handleMarkAlertRead)

		r.Post("/billing/checkout", s.handleCreateCheckout)

		// Stripe webhook — no auth (signature verification inside handler).
		r.Post("/webhooks/stripe", s.handleStripeWebhook)
	})

	// ── Internal ──────────────────────────────────────────────────────────────
	// Hit by the platform cron in deployments that disable the in-process
	// runner. Not exposed through the public load balancer.
	r.Post("/internal/dispatch", s.handleDispatch)

	return r
}
