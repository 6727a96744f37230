package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"

	"github.com/reviewloop/reviewloop-backend/internal/db"
)

// ─── INPUT TYPES ─────────────────────────────────────────────────────────────

// CreateCustomerParams groups the fields written when a customer is added.
type CreateCustomerParams struct {
	UserID      uuid.UUID
	Name        string
	Email       string
	Phone       string // optional
	ServiceDate time.Time
	Tags        json.RawMessage // optional
}

// ─── ERRORS ──────────────────────────────────────────────────────────────────

// ErrCustomerNotFound is returned when the referenced customer row does not
// exist.
var ErrCustomerNotFound = errors.New("store: customer not found")

// ─── METHODS ─────────────────────────────────────────────────────────────────

// CreateCustomerWithRequest atomically inserts the customer row and its
// pending review request. The request row is created up front so the outreach
// orchestrator always has a row to flip to sent; the unique constraint on
// customer_id means there can never be two live requests for one customer.
//
// If the request insert fails the customer insert rolls back too, so a
// half-created customer (reachable but unreachable by the outreach flow)
// cannot exist.
func (s *Store) CreateCustomerWithRequest(ctx context.Context, p CreateCustomerParams) (db.Customer, db.ReviewRequest, error) {
	var (
		customer db.Customer
		request  db.ReviewRequest
	)

	err := s.withTx(ctx, func(ctx context.Context, q db.Querier) error {
		created, err := q.CreateCustomer(ctx, db.CreateCustomerParams{
			UserID: p.UserID,
			Name:   p.Name,
			Email:  p.Email,
			Phone: sql.NullString{
				String: p.Phone,
				Valid:  p.Phone != "",
			},
			ServiceDate: p.ServiceDate,
			Tags: pqtype.NullRawMessage{
				RawMessage: p.Tags,
				Valid:      len(p.Tags) > 0,
			},
		})
		if err != nil {
			return fmt.Errorf("CreateCustomerWithRequest: create customer: %w", err)
		}

		req, err := q.CreateReviewRequest(ctx, created.ID)
		if err != nil {
			return fmt.Errorf("CreateCustomerWithRequest: create review request: %w", err)
		}

		customer = created
		request = req
		return nil
	})
	if err != nil {
		return db.Customer{}, db.ReviewRequest{}, err
	}

	return customer, request, nil
}

// DeleteCustomer removes a customer and everything it owns: alerts raised by
// its reviews, the reviews themselves, its scheduled follow-up jobs, and its
// review request. The schema deliberately has no ON DELETE CASCADE, so the
// ordering here is the cascade.
//
// email_logs rows are NOT touched: the delivery audit trail outlives the
// customer.
func (s *Store) DeleteCustomer(ctx context.Context, customerID uuid.UUID) error {
	return s.withTx(ctx, func(ctx context.Context, q db.Querier) error {
		if _, err := q.GetCustomerByID(ctx, customerID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrCustomerNotFound
			}
			return fmt.Errorf("DeleteCustomer: get customer: %w", err)
		}

		// Alerts reference reviews, so they go first.
		if err := q.DeleteAlertsByCustomer(ctx, customerID); err != nil {
			return fmt.Errorf("DeleteCustomer: delete alerts: %w", err)
		}
		if err := q.DeleteReviewsByCustomer(ctx, customerID); err != nil {
			return fmt.Errorf("DeleteCustomer: delete reviews: %w", err)
		}
		if err := q.DeleteScheduledEmailsByCustomer(ctx, customerID); err != nil {
			return fmt.Errorf("DeleteCustomer: delete scheduled emails: %w", err)
		}
		if err := q.DeleteReviewRequestByCustomer(ctx, customerID); err != nil {
			return fmt.Errorf("DeleteCustomer: delete review request: %w", err)
		}
		if err := q.DeleteCustomer(ctx, customerID); err != nil {
			return fmt.Errorf("DeleteCustomer: delete customer: %w", err)
		}
		return nil
	})
}
