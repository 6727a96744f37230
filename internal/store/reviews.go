package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/reviewloop/reviewloop-backend/internal/db"
)

// SubmitReviewParams carries an already-classified review. Sentiment analysis
// happens in the handler (internal/sentiment); the store only persists.
type SubmitReviewParams struct {
	CustomerID uuid.UUID
	Rating     int16
	Message    string
	Sentiment  db.ReviewSentiment
	IsPublic   bool
}

// SubmitReview atomically records the review and, when sentiment is negative,
// raises an unread alert for the owning business. The alert references the
// review row, so both exist or neither does — a negative review can never be
// silently missing its alert.
func (s *Store) SubmitReview(ctx context.Context, p SubmitReviewParams) (db.Review, error) {
	var review db.Review

	err := s.withTx(ctx, func(ctx context.Context, q db.Querier) error {
		customer, err := q.GetCustomerByID(ctx, p.CustomerID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrCustomerNotFound
			}
			return fmt.Errorf("SubmitReview: get customer: %w", err)
		}

		created, err := q.CreateReview(ctx, db.CreateReviewParams{
			CustomerID: p.CustomerID,
			Rating:     p.Rating,
			Message:    p.Message,
			Sentiment:  p.Sentiment,
			IsPublic:   p.IsPublic,
		})
		if err != nil {
			return fmt.Errorf("SubmitReview: create review: %w", err)
		}

		if created.Sentiment == db.ReviewSentimentNegative {
			if _, err := q.CreateAlert(ctx, db.CreateAlertParams{
				UserID:   customer.UserID,
				ReviewID: created.ID,
				Type:     "negative",
			}); err != nil {
				return fmt.Errorf("SubmitReview: create alert: %w", err)
			}
		}

		review = created
		return nil
	})
	if err != nil {
		return db.Review{}, err
	}

	return review, nil
}
