package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/reviewloop/reviewloop-backend/internal/db"
	"github.com/reviewloop/reviewloop-backend/internal/sentiment"
	"github.com/reviewloop/reviewloop-backend/internal/store"
)

// ─── POST /review/{customerID} ────────────────────────────────────────────────

type submitReviewRequest struct {
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

type submitReviewResponse struct {
	ID        string `json:"id"`
	Sentiment string `json:"sentiment"`
	// IsPublic tells the form whether to offer the "share on Google" step.
	// Only positive reviews are public.
	IsPublic bool `json:"is_public"`
}

// handleSubmitReview records a review submitted through the public form.
// Sentiment is classified server-side; a negative review atomically raises an
// unread alert for the owning business.
func (s *Server) handleSubmitReview(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseUUID(chi.URLParam(r, "customerID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	var req submitReviewRequest
	if !decode(w, r, &req) {
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		respondErr(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	class, isPublic := sentiment.Classify(req.Rating, req.Message)

	review, err := s.store.SubmitReview(r.Context(), store.SubmitReviewParams{
		CustomerID: customerID,
		Rating:     int16(req.Rating),
		Message:    req.Message,
		Sentiment:  db.ReviewSentiment(class),
		IsPublic:   isPublic,
	})
	if err != nil {
		if errors.Is(err, store.ErrCustomerNotFound) {
			respondErr(w, http.StatusNotFound, "customer not found")
			return
		}
		s.respondInternalErr(w, r, fmt.Errorf("submit review: %w", err))
		return
	}

	respond(w, http.StatusCreated, submitReviewResponse{
		ID:        review.ID.String(),
		Sentiment: string(review.Sentiment),
		IsPublic:  review.IsPublic,
	})
}

// ─── GET /api/reviews?user_id= ────────────────────────────────────────────────

type reviewResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	Rating      int16     `json:"rating"`
	Message     string    `json:"message"`
	Sentiment   string    `json:"sentiment"`
	IsPublic    bool      `json:"is_public"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUUID(r.URL.Query().Get("user_id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid user_id")
		return
	}

	reviews, err := s.q.ListReviewsByUser(r.Context(), userID)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list reviews: %w", err))
		return
	}

	resp := make([]reviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		resp = append(resp, reviewResponse{
			ID:          rv.ID.String(),
			CustomerID:  rv.CustomerID.String(),
			Rating:      rv.Rating,
			Message:     rv.Message,
			Sentiment:   string(rv.Sentiment),
			IsPublic:    rv.IsPublic,
			SubmittedAt: rv.SubmittedAt,
		})
	}
	respond(w, http.StatusOK, map[string]any{"reviews": resp})
}
