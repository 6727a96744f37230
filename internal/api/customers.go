package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sqlc-dev/pqtype"

	"github.com/reviewloop/reviewloop-backend/internal/db"
	"github.com/reviewloop/reviewloop-backend/internal/store"
)

// ─── POST /api/customers ──────────────────────────────────────────────────────

type createCustomerRequest struct {
	UserID      string          `json:"user_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	ServiceDate string          `json:"service_date"` // "2006-01-02"
	Tags        json.RawMessage `json:"tags"`
}

type customerResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone,omitempty"`
	ServiceDate string          `json:"service_date"`
	Tags        json.RawMessage `json:"tags,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type createCustomerResponse struct {
	Customer customerResponse `json:"customer"`
	// RequestSent is false when the initial review request could not be
	// delivered. The customer row is created regardless; delivery can be
	// retried from the dashboard.
	RequestSent bool `json:"request_sent"`
}

// handleCreateCustomer creates the customer plus its pending review request,
// then runs the outreach flow: send the initial email, schedule both
// follow-ups, mark the request sent.
//
// A delivery failure does not roll the customer back — losing the contact
// because the email bounced would be worse than a missed send.
func (s *Server) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if !decode(w, r, &req) {
		return
	}

	userID, err := parseUUID(req.UserID)
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid user_id")
		return
	}
	if req.Name == "" || req.Email == "" {
		respondErr(w, http.StatusBadRequest, "name and email are required")
		return
	}

	serviceDate := time.Now().UTC()
	if req.ServiceDate != "" {
		serviceDate, err = time.Parse("2006-01-02", req.ServiceDate)
		if err != nil {
			respondErr(w, http.StatusBadRequest, "service_date must be YYYY-MM-DD")
			return
		}
	}

	customer, _, err := s.store.CreateCustomerWithRequest(r.Context(), store.CreateCustomerParams{
		UserID:      userID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ServiceDate: serviceDate,
		Tags:        req.Tags,
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("create customer: %w", err))
		return
	}

	requestSent := true
	if err := s.outreach.AutomateReviewRequest(r.Context(), customer.ID); err != nil {
		requestSent = false
		s.logger.Error("initial review request failed",
			"customer_id", customer.ID,
			"error", err,
			logField(r),
		)
	}

	respond(w, http.StatusCreated, createCustomerResponse{
		Customer:    toCustomerResponse(customer),
		RequestSent: requestSent,
	})
}

// ─── GET /api/customers?user_id= ──────────────────────────────────────────────

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUUID(r.URL.Query().Get("user_id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid user_id")
		return
	}

	customers, err := s.q.ListCustomersByUser(r.Context(), userID)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list customers: %w", err))
		return
	}

	resp := make([]customerResponse, 0, len(customers))
	for _, c := range customers {
		resp = append(resp, toCustomerResponse(c))
	}
	respond(w, http.StatusOK, map[string]any{"customers": resp})
}

// ─── DELETE /api/customers/{customerID} ───────────────────────────────────────

// handleDeleteCustomer removes the customer and everything it owns. The
// delivery audit trail (email_logs) is retained.
func (s *Server) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseUUID(chi.URLParam(r, "customerID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	if err := s.store.DeleteCustomer(r.Context(), customerID); err != nil {
		if errors.Is(err, store.ErrCustomerNotFound) {
			respondErr(w, http.StatusNotFound, "customer not found")
			return
		}
		s.respondInternalErr(w, r, fmt.Errorf("delete customer: %w", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ─── GET /api/customers/{customerID}/emails ───────────────────────────────────

type emailLogResponse struct {
	ID             string    `json:"id"`
	EmailType      string    `json:"email_type"`
	RecipientEmail string    `json:"recipient_email"`
	Provider       string    `json:"provider"`
	Status         string    `json:"status"`
	SentAt         time.Time `json:"sent_at"`
	ErrorMessage   string    `json:"error_message,omitempty"`
}

type scheduledEmailResponse struct {
	ID           string     `json:"id"`
	EmailType    string     `json:"email_type"`
	ScheduledFor time.Time  `json:"scheduled_for"`
	Status       string     `json:"status"`
	Attempts     int32      `json:"attempts"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
}

// handleCustomerEmails returns the customer's delivery history plus the
// follow-ups still waiting in the queue, matching the dashboard's detail view.
func (s *Server) handleCustomerEmails(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseUUID(chi.URLParam(r, "customerID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	logs, err := s.q.ListEmailLogsByCustomer(r.Context(), customerID)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list email logs: %w", err))
		return
	}

	scheduled, err := s.q.ListScheduledEmailsByCustomer(r.Context(), customerID)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list scheduled emails: %w", err))
		return
	}

	logsResp := make([]emailLogResponse, 0, len(logs))
	for _, l := range logs {
		logsResp = append(logsResp, emailLogResponse{
			ID:             l.ID.String(),
			EmailType:      l.EmailType,
			RecipientEmail: l.RecipientEmail,
			Provider:       l.Provider,
			Status:         l.Status,
			SentAt:         l.SentAt,
			ErrorMessage:   l.ErrorMessage.String,
		})
	}

	schedResp := make([]scheduledEmailResponse, 0, len(scheduled))
	for _, e := range scheduled {
		item := scheduledEmailResponse{
			ID:           e.ID.String(),
			EmailType:    string(e.EmailType),
			ScheduledFor: e.ScheduledFor,
			Status:       string(e.Status),
			Attempts:     e.Attempts,
		}
		if e.SentAt.Valid {
			t := e.SentAt.Time
			item.SentAt = &t
		}
		schedResp = append(schedResp, item)
	}

	respond(w, http.StatusOK, map[string]any{
		"logs":      logsResp,
		"scheduled": schedResp,
	})
}

// ─── PATCH /api/customers/{customerID}/tags ───────────────────────────────────

type updateTagsRequest struct {
	Tags json.RawMessage `json:"tags"`
}

func (s *Server) handleUpdateCustomerTags(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseUUID(chi.URLParam(r, "customerID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	var req updateTagsRequest
	if !decode(w, r, &req) {
		return
	}

	customer, err := s.q.UpdateCustomerTags(r.Context(), db.UpdateCustomerTagsParams{
		ID: customerID,
		Tags: pqtype.NullRawMessage{
			RawMessage: req.Tags,
			Valid:      len(req.Tags) > 0,
		},
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondErr(w, http.StatusNotFound, "customer not found")
			return
		}
		s.respondInternalErr(w, r, fmt.Errorf("update tags: %w", err))
		return
	}

	respond(w, http.StatusOK, toCustomerResponse(customer))
}

// ─── HELPERS ─────────────────────────────────────────────────────────────────

func toCustomerResponse(c db.Customer) customerResponse {
	resp := customerResponse{
		ID:          c.ID.String(),
		UserID:      c.UserID.String(),
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone.String,
		ServiceDate: c.ServiceDate.Format("2006-01-02"),
		CreatedAt:   c.CreatedAt,
	}
	if c.Tags.Valid {
		resp.Tags = c.Tags.RawMessage
	}
	return resp
}
