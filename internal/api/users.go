package api

import (
	"fmt"
	"net/http"

	"github.com/reviewloop/reviewloop-backend/internal/db"
)

// ─── POST /api/users ──────────────────────────────────────────────────────────

type createUserRequest struct {
	Email        string `json:"email"`
	BusinessName string `json:"business_name"`
}

type createUserResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	BusinessName string `json:"business_name"`
	Plan         string `json:"plan"`
}

// handleCreateUser registers a business account. Authentication lives in
// front of this service; the backend only needs the account row so customers
// and alerts have an owner.
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decode(w, r, &req) {
		return
	}

	if req.Email == "" {
		respondErr(w, http.StatusBadRequest, "email is required")
		return
	}

	user, err := s.q.CreateUser(r.Context(), db.CreateUserParams{
		Email:        req.Email,
		BusinessName: req.BusinessName,
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("create user: %w", err))
		return
	}

	respond(w, http.StatusCreated, createUserResponse{
		ID:           user.ID.String(),
		Email:        user.Email,
		BusinessName: user.BusinessName,
		Plan:         user.Plan,
	})
}
