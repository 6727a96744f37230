package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// ─── GET /api/alerts?user_id= ─────────────────────────────────────────────────

type alertResponse struct {
	ID        string    `json:"id"`
	ReviewID  string    `json:"review_id"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUUID(r.URL.Query().Get("user_id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid user_id")
		return
	}

	alerts, err := s.q.ListAlertsByUser(r.Context(), userID)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list alerts: %w", err))
		return
	}

	resp := make([]alertResponse, 0, len(alerts))
	for _, a := range alerts {
		resp = append(resp, alertResponse{
			ID:        a.ID.String(),
			ReviewID:  a.ReviewID.String(),
			Type:      a.Type,
			Read:      a.Read,
			CreatedAt: a.CreatedAt,
		})
	}
	respond(w, http.StatusOK, map[string]any{"alerts": resp})
}

// ─── POST /api/alerts/{alertID}/read ──────────────────────────────────────────

func (s *Server) handleMarkAlertRead(w http.ResponseWriter, r *http.Request) {
	alertID, err := parseUUID(chi.URLParam(r, "alertID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid alert id")
		return
	}

	alert, err := s.q.MarkAlertRead(r.Context(), alertID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondErr(w, http.StatusNotFound, "alert not found")
			return
		}
		s.respondInternalErr(w, r, fmt.Errorf("mark alert read: %w", err))
		return
	}

	respond(w, http.StatusOK, alertResponse{
		ID:        alert.ID.String(),
		ReviewID:  alert.ReviewID.String(),
		Type:      alert.Type,
		Read:      alert.Read,
		CreatedAt: alert.CreatedAt,
	})
}
