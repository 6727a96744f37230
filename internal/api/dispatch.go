package api

import (
	"fmt"
	"net/http"
)

// ─── POST /internal/dispatch ──────────────────────────────────────────────────

type dispatchResponse struct {
	Success   bool `json:"success"`
	Processed int  `json:"processed"`
	Errors    int  `json:"errors"`
	Total     int  `json:"total"`
}

// handleDispatch triggers one dispatcher run and reports the counts. The
// in-process runner usually makes this redundant; it exists for deployments
// that prefer an external cron and for manual drains during incidents.
func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	summary, err := s.dispatcher.Run(r.Context())
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("dispatch run: %w", err))
		return
	}

	respond(w, http.StatusOK, dispatchResponse{
		Success:   true,
		Processed: summary.Processed,
		Errors:    summary.Errors,
		Total:     summary.Total,
	})
}
