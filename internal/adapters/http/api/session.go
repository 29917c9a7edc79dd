// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	session "github.com/okian/gully/internal/app"
)

// SessionHandler serves the session control surface.
type SessionHandler struct {
	deps Dependencies
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(deps Dependencies) *SessionHandler {
	return &SessionHandler{deps: deps}
}

// resetRequest mirrors the request shape for POST /session/reset. An empty
// contest id resets the current contest in place.
type resetRequest struct {
	ContestID string `json:"contest_id"`
}

// HandleReset handles POST /session/reset requests.
func (h *SessionHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req resetRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
	}
	if err := h.deps.Reset(r.Context(), req.ContestID); err != nil {
		if errors.Is(err, session.ErrNotStarted) {
			writeError(w, http.StatusConflict, "not_started", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeAck(w)
}
