// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	session "github.com/okian/gully/internal/app"
	"github.com/okian/gully/internal/domain/model"
)

// ViewHandler serves the read-only contest state.
type ViewHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewViewHandler creates a new view handler.
func NewViewHandler(deps Dependencies, maxLimit int) *ViewHandler {
	return &ViewHandler{deps: deps, maxLimit: maxLimit}
}

// HandleSummary handles GET /summary requests.
func (h *ViewHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	summary, err := h.deps.Summary()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// HandleLeaderboard handles GET /leaderboard?limit=N requests. Without a
// limit the full snapshot is returned.
func (h *ViewHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		if n > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", ErrBadRequest)
			return
		}
		limit = n
	}
	writeJSON(w, http.StatusOK, h.deps.Board(limit))
}

// HandleTeam handles GET /team requests.
func (h *ViewHandler) HandleTeam(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Team())
}

// HandleTeamAnalytics handles GET /team/analytics requests.
func (h *ViewHandler) HandleTeamAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	analytics, err := h.deps.TeamAnalytics()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, analytics)
}

// teamList carries every lineup plus how much each shares with the
// selected one.
type teamList struct {
	Teams    []model.Team          `json:"teams"`
	Overlaps []session.TeamOverlap `json:"overlaps"`
}

// HandleTeams handles GET /teams requests.
func (h *ViewHandler) HandleTeams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, teamList{
		Teams:    h.deps.Teams(),
		Overlaps: h.deps.TeamOverlaps(),
	})
}

// teamSelectRequest mirrors the request shape for POST /teams/select.
type teamSelectRequest struct {
	TeamID string `json:"team_id"`
}

// HandleTeamSelect handles POST /teams/select requests.
func (h *ViewHandler) HandleTeamSelect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req teamSelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := h.deps.SelectTeam(req.TeamID); err != nil {
		if errors.Is(err, session.ErrUnknownTeam) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeAck(w)
}

// HandleMatch handles GET /match requests.
func (h *ViewHandler) HandleMatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Match())
}

// HandleContest handles GET /contest requests.
func (h *ViewHandler) HandleContest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Contest())
}

// HandleDreamTeam handles GET /dreamteam requests.
func (h *ViewHandler) HandleDreamTeam(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.DreamTeam())
}

// HandleTrend handles GET /trend requests.
func (h *ViewHandler) HandleTrend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Trend())
}

// HandleDeltas handles GET /deltas requests.
func (h *ViewHandler) HandleDeltas(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Deltas())
}

// HandleUpdates handles GET /updates requests.
func (h *ViewHandler) HandleUpdates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Updates())
}

// HandleShifts handles GET /shifts requests.
func (h *ViewHandler) HandleShifts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Shifts())
}
