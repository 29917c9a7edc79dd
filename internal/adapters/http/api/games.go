// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/gully/internal/adapters/minigame"
)

// GamesHandler serves the quiz and prediction rounds.
type GamesHandler struct {
	deps Dependencies
}

// NewGamesHandler creates a new games handler.
func NewGamesHandler(deps Dependencies) *GamesHandler {
	return &GamesHandler{deps: deps}
}

// HandleQuizStart handles POST /games/quiz/start requests.
func (h *GamesHandler) HandleQuizStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	quiz, err := h.deps.StartQuiz()
	if err != nil {
		status, code := gameErrStatus(err)
		writeError(w, status, code, err)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

// quizAnswerRequest mirrors the request shape for POST /games/quiz/answer.
type quizAnswerRequest struct {
	QuizID string `json:"quiz_id"`
	Option int    `json:"option"`
}

// HandleQuizAnswer handles POST /games/quiz/answer requests.
func (h *GamesHandler) HandleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req quizAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.QuizID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	result, err := h.deps.AnswerQuiz(req.QuizID, req.Option)
	if err != nil {
		status, code := gameErrStatus(err)
		writeError(w, status, code, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandlePredictionStart handles POST /games/prediction/start requests.
func (h *GamesHandler) HandlePredictionStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	prediction, err := h.deps.StartPrediction()
	if err != nil {
		status, code := gameErrStatus(err)
		writeError(w, status, code, err)
		return
	}
	writeJSON(w, http.StatusOK, prediction)
}

// predictionAnswerRequest mirrors the request shape for
// POST /games/prediction/answer.
type predictionAnswerRequest struct {
	PredictionID string `json:"prediction_id"`
	Option       int    `json:"option"`
}

// HandlePredictionAnswer handles POST /games/prediction/answer requests.
func (h *GamesHandler) HandlePredictionAnswer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req predictionAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PredictionID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := h.deps.AnswerPrediction(req.PredictionID, req.Option); err != nil {
		status, code := gameErrStatus(err)
		writeError(w, status, code, err)
		return
	}
	writeAck(w)
}

// HandleStats handles GET /games/stats requests.
func (h *GamesHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.GameStats())
}

func gameErrStatus(err error) (int, string) {
	switch {
	case errors.Is(err, minigame.ErrRoundActive):
		return http.StatusConflict, "round_active"
	case errors.Is(err, minigame.ErrNoActiveRound):
		return http.StatusNotFound, "no_active_round"
	case errors.Is(err, minigame.ErrRoundClosed):
		return http.StatusGone, "round_closed"
	case errors.Is(err, minigame.ErrInvalidOption):
		return http.StatusBadRequest, "invalid_option"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
