// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	session "github.com/okian/gully/internal/app"

	"github.com/okian/gully/internal/adapters/minigame"
	"github.com/okian/gully/internal/adapters/notify"
	"github.com/okian/gully/internal/domain/model"
)

// Default handler configuration constants.
const (
	defaultMaxBoardLimit = 100
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the session implementation.
type Dependencies interface {
	// Read operations expose the contest view state.
	Summary() (session.Summary, error)
	Board(limit int) []model.LeaderboardEntry
	Team() model.Team
	Teams() []model.Team
	TeamOverlaps() []session.TeamOverlap
	TeamAnalytics() (session.TeamAnalytics, error)
	Match() model.Match
	Contest() model.Contest
	DreamTeam() model.DreamTeam
	Trend() []model.PointsSample
	Deltas() []model.DeltaEvent
	Updates() []model.LiveUpdate
	Shifts() []model.RankShift

	// Notification operations.
	Notifications() []model.Notification
	UnreadCount() int
	Popup() (notify.Popup, bool)
	MarkNotificationRead(id string) error
	MarkAllNotificationsRead()
	DismissNotification(id string) error
	ClosePopup()

	// SelectTeam switches the lineup the summary and team views follow.
	SelectTeam(id string) error

	// Game operations.
	StartQuiz() (minigame.Quiz, error)
	AnswerQuiz(quizID string, option int) (minigame.Result, error)
	StartPrediction() (minigame.Prediction, error)
	AnswerPrediction(predictionID string, option int) error
	GameStats() minigame.Stats

	// Reset rebuilds the simulation, optionally switching contests.
	Reset(ctx context.Context, contestID string) error
}

// Server wires HTTP routes for the contest API.
type Server struct {
	healthHandler       *HealthHandler
	statsHandler        *StatsHandler
	viewHandler         *ViewHandler
	notificationHandler *NotificationHandler
	gamesHandler        *GamesHandler
	sessionHandler      *SessionHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	settings := serverSettings{maxBoardLimit: defaultMaxBoardLimit}
	for _, opt := range opts {
		opt(&settings)
	}
	return &Server{
		healthHandler:       NewHealthHandler(),
		statsHandler:        NewStatsHandler(statsProvider),
		viewHandler:         NewViewHandler(deps, settings.maxBoardLimit),
		notificationHandler: NewNotificationHandler(deps),
		gamesHandler:        NewGamesHandler(deps),
		sessionHandler:      NewSessionHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("/summary", MetricsMiddleware(s.viewHandler.HandleSummary, "summary"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.viewHandler.HandleLeaderboard, "leaderboard"))
	mux.HandleFunc("/team", MetricsMiddleware(s.viewHandler.HandleTeam, "team"))
	mux.HandleFunc("/team/analytics", MetricsMiddleware(s.viewHandler.HandleTeamAnalytics, "team_analytics"))
	mux.HandleFunc("/teams", MetricsMiddleware(s.viewHandler.HandleTeams, "teams"))
	mux.HandleFunc("/teams/select", MetricsMiddleware(s.viewHandler.HandleTeamSelect, "team_select"))
	mux.HandleFunc("/match", MetricsMiddleware(s.viewHandler.HandleMatch, "match"))
	mux.HandleFunc("/contest", MetricsMiddleware(s.viewHandler.HandleContest, "contest"))
	mux.HandleFunc("/dreamteam", MetricsMiddleware(s.viewHandler.HandleDreamTeam, "dreamteam"))
	mux.HandleFunc("/trend", MetricsMiddleware(s.viewHandler.HandleTrend, "trend"))
	mux.HandleFunc("/deltas", MetricsMiddleware(s.viewHandler.HandleDeltas, "deltas"))
	mux.HandleFunc("/updates", MetricsMiddleware(s.viewHandler.HandleUpdates, "updates"))
	mux.HandleFunc("/shifts", MetricsMiddleware(s.viewHandler.HandleShifts, "shifts"))

	mux.HandleFunc("/notifications", MetricsMiddleware(s.notificationHandler.HandleList, "notifications"))
	mux.HandleFunc("/notifications/read-all", MetricsMiddleware(s.notificationHandler.HandleReadAll, "notifications_read_all"))
	mux.HandleFunc("/notifications/", MetricsMiddleware(s.notificationHandler.HandleByID, "notification"))
	mux.HandleFunc("/popup", MetricsMiddleware(s.notificationHandler.HandlePopup, "popup"))
	mux.HandleFunc("/popup/close", MetricsMiddleware(s.notificationHandler.HandlePopupClose, "popup_close"))

	mux.HandleFunc("/games/quiz/start", MetricsMiddleware(s.gamesHandler.HandleQuizStart, "quiz_start"))
	mux.HandleFunc("/games/quiz/answer", MetricsMiddleware(s.gamesHandler.HandleQuizAnswer, "quiz_answer"))
	mux.HandleFunc("/games/prediction/start", MetricsMiddleware(s.gamesHandler.HandlePredictionStart, "prediction_start"))
	mux.HandleFunc("/games/prediction/answer", MetricsMiddleware(s.gamesHandler.HandlePredictionAnswer, "prediction_answer"))
	mux.HandleFunc("/games/stats", MetricsMiddleware(s.gamesHandler.HandleStats, "games_stats"))

	mux.HandleFunc("/session/reset", MetricsMiddleware(s.sessionHandler.HandleReset, "session_reset"))
}

type ackResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func writeAck(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, ackResponse{Status: "ok"})
}
