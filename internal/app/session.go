// Package session runs one simulated contest: it owns the sampler, the
// board, the feeds, the notification tracker and the game hub, and drives
// them from timer loops so the view always has fresh state to read.
package session

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/okian/gully/internal/adapters/board"
	"github.com/okian/gully/internal/adapters/feed"
	"github.com/okian/gully/internal/adapters/minigame"
	"github.com/okian/gully/internal/adapters/notify"
	"github.com/okian/gully/internal/domain/aggregate"
	"github.com/okian/gully/internal/domain/model"
	"github.com/okian/gully/internal/domain/sampler"
	"github.com/okian/gully/pkg/logger"
	"github.com/okian/gully/pkg/metrics"
)

// Default session configuration constants.
const (
	defaultSeed            = 42
	defaultContestID       = "contest-1"
	defaultTrendInterval   = 3 * time.Second
	defaultRefreshInterval = 5 * time.Second
	defaultEventInterval   = 8 * time.Second
	defaultSweepInterval   = 1 * time.Second
	defaultSkipProbability = 0.4
	defaultPopupTTL        = 5 * time.Second
	defaultBoardSize       = 10

	defaultDeltaCapacity        = 10
	defaultNotificationCapacity = 20
	defaultTrendCapacity        = 20
	defaultUpdatesCapacity      = 20
	defaultShiftCapacity        = 10

	defaultCaptainMultiplier     = 2.0
	defaultViceCaptainMultiplier = 1.5
	defaultLeaderFallback        = 156.0
)

// Summary is the header-level view of where the user stands.
type Summary struct {
	ContestID      string  `json:"contest_id"`
	UserPoints     float64 `json:"user_points"`
	UserRank       int     `json:"user_rank"`
	TeamPoints     float64 `json:"team_points"`
	LeaderPoints   float64 `json:"leader_points"`
	PointsBehind   float64 `json:"points_behind"`
	Percentile     float64 `json:"percentile"`
	PerformancePct float64 `json:"performance_pct"`
	Participants   int     `json:"participants"`
}

// Session owns all contest state. Reads are served from snapshots; the
// timer loops are the only writers of simulation state.
type Session struct {
	mu sync.RWMutex

	// Core components
	sampler *sampler.Sampler
	board   *board.Store
	tracker *notify.Tracker
	games   *minigame.Hub
	calc    *aggregate.Calculator

	deltas  *feed.Feed[model.DeltaEvent]
	trend   *feed.Feed[model.PointsSample]
	updates *feed.Feed[model.LiveUpdate]
	shifts  *feed.Feed[model.RankShift]

	// Simulation state
	match     model.Match
	teams     []model.Team
	selected  int
	contest   model.Contest
	dream     model.DreamTeam
	startedAt time.Time

	// Configuration
	seed            int64
	contestID       string
	trendInterval   time.Duration
	refreshInterval time.Duration
	eventInterval   time.Duration
	sweepInterval   time.Duration
	skipProbability float64
	popupTTL        time.Duration
	boardSize       int

	deltaCapacity        int
	notificationCapacity int
	trendCapacity        int
	updatesCapacity      int
	shiftCapacity        int

	captainMultiplier     float64
	viceCaptainMultiplier float64
	leaderFallback        float64

	rng *rand.Rand
	now func() time.Time

	// State
	started bool
	stopCh  chan struct{}
	wg      sync.WaitGroup

	logger logger.Logger
}

// New constructs a session with default configuration.
func New(opts ...Option) *Session {
	s := &Session{
		seed:                  defaultSeed,
		contestID:             defaultContestID,
		trendInterval:         defaultTrendInterval,
		refreshInterval:       defaultRefreshInterval,
		eventInterval:         defaultEventInterval,
		sweepInterval:         defaultSweepInterval,
		skipProbability:       defaultSkipProbability,
		popupTTL:              defaultPopupTTL,
		boardSize:             defaultBoardSize,
		deltaCapacity:         defaultDeltaCapacity,
		notificationCapacity:  defaultNotificationCapacity,
		trendCapacity:         defaultTrendCapacity,
		updatesCapacity:       defaultUpdatesCapacity,
		shiftCapacity:         defaultShiftCapacity,
		captainMultiplier:     defaultCaptainMultiplier,
		viceCaptainMultiplier: defaultViceCaptainMultiplier,
		leaderFallback:        defaultLeaderFallback,
		now:                   time.Now,
		stopCh:                make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start seeds the simulation and launches the timer loops.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting contest session",
		logger.String("contestID", s.contestID),
		logger.Int("boardSize", s.boardSize),
	)

	s.seedState()
	s.started = true
	s.stopCh = make(chan struct{})

	s.wg.Add(1)
	go s.run(ctx)

	s.logger.Info(ctx, "contest session started",
		logger.Duration("trendInterval", s.trendInterval),
		logger.Duration("refreshInterval", s.refreshInterval),
		logger.Duration("eventInterval", s.eventInterval),
	)
	return nil
}

// seedState builds fresh components from the configured seed. Callers hold
// the write lock.
func (s *Session) seedState() {
	s.rng = rand.New(rand.NewSource(s.seed))
	s.sampler = sampler.New(
		sampler.WithRand(rand.New(rand.NewSource(s.seed))),
		sampler.WithFaker(gofakeit.New(uint64(s.seed))),
		sampler.WithClock(s.now),
		sampler.WithBoardSize(s.boardSize),
		sampler.WithCaptainMultiplier(s.captainMultiplier),
	)
	s.board = board.New()
	s.tracker = notify.New(
		notify.WithCapacity(s.notificationCapacity),
		notify.WithPopupTTL(s.popupTTL),
		notify.WithClock(s.now),
	)
	s.games = minigame.New(
		minigame.WithRand(rand.New(rand.NewSource(s.seed))),
		minigame.WithClock(s.now),
	)
	s.calc = aggregate.New(
		aggregate.WithMultipliers(s.captainMultiplier, s.viceCaptainMultiplier),
	)
	s.deltas = feed.New[model.DeltaEvent](feed.WithCapacity(s.deltaCapacity), feed.WithStream("deltas"))
	s.trend = feed.New[model.PointsSample](feed.WithCapacity(s.trendCapacity), feed.WithStream("trend"))
	s.updates = feed.New[model.LiveUpdate](feed.WithCapacity(s.updatesCapacity), feed.WithStream("updates"))
	s.shifts = feed.New[model.RankShift](feed.WithCapacity(s.shiftCapacity), feed.WithStream("shifts"))

	now := s.now()
	s.startedAt = now
	s.teams = sampler.SeedTeams(s.contestID)
	s.selected = 0
	s.match = sampler.SeedMatch()
	s.contest = sampler.SeedContest(s.contestID, now)
	s.dream = sampler.SeedDreamTeam(now)

	// First board lands before any reader shows up.
	_ = s.board.Replace(s.sampler.Board())
}

// run drives the four timer loops until Stop or context cancellation.
func (s *Session) run(ctx context.Context) {
	defer s.wg.Done()

	trendTicker := time.NewTicker(s.trendInterval)
	refreshTicker := time.NewTicker(s.refreshInterval)
	eventTicker := time.NewTicker(s.eventInterval)
	sweepTicker := time.NewTicker(s.sweepInterval)
	defer trendTicker.Stop()
	defer refreshTicker.Stop()
	defer eventTicker.Stop()
	defer sweepTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-trendTicker.C:
			s.safeStep(ctx, "trend", s.stepTrend)
		case <-refreshTicker.C:
			s.safeStep(ctx, "refresh", s.stepRefresh)
		case <-eventTicker.C:
			s.safeStep(ctx, "event", s.stepEvent)
		case <-sweepTicker.C:
			s.safeStep(ctx, "sweep", s.stepSweep)
		}
	}
}

// safeStep runs one tick handler, recovering panics so a bad step never
// kills the loop.
func (s *Session) safeStep(ctx context.Context, step string, fn func(ctx context.Context)) {
	start := time.Now()
	defer func() {
		metrics.RecordTickDuration(step, float64(time.Since(start).Milliseconds()))
		if r := recover(); r != nil {
			metrics.RecordTickError(step)
			s.logger.Error(ctx, "tick handler panicked",
				logger.String("step", step),
				logger.Any("panic", r),
			)
		}
	}()
	fn(ctx)
}

// stepTrend appends one point to the user-versus-leader trend line.
func (s *Session) stepTrend(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	leader := aggregate.LeaderPoints(s.board.Snapshot(), s.leaderFallback)
	sample := s.sampler.PointsSample(s.now().Sub(s.startedAt), leader)
	s.trend.Append(sample)
}

// stepRefresh replaces the board, advances the scoreboard, and feeds the
// delta and commentary streams. A rank movement for the viewing user also
// produces an explained shift.
func (s *Session) stepRefresh(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.board.Replace(s.sampler.Board()); err != nil {
		metrics.RecordTickError("refresh")
		s.logger.Error(ctx, "board refresh rejected", logger.Error(err))
		return
	}
	s.deltas.Push(s.sampler.Delta())
	s.updates.Push(s.sampler.Update())
	s.match = s.sampler.Match(s.match)

	if user, err := s.board.CurrentUser(); err == nil && user.RankChange != 0 {
		s.shifts.Push(s.sampler.RankShift(user.Rank))
	}
}

// stepEvent draws a match-event notification, unless this tick is skipped.
func (s *Session) stepEvent(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rng.Float64() < s.skipProbability {
		metrics.RecordTickSkipped()
		return
	}
	ev := s.sampler.MatchEvent()
	if err := ev.Validate(); err != nil {
		metrics.RecordAggregateError(string(ev.Kind))
		s.logger.Error(ctx, "sampled event failed validation", logger.Error(err))
		return
	}
	metrics.RecordEventSampled(string(ev.Kind))
	s.tracker.Append(ev)
}

// stepSweep advances the popup lifecycle and expires overdue game rounds.
// Reset swaps the component pointers under the write lock, so they are
// read under the lock here.
func (s *Session) stepSweep(ctx context.Context) {
	s.mu.RLock()
	tracker, games := s.tracker, s.games
	s.mu.RUnlock()

	tracker.Tick()
	for _, res := range games.Sweep() {
		s.logger.Debug(ctx, "game round resolved",
			logger.String("gameID", res.GameID),
			logger.String("outcome", string(res.Outcome)),
			logger.Float64("reward", res.Reward),
		)
	}
}

// Stop halts the timer loops. The last snapshots stay readable.
func (s *Session) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	select {
	case <-s.stopCh:
	default:
		close(s.stopCh)
	}
	s.mu.Unlock()

	// The loop may be mid-step and need the lock to finish.
	s.wg.Wait()

	s.mu.Lock()
	s.started = false
	s.mu.Unlock()
	s.logger.Info(context.Background(), "contest session stopped")
}

// Reset rebuilds the whole simulation from the seed, optionally switching
// contests. The timer loops keep running against the fresh state.
func (s *Session) Reset(ctx context.Context, contestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}
	if contestID != "" {
		s.contestID = contestID
	}
	s.seedState()
	metrics.RecordSessionReset()
	s.logger.Info(ctx, "contest session reset",
		logger.String("contestID", s.contestID),
	)
	return nil
}

// Board returns up to limit ranked rows; zero means the full snapshot.
func (s *Session) Board(limit int) []model.LeaderboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		return s.board.Snapshot()
	}
	return s.board.Top(limit)
}

// Leader returns the top row of the board.
func (s *Session) Leader() (model.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Leader()
}

// Match returns the current scoreboard state.
func (s *Session) Match() model.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.match
}

// Team returns a deep copy of the currently selected roster.
func (s *Session) Team() model.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedLocked().Clone()
}

// Teams returns deep copies of every lineup the user entered.
func (s *Session) Teams() []model.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Team, len(s.teams))
	for i := range s.teams {
		out[i] = s.teams[i].Clone()
	}
	return out
}

// SelectTeam switches which lineup the summary and team views follow.
func (s *Session) SelectTeam(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.teams {
		if s.teams[i].ID == id {
			s.selected = i
			return nil
		}
	}
	return ErrUnknownTeam
}

// TeamOverlap describes how much of a lineup is shared with the currently
// selected team.
type TeamOverlap struct {
	TeamID     string  `json:"team_id"`
	Name       string  `json:"name"`
	OverlapPct float64 `json:"overlap_pct"`
	Selected   bool    `json:"selected"`
}

// TeamOverlaps compares every lineup against the selected one.
func (s *Session) TeamOverlaps() []TeamOverlap {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current := s.selectedLocked()
	out := make([]TeamOverlap, len(s.teams))
	for i := range s.teams {
		out[i] = TeamOverlap{
			TeamID:     s.teams[i].ID,
			Name:       s.teams[i].Name,
			OverlapPct: aggregate.LineupOverlap(s.teams[i], current),
			Selected:   i == s.selected,
		}
	}
	return out
}

// TeamAnalytics bundles the selected lineup's composition with the board's
// extremes, the numbers the end-of-match summary reads.
type TeamAnalytics struct {
	TopPerformer model.Player           `json:"top_performer"`
	Formation    map[model.Role]int     `json:"formation"`
	BestEntry    model.LeaderboardEntry `json:"best_entry"`
	WorstEntry   model.LeaderboardEntry `json:"worst_entry"`
}

// TeamAnalytics derives the analytics bundle for the selected lineup.
func (s *Session) TeamAnalytics() (TeamAnalytics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	team := s.selectedLocked()
	top, err := aggregate.TopPerformer(team)
	if err != nil {
		return TeamAnalytics{}, err
	}
	formation, err := aggregate.FormationCounts(team)
	if err != nil {
		return TeamAnalytics{}, err
	}
	rows := s.board.Snapshot()
	best, err := aggregate.BestEntry(rows)
	if err != nil {
		return TeamAnalytics{}, err
	}
	worst, err := aggregate.WorstEntry(rows)
	if err != nil {
		return TeamAnalytics{}, err
	}
	return TeamAnalytics{
		TopPerformer: top,
		Formation:    formation,
		BestEntry:    best,
		WorstEntry:   worst,
	}, nil
}

// selectedLocked returns the active roster. Callers hold the lock.
func (s *Session) selectedLocked() model.Team {
	if len(s.teams) == 0 {
		return model.Team{}
	}
	return s.teams[s.selected]
}

// Contest returns the contest record.
func (s *Session) Contest() model.Contest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contest
}

// DreamTeam returns the best-possible lineup baseline.
func (s *Session) DreamTeam() model.DreamTeam {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dream
}

// Trend returns the chronological trend-line window.
func (s *Session) Trend() []model.PointsSample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trend.Snapshot()
}

// Deltas returns the newest-first delta-tracker feed.
func (s *Session) Deltas() []model.DeltaEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deltas.Snapshot()
}

// Updates returns the newest-first commentary feed.
func (s *Session) Updates() []model.LiveUpdate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updates.Snapshot()
}

// Shifts returns the newest-first explained rank movements.
func (s *Session) Shifts() []model.RankShift {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shifts.Snapshot()
}

// Notifications returns the newest-first notification list.
func (s *Session) Notifications() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.Snapshot()
}

// UnreadCount returns how many notifications are unread.
func (s *Session) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.Unread()
}

// Popup returns the active popup, if one is showing.
func (s *Session) Popup() (notify.Popup, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.Active()
}

// MarkNotificationRead flips one notification's read flag.
func (s *Session) MarkNotificationRead(id string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.MarkRead(id)
}

// MarkAllNotificationsRead flips every notification's read flag.
func (s *Session) MarkAllNotificationsRead() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.tracker.MarkAllRead()
}

// DismissNotification removes one notification for good.
func (s *Session) DismissNotification(id string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.Dismiss(id)
}

// ClosePopup releases the popup slot; the record stays in the list.
func (s *Session) ClosePopup() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.tracker.ClosePopup()
}

// StartQuiz opens the next quiz round.
func (s *Session) StartQuiz() (minigame.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games.StartQuiz()
}

// AnswerQuiz scores an open quiz round.
func (s *Session) AnswerQuiz(quizID string, option int) (minigame.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games.AnswerQuiz(quizID, option)
}

// StartPrediction opens the next prediction round.
func (s *Session) StartPrediction() (minigame.Prediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games.StartPrediction()
}

// AnswerPrediction locks in a choice for the open prediction.
func (s *Session) AnswerPrediction(predictionID string, option int) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games.AnswerPrediction(predictionID, option)
}

// GameStats returns the running minigame score.
func (s *Session) GameStats() minigame.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games.Stats()
}

// Summary computes the header numbers from the current board and roster.
func (s *Session) Summary() (Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.board.Snapshot()
	leader := aggregate.LeaderPoints(rows, s.leaderFallback)
	out := Summary{
		ContestID:    s.contestID,
		LeaderPoints: leader,
		Participants: len(rows),
	}

	teamPoints, err := s.calc.TeamTotalPoints(s.selectedLocked())
	if err != nil {
		return Summary{}, err
	}
	out.TeamPoints = teamPoints

	user, err := s.board.CurrentUser()
	if err != nil {
		return Summary{}, err
	}
	out.UserPoints = user.Points
	out.UserRank = user.Rank
	out.PointsBehind = aggregate.PointsDifference(user.Points, leader)

	if pct, err := aggregate.RankPercentile(user.Rank, len(rows)); err == nil {
		out.Percentile = pct
	}
	if pct, err := aggregate.PerformancePercentage(user.Points, leader); err == nil {
		out.PerformancePct = pct
	}
	return out, nil
}

// GetStats returns session statistics for monitoring.
func (s *Session) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":   s.started,
		"contestID": s.contestID,
		"boardSize": s.boardSize,
	}
	if s.started {
		stats["teams"] = len(s.teams)
		stats["selectedTeam"] = s.selectedLocked().ID
		stats["boardEntries"] = s.board.Count()
		stats["trendSamples"] = s.trend.Len()
		stats["deltaEvents"] = s.deltas.Len()
		stats["liveUpdates"] = s.updates.Len()
		stats["notifications"] = s.tracker.Len()
		stats["unread"] = s.tracker.Unread()
		stats["uptime"] = s.now().Sub(s.startedAt).String()
	}
	return stats
}
