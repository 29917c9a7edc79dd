package session

import (
	"time"

	"github.com/okian/gully/pkg/logger"
)

// Option applies a configuration option to the Session.
type Option func(*Session)

// WithSeed sets the simulation seed. The same seed replays the same
// session.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// WithContestID sets the tracked contest.
func WithContestID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.contestID = id
		}
	}
}

// WithIntervals sets the four timer periods: trend sampling, board
// refresh, match events, and the sweep.
func WithIntervals(trend, refresh, event, sweep time.Duration) Option {
	return func(s *Session) {
		if trend > 0 {
			s.trendInterval = trend
		}
		if refresh > 0 {
			s.refreshInterval = refresh
		}
		if event > 0 {
			s.eventInterval = event
		}
		if sweep > 0 {
			s.sweepInterval = sweep
		}
	}
}

// WithSkipProbability sets the chance an event tick produces nothing.
func WithSkipProbability(p float64) Option {
	return func(s *Session) {
		if p >= 0 && p < 1 {
			s.skipProbability = p
		}
	}
}

// WithPopupTTL sets how long a notification popup holds the slot.
func WithPopupTTL(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.popupTTL = d
		}
	}
}

// WithBoardSize sets the number of synthetic leaderboard entrants.
func WithBoardSize(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.boardSize = n
		}
	}
}

// WithCapacities sets the retention windows of the five bounded streams.
func WithCapacities(delta, notification, trend, updates, shift int) Option {
	return func(s *Session) {
		if delta > 0 {
			s.deltaCapacity = delta
		}
		if notification > 0 {
			s.notificationCapacity = notification
		}
		if trend > 0 {
			s.trendCapacity = trend
		}
		if updates > 0 {
			s.updatesCapacity = updates
		}
		if shift > 0 {
			s.shiftCapacity = shift
		}
	}
}

// WithMultipliers sets the captain and vice-captain point multipliers.
func WithMultipliers(captain, vice float64) Option {
	return func(s *Session) {
		if captain > 0 && vice > 0 {
			s.captainMultiplier = captain
			s.viceCaptainMultiplier = vice
		}
	}
}

// WithLeaderFallback sets the leader points assumed for an empty board.
func WithLeaderFallback(points float64) Option {
	return func(s *Session) {
		if points > 0 {
			s.leaderFallback = points
		}
	}
}

// WithClock overrides the session time source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets a custom logger for the session.
func WithLogger(l logger.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}
