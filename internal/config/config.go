// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file and env.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ContestID keys the simulated session; changing it rebuilds all state.
	ContestID string `koanf:"contest_id"`

	// Seed fixes the sampler's random source for reproducible sessions.
	Seed int64 `koanf:"seed"`

	// Stream timer periods, in milliseconds.
	TrendIntervalMS   int `koanf:"trend_interval_ms"`
	RefreshIntervalMS int `koanf:"refresh_interval_ms"`
	EventIntervalMS   int `koanf:"event_interval_ms"`
	SweepIntervalMS   int `koanf:"sweep_interval_ms"`

	// EventSkipProbability drops a fraction of notification ticks so the
	// feed does not fire on every period.
	EventSkipProbability float64 `koanf:"event_skip_probability"`

	// PopupSeconds is the active-notification countdown.
	PopupSeconds int `koanf:"popup_seconds"`

	// Bounded stream capacities.
	DeltaCapacity        int `koanf:"delta_capacity"`
	NotificationCapacity int `koanf:"notification_capacity"`
	TrendCapacity        int `koanf:"trend_capacity"`
	UpdatesCapacity      int `koanf:"updates_capacity"`
	ShiftCapacity        int `koanf:"shift_capacity"`

	// BoardSize is the number of entrants in the synthetic leaderboard.
	BoardSize int `koanf:"board_size"`

	// MaxBoardLimit caps GET /leaderboard?limit.
	MaxBoardLimit int `koanf:"max_board_limit"`

	// Scoring weights for designated roster roles.
	CaptainMultiplier     float64 `koanf:"captain_multiplier"`
	ViceCaptainMultiplier float64 `koanf:"vice_captain_multiplier"`

	// LeaderPointsFallback is reported when the leaderboard is empty.
	LeaderPointsFallback float64 `koanf:"leader_points_fallback"`
}

// New creates a Config with the defaults observed for a live contest view.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		Addr:                 ":9080",
		ContestID:            "contest-1",
		Seed:                 42,
		TrendIntervalMS:      3_000,
		RefreshIntervalMS:    5_000,
		EventIntervalMS:      8_000,
		SweepIntervalMS:      1_000,
		EventSkipProbability: 0.4,
		PopupSeconds:         5,
		DeltaCapacity:        10,
		NotificationCapacity: 20,
		TrendCapacity:        20,
		UpdatesCapacity:      20,
		ShiftCapacity:        10,
		BoardSize:             10,
		MaxBoardLimit:         100,
		CaptainMultiplier:     2.0,
		ViceCaptainMultiplier: 1.5,
		LeaderPointsFallback:  156,
	}
}
