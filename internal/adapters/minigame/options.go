package minigame

import (
	"math/rand"
	"time"
)

// Option configures a Hub.
type Option func(*Hub)

// WithRand injects the source used to resolve prediction outcomes.
func WithRand(rng *rand.Rand) Option {
	return func(h *Hub) {
		if rng != nil {
			h.rng = rng
		}
	}
}

// WithClock overrides the time source for round deadlines.
func WithClock(now func() time.Time) Option {
	return func(h *Hub) {
		if now != nil {
			h.now = now
		}
	}
}
