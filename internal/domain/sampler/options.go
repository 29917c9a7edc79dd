package sampler

import (
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Option configures a Sampler.
type Option func(*Sampler)

// WithRand injects the random source. Pass a seeded source for a
// reproducible session.
func WithRand(rng *rand.Rand) Option {
	return func(s *Sampler) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithFaker injects the name generator used for synthetic entrants.
func WithFaker(f *gofakeit.Faker) Option {
	return func(s *Sampler) {
		if f != nil {
			s.faker = f
		}
	}
}

// WithClock overrides the time source for produced records.
func WithClock(now func() time.Time) Option {
	return func(s *Sampler) {
		if now != nil {
			s.now = now
		}
	}
}

// WithBoardSize sets how many leaderboard entrants the sampler maintains.
func WithBoardSize(n int) Option {
	return func(s *Sampler) {
		if n > 0 {
			s.boardSize = n
		}
	}
}

// WithCaptainMultiplier sets the factor applied to the captain's point
// deltas in the delta feed.
func WithCaptainMultiplier(m float64) Option {
	return func(s *Sampler) {
		if m > 0 {
			s.captainMult = m
		}
	}
}
