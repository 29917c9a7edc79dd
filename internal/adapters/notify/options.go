package notify

import "time"

// Option configures a Tracker.
type Option func(*Tracker)

// WithCapacity sets the maximum number of retained notifications.
func WithCapacity(n int) Option {
	return func(t *Tracker) {
		if n > 0 {
			t.capacity = n
		}
	}
}

// WithPopupTTL sets how long a popup holds the slot before expiring.
func WithPopupTTL(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.popupTTL = d
		}
	}
}

// WithClock overrides the time source for countdown bookkeeping.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}
