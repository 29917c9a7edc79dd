package feed

// settings collects the configurable knobs; kept separate from Feed so the
// options stay independent of the element type.
type settings struct {
	capacity int
	stream   string
}

// Option configures a feed at construction time.
type Option func(*settings)

// WithCapacity sets the maximum number of retained items.
func WithCapacity(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// WithStream names the feed for the stream-size gauge. Unnamed feeds skip
// metrics entirely.
func WithStream(name string) Option {
	return func(s *settings) {
		s.stream = name
	}
}
