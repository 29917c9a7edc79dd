package api

// Option applies a configuration option to the Server.
type Option func(*serverSettings)

type serverSettings struct {
	maxBoardLimit int
}

// WithMaxBoardLimit caps the limit accepted by the leaderboard endpoint.
func WithMaxBoardLimit(n int) Option {
	return func(s *serverSettings) {
		if n > 0 {
			s.maxBoardLimit = n
		}
	}
}
