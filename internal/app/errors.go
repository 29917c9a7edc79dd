package session

import "errors"

// Sentinel errors for session operations.
var (
	// ErrNotStarted is returned when an operation needs a running session.
	ErrNotStarted = errors.New("session not started")
	// ErrUnknownTeam is returned when a team id matches none of the
	// user's lineups.
	ErrUnknownTeam = errors.New("unknown team")
)
