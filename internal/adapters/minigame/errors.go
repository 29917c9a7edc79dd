package minigame

import "errors"

// Sentinel errors for game rounds.
var (
	// ErrRoundActive is returned when a round of that kind is already in
	// flight.
	ErrRoundActive = errors.New("round already active")

	// ErrNoActiveRound is returned when an answer references no open round.
	ErrNoActiveRound = errors.New("no active round")

	// ErrRoundClosed is returned when a prediction arrives after its
	// window closed.
	ErrRoundClosed = errors.New("round closed")

	// ErrInvalidOption is returned when a choice falls outside the round's
	// options.
	ErrInvalidOption = errors.New("invalid option")
)
