package aggregate

import "errors"

// Sentinel errors for aggregate computations.
var (
	// ErrNoParticipants is returned when a board-derived number has no rows
	// to work from, or a rank falls outside the participant range.
	ErrNoParticipants = errors.New("no participants")

	// ErrZeroLeaderPoints is returned when a share of the leader's points is
	// requested while the leader has none.
	ErrZeroLeaderPoints = errors.New("leader has zero points")

	// ErrInvalidRoster is returned when a team's roster or its captain
	// designations are unusable.
	ErrInvalidRoster = errors.New("invalid roster")

	// ErrUnknownRole is returned when a roster player carries an
	// unrecognized role.
	ErrUnknownRole = errors.New("unknown role")
)
