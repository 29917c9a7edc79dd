package board

import "errors"

// Sentinel errors for board operations.
var (
	// ErrEmptyBoard is returned when a leader is requested from a board
	// with no rows.
	ErrEmptyBoard = errors.New("board is empty")

	// ErrNoCurrentUser is returned when no row carries the current-user
	// flag.
	ErrNoCurrentUser = errors.New("no current user on board")

	// ErrDuplicateCurrentUser is returned when a refresh flags more than
	// one row as the current user.
	ErrDuplicateCurrentUser = errors.New("multiple current-user rows")
)
