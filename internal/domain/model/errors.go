package model

import "errors"

// Sentinel error kinds for this package. Callers compare with errors.Is.
var (
	ErrInconsistentEvent = errors.New("inconsistent event")
)
