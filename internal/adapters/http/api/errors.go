package api

import "errors"

// ErrBadRequest is the kind reported for malformed request input.
var ErrBadRequest = errors.New("bad request")
