package notify

import "errors"

// ErrUnknownNotification is returned when an operation references an id
// that is not on the list, including records already dismissed.
var ErrUnknownNotification = errors.New("unknown notification")
