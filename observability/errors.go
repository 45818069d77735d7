package observability

import "errors"

// ErrUnknownObserver is returned when a name is not in the observer registry.
var ErrUnknownObserver = errors.New("unknown observer")
