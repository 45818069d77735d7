package multiplier

import "errors"

// ErrNoStrategySet is returned by Multiply when no strategy has been set.
// The array and history are left untouched.
var ErrNoStrategySet = errors.New("no strategy set")
