package repl

import "errors"

// Sentinel errors reported by the command loop.
var (
	ErrUnknownCommand    = errors.New("unknown command")
	ErrInvalidMultiplier = errors.New("invalid multiplier")
	ErrInvalidArray      = errors.New("invalid array")
	ErrEmptyArray        = errors.New("array size must be greater than 0")
	ErrInput             = errors.New("read input")
)
