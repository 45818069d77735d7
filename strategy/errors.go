package strategy

import "errors"

// Sentinel errors for the strategy catalog.
var (
	ErrUnknownStrategy   = errors.New("unknown strategy")
	ErrAlreadyRegistered = errors.New("strategy already registered")
	ErrEmptyName         = errors.New("strategy name is empty")
	ErrInvalidKind       = errors.New("strategy kind must be positive")
)
