package repl

import "github.com/tailored-agentic-units/arraymul/observability"

// Command loop event types.
const (
	EventStart   observability.EventType = "repl.start"
	EventCommand observability.EventType = "repl.command"
	EventError   observability.EventType = "repl.error"
	EventExit    observability.EventType = "repl.exit"
)
