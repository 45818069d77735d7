package multiplier

import "github.com/tailored-agentic-units/arraymul/observability"

// Multiplier event types.
const (
	EventStrategySet  observability.EventType = "multiplier.strategy.set"
	EventMultiply     observability.EventType = "multiplier.multiply"
	EventUndo         observability.EventType = "multiplier.undo"
	EventUndoEmpty    observability.EventType = "multiplier.undo.empty"
	EventHistoryEvict observability.EventType = "multiplier.history.evict"
	EventError        observability.EventType = "multiplier.error"
)
