package observability

import "context"

// NoOpObserver discards events. It is the multiplier's observer until one is
// supplied and is skipped by MultiObserver.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(context.Context, Event) {}
