package observability

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
)

// registry maps the names accepted by repl.Config.Observer and the -observer
// flag to observers. The binary replaces "slog" with its configured logger.
var registry = struct {
	sync.RWMutex
	observers map[string]Observer
}{
	observers: map[string]Observer{
		"noop": NoOpObserver{},
		"slog": NewSlogObserver(slog.Default()),
	},
}

// GetObserver resolves a registered observer by name. Unknown names fail with
// ErrUnknownObserver listing the registered names.
func GetObserver(name string) (Observer, error) {
	registry.RLock()
	defer registry.RUnlock()

	if obs, ok := registry.observers[name]; ok {
		return obs, nil
	}
	names := slices.Sorted(maps.Keys(registry.observers))
	return nil, fmt.Errorf("%w: %q (registered: %s)", ErrUnknownObserver, name, strings.Join(names, ", "))
}

// RegisterObserver adds or replaces a named observer. A nil observer removes
// the name.
func RegisterObserver(name string, observer Observer) {
	registry.Lock()
	defer registry.Unlock()

	if observer == nil {
		delete(registry.observers, name)
		return
	}
	registry.observers[name] = observer
}

// ObserverNames returns the registered names in sorted order.
func ObserverNames() []string {
	registry.RLock()
	defer registry.RUnlock()

	return slices.Sorted(maps.Keys(registry.observers))
}
