package strategy

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Kind is the numeric identifier a user picks a strategy by.
type Kind int

// Built-in strategy kinds.
const (
	KindLoop Kind = iota + 1
	KindPointer
	KindTransform
	KindRange
)

// Factory creates a fresh Strategy instance.
type Factory func() Strategy

// Descriptor describes a catalog entry for listings and lookups.
type Descriptor struct {
	Kind        Kind
	Name        string // Short lookup name, e.g. "loop".
	DisplayName string
}

type entry struct {
	desc    Descriptor
	factory Factory
}

// Catalog maps identifiers to strategy factories. All methods are safe for
// concurrent use.
type Catalog struct {
	entries map[Kind]entry
	names   map[string]Kind
	mu      sync.RWMutex
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		entries: make(map[Kind]entry),
		names:   make(map[string]Kind),
	}
}

// Builtin creates a Catalog holding the four built-in strategies.
func Builtin() *Catalog {
	c := NewCatalog()
	builtins := []struct {
		desc    Descriptor
		factory Factory
	}{
		{Descriptor{KindLoop, "loop", Loop{}.Name()}, func() Strategy { return Loop{} }},
		{Descriptor{KindPointer, "pointer", Pointer{}.Name()}, func() Strategy { return Pointer{} }},
		{Descriptor{KindTransform, "transform", Transform{}.Name()}, func() Strategy { return Transform{} }},
		{Descriptor{KindRange, "range", Range{}.Name()}, func() Strategy { return Range{} }},
	}
	for _, b := range builtins {
		if err := c.Register(b.desc, b.factory); err != nil {
			panic(err)
		}
	}
	return c
}

// Register adds a strategy factory under desc.Kind and desc.Name.
// Returns ErrAlreadyRegistered if either identifier is taken.
func (c *Catalog) Register(desc Descriptor, factory Factory) error {
	desc.Name = strings.ToLower(strings.TrimSpace(desc.Name))
	if desc.Name == "" {
		return ErrEmptyName
	}
	if desc.Kind < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidKind, desc.Kind)
	}
	if desc.DisplayName == "" {
		desc.DisplayName = desc.Name
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[desc.Kind]; exists {
		return fmt.Errorf("%w: kind %d", ErrAlreadyRegistered, desc.Kind)
	}
	if _, exists := c.names[desc.Name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, desc.Name)
	}

	c.entries[desc.Kind] = entry{desc: desc, factory: factory}
	c.names[desc.Name] = desc.Kind
	return nil
}

// Resolve creates the strategy registered under kind.
// Returns ErrUnknownStrategy for unregistered kinds.
func (c *Catalog) Resolve(kind Kind) (Strategy, error) {
	c.mu.RLock()
	e, exists := c.entries[kind]
	c.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, kind)
	}
	return e.factory(), nil
}

// ResolveName creates the strategy registered under the short name.
func (c *Catalog) ResolveName(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	c.mu.RLock()
	kind, exists := c.names[key]
	c.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, name)
	}
	return c.Resolve(kind)
}

// Lookup resolves an identifier that is either a numeric kind or a short name.
func (c *Catalog) Lookup(identifier string) (Strategy, error) {
	if kind, err := ParseKind(identifier); err == nil {
		return c.Resolve(kind)
	}
	return c.ResolveName(identifier)
}

// List returns descriptors of all registered strategies ordered by kind.
func (c *Catalog) List() []Descriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	descs := make([]Descriptor, 0, len(c.entries))
	for _, e := range c.entries {
		descs = append(descs, e.desc)
	}
	slices.SortFunc(descs, func(a, b Descriptor) int {
		return int(a.Kind) - int(b.Kind)
	})
	return descs
}

// ParseKind parses a numeric strategy choice.
func ParseKind(s string) (Kind, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
	return Kind(n), nil
}

var defaultCatalog = Builtin()

// Default returns the process-wide catalog of built-in strategies.
func Default() *Catalog {
	return defaultCatalog
}
