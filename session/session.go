// Package session binds one array to one multiplier behind a single lock so
// that multiply and undo never interleave on the same array.
package session

import (
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/tailored-agentic-units/arraymul/history"
	"github.com/tailored-agentic-units/arraymul/multiplier"
	"github.com/tailored-agentic-units/arraymul/strategy"
)

// Session owns an array and the multiplier that transforms it. All methods
// are safe for concurrent use; each call runs under one mutex.
type Session struct {
	id    string
	array []int
	mult  *multiplier.Multiplier
	mu    sync.Mutex
}

// New creates a Session over a copy of initial. Options are forwarded to
// multiplier.New after the configured history is applied.
func New(cfg *Config, initial []int, opts ...multiplier.Option) *Session {
	all := make([]multiplier.Option, 0, len(opts)+1)
	all = append(all, multiplier.WithHistory(history.New(&cfg.History)))
	all = append(all, opts...)

	return &Session{
		id:    uuid.Must(uuid.NewV7()).String(),
		array: slices.Clone(initial),
		mult:  multiplier.New(all...),
	}
}

// ID returns the unique session identifier.
func (s *Session) ID() string {
	return s.id
}

// Array returns a copy of the current array.
func (s *Session) Array() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.array)
}

// Sum returns the sum of the current array.
func (s *Session) Sum() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return multiplier.Sum(s.array)
}

// SetStrategy replaces the active strategy.
func (s *Session) SetStrategy(st strategy.Strategy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mult.SetStrategy(st)
}

// HasStrategy reports whether a strategy is set.
func (s *Session) HasStrategy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mult.HasStrategy()
}

// Multiply applies the active strategy to the session array.
func (s *Session) Multiply(k int) (multiplier.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mult.Multiply(s.array, k)
}

// Undo reverts the most recent multiply. Returns false when there is nothing
// to undo.
func (s *Session) Undo() (history.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mult.Undo(&s.array)
}

// HistorySize returns the number of undoable operations.
func (s *Session) HistorySize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mult.HistorySize()
}

// History returns the recorded entries, oldest first.
func (s *Session) History() []history.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mult.History()
}

// Reset replaces the array with a copy of arr and discards history. The
// active strategy is kept.
func (s *Session) Reset(arr []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.array = slices.Clone(arr)
	s.mult.ClearHistory()
}
