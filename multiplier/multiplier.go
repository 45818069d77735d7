// Package multiplier implements the array multiplier: it holds the active
// strategy, applies it to caller-owned arrays and keeps a bounded history of
// pre-operation snapshots for undo.
//
//	m := multiplier.New()
//	m.SetStrategy(strategy.Loop{})
//	res, err := m.Multiply(arr, 3)
//	entry, ok := m.Undo(&arr)
//
// A Multiplier is not safe for concurrent use. Hosts that share one across
// goroutines must serialize Multiply and Undo for the same array; the session
// package does this.
package multiplier

import (
	"context"

	"github.com/tailored-agentic-units/arraymul/history"
	"github.com/tailored-agentic-units/arraymul/observability"
	"github.com/tailored-agentic-units/arraymul/strategy"
)

// Result reports the array sum before and after a multiply.
type Result struct {
	BeforeSum int
	AfterSum  int
}

// Option configures a Multiplier.
type Option func(*Multiplier)

// WithObserver overrides the default NoOpObserver.
func WithObserver(o observability.Observer) Option {
	return func(m *Multiplier) {
		if o != nil {
			m.observer = o
		}
	}
}

// WithHistory uses log as the history instead of a fresh default log.
func WithHistory(log *history.Log) Option {
	return func(m *Multiplier) {
		if log != nil {
			m.history = log
		}
	}
}

// WithCapacity creates the history with the given capacity.
func WithCapacity(capacity int) Option {
	return func(m *Multiplier) { m.history = history.NewLog(capacity) }
}

// Multiplier applies the active strategy to arrays and records undo history.
// The array is owned by the caller and never retained; only copies are kept.
type Multiplier struct {
	strategy strategy.Strategy
	history  *history.Log
	observer observability.Observer
}

// New creates a Multiplier with no strategy and an empty history of
// history.DefaultCapacity entries.
func New(opts ...Option) *Multiplier {
	m := &Multiplier{
		history:  history.NewLog(history.DefaultCapacity),
		observer: observability.NoOpObserver{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetStrategy replaces the active strategy unconditionally.
func (m *Multiplier) SetStrategy(s strategy.Strategy) {
	m.strategy = s

	data := map[string]any{"strategy": ""}
	if s != nil {
		data["strategy"] = s.Name()
	}
	m.emit(EventStrategySet, observability.LevelInfo, "multiplier.SetStrategy", data)
}

// Strategy returns the active strategy, or nil when none is set.
func (m *Multiplier) Strategy() strategy.Strategy {
	return m.strategy
}

// HasStrategy reports whether a strategy is set.
func (m *Multiplier) HasStrategy() bool {
	return m.strategy != nil
}

// Multiply snapshots arr into history, multiplies every element by k with the
// active strategy and returns the sums before and after. Returns
// ErrNoStrategySet without touching arr or history when no strategy is set.
func (m *Multiplier) Multiply(arr []int, k int) (Result, error) {
	if m.strategy == nil {
		m.emit(EventError, observability.LevelWarning, "multiplier.Multiply", map[string]any{
			"error":      ErrNoStrategySet.Error(),
			"multiplier": k,
		})
		return Result{}, ErrNoStrategySet
	}

	name := m.strategy.Name()
	if evicted := m.history.Push(history.NewEntry(name, k, arr)); evicted {
		m.emit(EventHistoryEvict, observability.LevelVerbose, "multiplier.Multiply", map[string]any{
			"capacity": m.history.Cap(),
		})
	}

	res := Result{BeforeSum: Sum(arr)}
	m.strategy.Apply(arr, k)
	res.AfterSum = Sum(arr)

	m.emit(EventMultiply, observability.LevelInfo, "multiplier.Multiply", map[string]any{
		"strategy":   name,
		"multiplier": k,
		"length":     len(arr),
		"before_sum": res.BeforeSum,
		"after_sum":  res.AfterSum,
		"history":    m.history.Len(),
	})

	return res, nil
}

// Undo restores *arr to the snapshot taken before the most recent multiply
// and discards that history entry. The previous contents of *arr are
// overwritten entirely. Returns false with *arr unchanged when there is
// nothing to undo.
func (m *Multiplier) Undo(arr *[]int) (history.Entry, bool) {
	entry, ok := m.history.Pop()
	if !ok {
		m.emit(EventUndoEmpty, observability.LevelVerbose, "multiplier.Undo", nil)
		return history.Entry{}, false
	}

	*arr = entry.Snapshot()

	m.emit(EventUndo, observability.LevelInfo, "multiplier.Undo", map[string]any{
		"strategy":   entry.Strategy(),
		"multiplier": entry.Multiplier(),
		"history":    m.history.Len(),
	})

	return entry, true
}

// HistorySize returns the number of undoable operations.
func (m *Multiplier) HistorySize() int {
	return m.history.Len()
}

// History returns the recorded entries, oldest first.
func (m *Multiplier) History() []history.Entry {
	return m.history.Entries()
}

// ClearHistory discards all recorded entries.
func (m *Multiplier) ClearHistory() {
	m.history.Clear()
}

func (m *Multiplier) emit(typ observability.EventType, level observability.Level, source string, data map[string]any) {
	m.observer.OnEvent(context.Background(), observability.NewEvent(typ, level, source, data))
}
