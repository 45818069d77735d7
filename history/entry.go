package history

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Entry records one multiply operation with enough state to reverse it.
// Entries are immutable once created: the snapshot is copied on the way in
// and on the way out.
type Entry struct {
	id         string
	strategy   string
	multiplier int
	snapshot   []int
	timestamp  time.Time
}

// NewEntry creates an Entry holding an independent copy of state.
// The entry is assigned a unique UUIDv7 identifier.
func NewEntry(strategy string, multiplier int, state []int) Entry {
	return Entry{
		id:         uuid.Must(uuid.NewV7()).String(),
		strategy:   strategy,
		multiplier: multiplier,
		snapshot:   cloneState(state),
		timestamp:  time.Now(),
	}
}

// ID returns the unique entry identifier.
func (e Entry) ID() string { return e.id }

// Strategy returns the display name of the strategy that was applied.
func (e Entry) Strategy() string { return e.strategy }

// Multiplier returns the scalar the array was multiplied by.
func (e Entry) Multiplier() int { return e.multiplier }

// Timestamp returns when the entry was recorded.
func (e Entry) Timestamp() time.Time { return e.timestamp }

// Snapshot returns a copy of the array state captured before the operation.
func (e Entry) Snapshot() []int { return cloneState(e.snapshot) }

// Len returns the length of the captured array.
func (e Entry) Len() int { return len(e.snapshot) }

// cloneState copies state, keeping a non-nil result for non-nil input so an
// empty array restores as empty rather than nil.
func cloneState(state []int) []int {
	if state == nil {
		return nil
	}
	return slices.Clone(state)
}
