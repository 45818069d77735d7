// Package history keeps a bounded, chronologically ordered record of array
// operations for linear undo.
package history

import "sync"

// DefaultCapacity is the number of entries a Log keeps when no capacity is
// configured.
const DefaultCapacity = 10

// Log is a bounded stack of entries. Pushing onto a full log evicts the
// oldest entry; popping returns the most recent one. Safe for concurrent use.
type Log struct {
	entries  []Entry
	capacity int
	mu       sync.RWMutex
}

// NewLog creates an empty Log holding at most capacity entries. A capacity
// below 1 falls back to DefaultCapacity.
func NewLog(capacity int) *Log {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Log{
		entries:  make([]Entry, 0, capacity),
		capacity: capacity,
	}
}

// Push appends e as the most recent entry. Returns true when the oldest
// entry was evicted to make room.
func (l *Log) Push(e Entry) (evicted bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) >= l.capacity {
		copy(l.entries, l.entries[1:])
		l.entries[len(l.entries)-1] = Entry{}
		l.entries = l.entries[:len(l.entries)-1]
		evicted = true
	}
	l.entries = append(l.entries, e)
	return evicted
}

// Pop removes and returns the most recent entry. Returns false when the log
// is empty.
func (l *Log) Pop() (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) == 0 {
		return Entry{}, false
	}
	last := l.entries[len(l.entries)-1]
	l.entries[len(l.entries)-1] = Entry{}
	l.entries = l.entries[:len(l.entries)-1]
	return last, true
}

// Peek returns the most recent entry without removing it.
func (l *Log) Peek() (Entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Len returns the number of entries currently held.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Cap returns the maximum number of entries the log holds.
func (l *Log) Cap() int {
	return l.capacity
}

// Entries returns the entries oldest first. The returned slice is a copy.
func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	copied := make([]Entry, len(l.entries))
	copy(copied, l.entries)
	return copied
}

// Clear removes all entries.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	clear(l.entries)
	l.entries = l.entries[:0]
}
