package history_test

import (
	"slices"
	"testing"

	"github.com/tailored-agentic-units/arraymul/history"
)

func pushN(l *history.Log, n int) {
	for i := range n {
		l.Push(history.NewEntry("loop", i, []int{i}))
	}
}

func TestNewLog_Capacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		want     int
	}{
		{name: "explicit", capacity: 3, want: 3},
		{name: "zero uses default", capacity: 0, want: history.DefaultCapacity},
		{name: "negative uses default", capacity: -4, want: history.DefaultCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := history.NewLog(tt.capacity)
			if l.Cap() != tt.want {
				t.Errorf("got Cap %d, want %d", l.Cap(), tt.want)
			}
			if l.Len() != 0 {
				t.Errorf("new log has %d entries, want 0", l.Len())
			}
		})
	}
}

func TestLog_Push_Bounded(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25} {
		l := history.NewLog(history.DefaultCapacity)
		pushN(l, n)

		want := min(n, history.DefaultCapacity)
		if l.Len() != want {
			t.Errorf("after %d pushes: got Len %d, want %d", n, l.Len(), want)
		}
	}
}

func TestLog_Push_EvictsOldest(t *testing.T) {
	l := history.NewLog(3)

	for i := range 3 {
		if evicted := l.Push(history.NewEntry("loop", i, nil)); evicted {
			t.Fatalf("push %d evicted while below capacity", i)
		}
	}
	if evicted := l.Push(history.NewEntry("loop", 3, nil)); !evicted {
		t.Fatal("push at capacity did not evict")
	}

	var got []int
	for _, e := range l.Entries() {
		got = append(got, e.Multiplier())
	}
	if want := []int{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("got multipliers %v, want %v", got, want)
	}
}

func TestLog_Pop_LIFO(t *testing.T) {
	l := history.NewLog(history.DefaultCapacity)
	pushN(l, 15)

	for want := 14; want >= 5; want-- {
		e, ok := l.Pop()
		if !ok {
			t.Fatalf("Pop returned false, want entry %d", want)
		}
		if e.Multiplier() != want {
			t.Errorf("got multiplier %d, want %d", e.Multiplier(), want)
		}
	}

	if _, ok := l.Pop(); ok {
		t.Error("Pop on drained log returned true")
	}
}

func TestLog_Peek(t *testing.T) {
	l := history.NewLog(2)
	if _, ok := l.Peek(); ok {
		t.Error("Peek on empty log returned true")
	}

	pushN(l, 2)
	e, ok := l.Peek()
	if !ok || e.Multiplier() != 1 {
		t.Errorf("Peek = (%d, %v), want (1, true)", e.Multiplier(), ok)
	}
	if l.Len() != 2 {
		t.Errorf("Peek changed Len to %d", l.Len())
	}
}

func TestLog_Entries_DefensiveCopy(t *testing.T) {
	l := history.NewLog(4)
	pushN(l, 2)

	entries := l.Entries()
	entries[0] = history.NewEntry("tampered", 99, nil)
	_ = append(entries, history.NewEntry("extra", 100, nil))

	original := l.Entries()
	if len(original) != 2 {
		t.Fatalf("got %d entries, want 2", len(original))
	}
	if original[0].Strategy() != "loop" {
		t.Errorf("first entry was mutated: got %q", original[0].Strategy())
	}
}

func TestLog_Clear(t *testing.T) {
	l := history.NewLog(4)
	pushN(l, 4)
	l.Clear()

	if l.Len() != 0 {
		t.Errorf("got Len %d after Clear, want 0", l.Len())
	}

	pushN(l, 1)
	if l.Len() != 1 {
		t.Errorf("got Len %d after Clear then Push, want 1", l.Len())
	}
}

func TestConfig(t *testing.T) {
	cfg := history.DefaultConfig()
	if cfg.Capacity != history.DefaultCapacity {
		t.Errorf("got default Capacity %d, want %d", cfg.Capacity, history.DefaultCapacity)
	}

	cfg.Merge(&history.Config{})
	if cfg.Capacity != history.DefaultCapacity {
		t.Errorf("zero merge changed Capacity to %d", cfg.Capacity)
	}

	cfg.Merge(&history.Config{Capacity: 4})
	if l := history.New(&cfg); l.Cap() != 4 {
		t.Errorf("got Cap %d, want 4", l.Cap())
	}
}
