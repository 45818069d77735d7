package session_test

import (
	"testing"

	"github.com/tailored-agentic-units/arraymul/history"
	"github.com/tailored-agentic-units/arraymul/session"
)

func TestDefaultConfig(t *testing.T) {
	cfg := session.DefaultConfig()

	if cfg.History.Capacity != history.DefaultCapacity {
		t.Errorf("got history capacity %d, want %d", cfg.History.Capacity, history.DefaultCapacity)
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.Merge(&session.Config{History: history.Config{Capacity: 3}})

	if cfg.History.Capacity != 3 {
		t.Errorf("got history capacity %d, want 3", cfg.History.Capacity)
	}
}

func TestConfig_Merge_ZeroValuesPreserveDefaults(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.Merge(&session.Config{})

	if cfg.History.Capacity != history.DefaultCapacity {
		t.Errorf("got history capacity %d, want %d (preserved default)", cfg.History.Capacity, history.DefaultCapacity)
	}
}

func TestNew_FromConfig(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.History.Capacity = 2

	s := session.New(&cfg, []int{1})
	if s.ID() == "" {
		t.Error("session ID is empty")
	}
}
