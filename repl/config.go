package repl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/tailored-agentic-units/arraymul/session"
)

const defaultObserver = "slog"

// Config holds command loop initialization parameters.
type Config struct {
	Session  session.Config `json:"session" yaml:"session"`
	Array    []int          `json:"array,omitempty" yaml:"array,omitempty"`       // Initial array; empty prompts for one.
	Observer string         `json:"observer,omitempty" yaml:"observer,omitempty"` // Name in the observability registry.
	Metrics  bool           `json:"metrics,omitempty" yaml:"metrics,omitempty"`   // Also count events with OpenTelemetry.
	Prompt   string         `json:"prompt,omitempty" yaml:"prompt,omitempty"`     // Command prompt shown by terminal readers.
}

// DefaultConfig returns a Config with defaults for all subsystems.
func DefaultConfig() Config {
	return Config{
		Session:  session.DefaultConfig(),
		Observer: defaultObserver,
		Prompt:   PromptCommand,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	c.Session.Merge(&source.Session)

	if len(source.Array) > 0 {
		c.Array = slices.Clone(source.Array)
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
	if source.Metrics {
		c.Metrics = true
	}
	if source.Prompt != "" {
		c.Prompt = source.Prompt
	}
}

// LoadConfig reads a YAML (.yaml, .yml) or JSON config file, merges it with
// defaults, and returns the resulting Config. Unknown keys are rejected.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&loaded)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&loaded)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
