package session

import "github.com/tailored-agentic-units/arraymul/history"

// Config holds session initialization parameters.
type Config struct {
	History history.Config `json:"history" yaml:"history"`
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{History: history.DefaultConfig()}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	c.History.Merge(&source.History)
}
