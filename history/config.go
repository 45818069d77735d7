package history

// Config holds history log initialization parameters.
type Config struct {
	Capacity int `json:"capacity,omitempty" yaml:"capacity,omitempty"`
}

// DefaultConfig returns the default history configuration.
func DefaultConfig() Config {
	return Config{Capacity: DefaultCapacity}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Capacity > 0 {
		c.Capacity = source.Capacity
	}
}

// New creates a Log from configuration.
func New(cfg *Config) *Log {
	return NewLog(cfg.Capacity)
}
