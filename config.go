package famdfa

import "fmt"

// Config controls how Compile builds a Graph.
//
// Example:
//
//	config := famdfa.DefaultConfig()
//	config.MaxState = 500 // fail fast on patterns that blow up the DFA
//	g, err := famdfa.CompileWithConfig(config, `a+`, `(a|b)+`)
type Config struct {
	// MaxState bounds the number of subset-construction states Compile may
	// build before giving up with a *graph.LimitError. Zero means
	// unbounded.
	// Default: 100000
	MaxState int

	// Aggregate runs DFA minimisation after subset construction, merging
	// states that agree on both accepted families and transitions.
	// Default: true
	Aggregate bool

	// EnableLiteralAccel builds an Aho-Corasick matcher for every pattern
	// whose entire language is a single literal string. Those patterns are
	// still compiled into the DFA and Match still walks it; the matcher's
	// anchored completions are merged into the same result. Only takes
	// effect once at least MinLiteralPatterns such families are found.
	// Default: true
	EnableLiteralAccel bool

	// MinLiteralPatterns is the fewest literal-only pattern families that
	// must be present before EnableLiteralAccel actually builds an
	// accelerator; below this count no accelerator is built and those
	// families are matched by the DFA alone. Ignored when
	// EnableLiteralAccel is false.
	// Default: 1
	MinLiteralPatterns int
}

// DefaultConfig returns a configuration with sensible defaults: a generous
// but finite state cap, minimisation on, and literal acceleration on for
// any pattern set containing at least one pure-literal family.
func DefaultConfig() Config {
	return Config{
		MaxState:           100000,
		Aggregate:          true,
		EnableLiteralAccel: true,
		MinLiteralPatterns: 1,
	}
}

// Validate checks that the configuration's numeric fields are in range.
func (c Config) Validate() error {
	if c.MaxState < 0 {
		return &ConfigError{Field: "MaxState", Message: "must be >= 0"}
	}
	if c.MinLiteralPatterns < 0 {
		return &ConfigError{Field: "MinLiteralPatterns", Message: "must be >= 0"}
	}
	return nil
}

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("famdfa: invalid config: %s: %s", e.Field, e.Message)
}
