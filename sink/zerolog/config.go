package zerologsink

import (
	"fmt"
	"io"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config controls how the sink renders diagnostic output.
type Config struct {
	Format    string `yaml:"format" mapstructure:"format"`
	Output    string `yaml:"output" mapstructure:"output"` // "stdout" or "stderr"
	NoColor   bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp bool   `yaml:"timestamp" mapstructure:"timestamp"`
	Caller    bool   `yaml:"caller" mapstructure:"caller"`

	// Writer overrides Output when set. Useful for capturing output in
	// tests.
	Writer io.Writer `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults applies default values to the sink configuration.
func (c *Config) ApplyDefaults() {
	if c.Format == "" {
		c.Format = FormatConsole
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
}

// Validate validates the sink configuration.
func (c *Config) Validate() error {
	if c.Format != FormatJSON && c.Format != FormatConsole {
		return fmt.Errorf("sink format must be %q or %q (got: %s)", FormatJSON, FormatConsole, c.Format)
	}
	if c.Output != "stdout" && c.Output != "stderr" {
		return fmt.Errorf("sink output must be \"stdout\" or \"stderr\" (got: %s)", c.Output)
	}
	return nil
}
