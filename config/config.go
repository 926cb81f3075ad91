package config

import (
	"fmt"

	"github.com/kbukum/diagkit/diag"
)

// Config contains diagnostic logging configuration.
type Config struct {
	Level                   string `yaml:"level" mapstructure:"level"`
	Format                  string `yaml:"format" mapstructure:"format"`
	Output                  string `yaml:"output" mapstructure:"output"`
	NoColor                 bool   `yaml:"no_color" mapstructure:"no_color"`
	SuppressOverrideMessage bool   `yaml:"suppress_override_message" mapstructure:"suppress_override_message"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := diag.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("diag.level must be a known level (got: %s)", c.Level)
	}
	validFormats := []string{"json", "console"}
	if !contains(validFormats, c.Format) {
		return fmt.Errorf("diag.format must be one of %v (got: %s)", validFormats, c.Format)
	}
	validOutputs := []string{"stdout", "stderr"}
	if !contains(validOutputs, c.Output) {
		return fmt.Errorf("diag.output must be one of %v (got: %s)", validOutputs, c.Output)
	}
	return nil
}

func contains(slice []string, val string) bool {
	for _, s := range slice {
		if s == val {
			return true
		}
	}
	return false
}
