package config

import (
	"fmt"

	"github.com/kbukum/diagkit/diag"
	zerologsink "github.com/kbukum/diagkit/sink/zerolog"
	"github.com/kbukum/diagkit/version"
)

// Setup builds a zerolog-backed sink from cfg and installs it into the
// process-wide diag facade.
func Setup(cfg Config) error {
	return SetupWith(diag.Instance(), cfg)
}

// SetupWith installs the configured sink into a specific facade instance.
func SetupWith(api *diag.DiagAPI, cfg Config) error {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Validate guarantees the level parses.
	level, _ := diag.ParseLevel(cfg.Level)

	sink := zerologsink.New(zerologsink.Config{
		Format:    cfg.Format,
		Output:    cfg.Output,
		NoColor:   cfg.NoColor,
		Timestamp: true,
	})

	if !api.SetLogger(sink, level, diag.WithSuppressOverrideMessage(cfg.SuppressOverrideMessage)) {
		return fmt.Errorf("failed to install diagnostic logger")
	}
	api.Debug("diagkit " + version.GetShortVersion() + ": diagnostic logger installed at level " + level.String())
	return nil
}
