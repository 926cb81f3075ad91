// Package config loads diagnostic logging configuration and bootstraps
// the diag facade from it.
//
// Configuration comes from an optional YAML file, an optional .env file,
// and DIAG_* environment variables, highest precedence last:
//
//	# diag.yml
//	level: debug
//	format: console
//	output: stderr
//
//	DIAG_LEVEL=verbose myservice
//
// A host that wants the default zerolog backend wired up in one call:
//
//	cfg, err := config.Load()
//	if err != nil { ... }
//	if err := config.Setup(cfg); err != nil { ... }
package config
