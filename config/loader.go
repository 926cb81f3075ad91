package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// configKeys lists every key the loader reads, used to bind DIAG_*
// environment variables.
var configKeys = []string{"level", "format", "output", "no_color", "suppress_override_message"}

// defaultSearchPaths are tried in order when no config file is given.
var defaultSearchPaths = []string{"./diag.yml", "./config/diag.yml"}

// LoaderConfig holds optional file overrides for Load.
type LoaderConfig struct {
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct .env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load builds a Config from, in increasing precedence: defaults, a YAML
// config file, a .env file, and DIAG_* environment variables. Missing
// files are skipped unless an explicit path was given.
func Load(opts ...LoaderOption) (Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	v := viper.New()

	configFile := lc.ConfigFile
	if configFile == "" {
		configFile = findFirst(defaultSearchPaths)
	} else if !exists(configFile) {
		return Config{}, fmt.Errorf("diag config file not found: %s", configFile)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read diag config file %s: %w", configFile, err)
		}
	}

	envFile := lc.EnvFile
	if envFile == "" && exists(".env") {
		envFile = ".env"
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	v.SetEnvPrefix("DIAG")
	for _, key := range configKeys {
		// BindEnv resolves DIAG_<KEY> through the prefix; errors only on
		// an empty key, which configKeys never contains.
		_ = v.BindEnv(key)
	}

	cfg := Config{
		Level:                   v.GetString("level"),
		Format:                  v.GetString("format"),
		Output:                  v.GetString("output"),
		NoColor:                 v.GetBool("no_color"),
		SuppressOverrideMessage: v.GetBool("suppress_override_message"),
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func findFirst(paths []string) string {
	for _, path := range paths {
		if exists(path) {
			return path
		}
	}
	return ""
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
