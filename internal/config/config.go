// Package config loads runtime settings for the texteditor binary.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvName    = "TEXTEDITOR_ENV"
	EnvVerbose = "TEXTEDITOR_VERBOSE"
	EnvFile    = "TEXTEDITOR_CONFIG"
)

// Config holds the runtime settings.
type Config struct {
	Env     string `yaml:"env"`
	Verbose bool   `yaml:"verbose"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{Env: "local"}
}

// Load builds a Config from defaults, then the YAML file at path (or the
// file named by TEXTEDITOR_CONFIG when path is empty), then environment
// overrides. A missing path means no file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvFile)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("yaml unmarshal %s: %w", path, err)
		}
	}

	cfg.Env = getenv(EnvName, cfg.Env)
	cfg.Verbose = getenvBool(EnvVerbose, cfg.Verbose)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if c.Env == "" {
		return errors.New("config: env must not be empty")
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
