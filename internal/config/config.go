// Package config loads clink's YAML configuration file.
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sewbacca/clink/pkg/complete"
)

// Config controls generator wiring and completion display.
type Config struct {
	// DefaultSeparator is appended to directory candidates when the typed
	// end word does not already contain a path separator.
	DefaultSeparator string `yaml:"default_separator"`
	// ScriptDirs lists directories whose *.lua scripts are loaded at startup.
	ScriptDirs []string `yaml:"script_dirs"`
	// WordLists maps a command name to the words its arguments complete to.
	WordLists map[string][]string `yaml:"word_lists"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DefaultSeparator: string(complete.DefaultSeparator),
	}
}

// Separator returns the configured separator byte, falling back to the
// engine default when unset.
func (c *Config) Separator() byte {
	if c.DefaultSeparator == "" {
		return complete.DefaultSeparator
	}
	return c.DefaultSeparator[0]
}

// Load reads the configuration at path. A missing file yields the defaults
// with no error; a malformed file is an error.
func Load(path string, logger *zap.Logger) (*Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("no config file, using defaults", zap.String("path", path))
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.DefaultSeparator == "" {
		cfg.DefaultSeparator = string(complete.DefaultSeparator)
	}

	logger.Debug("loaded config",
		zap.String("path", path),
		zap.Int("scriptDirs", len(cfg.ScriptDirs)),
		zap.Int("wordLists", len(cfg.WordLists)),
	)
	return cfg, nil
}
