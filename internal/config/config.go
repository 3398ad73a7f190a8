// Package config handles configuration loading, validation, and management for pwconvert.
package config

import (
	"os"
	"path/filepath"

	"passkey/internal/layout"
)

// Version is the current configuration schema version.
const Version = 1

// DefaultOutput is the keyfile written when nothing else is configured.
const DefaultOutput = "out.key"

// Config holds the complete converter configuration.
type Config struct {
	// Version is the configuration schema version.
	Version int `toml:"version" json:"version" yaml:"version"`

	// Layout names the keyboard layout used to resolve characters.
	Layout string `toml:"layout" json:"layout" yaml:"layout"`

	// Output is the keyfile path.
	Output string `toml:"output" json:"output" yaml:"output"`

	// Input is an optional file holding the key sequence. When empty the
	// sequence is read interactively.
	Input string `toml:"input" json:"input" yaml:"input"`

	// Normalize applies Unicode NFC to the input before conversion.
	Normalize bool `toml:"normalize" json:"normalize" yaml:"normalize"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `toml:"level" json:"level" yaml:"level"`

	// Format is the log format: text or json.
	Format string `toml:"format" json:"format" yaml:"format"`

	// Output is where logs go: stdout, stderr, file.
	Output string `toml:"output" json:"output" yaml:"output"`

	// FilePath is the log file path when Output is "file".
	FilePath string `toml:"file_path" json:"file_path" yaml:"file_path"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Version: Version,
		Layout:  layout.Default,
		Output:  DefaultOutput,
		Logging: LoggingConfig{
			Level:    "warn",
			Format:   "text",
			Output:   "stderr",
			FilePath: filepath.Join(PlatformLogDir(), "pwconvert.log"),
		},
	}
}

// ConfigPath returns the default configuration file path.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// ConfigDir returns the pwconvert configuration directory.
// PWCONVERT_CONFIG_DIR overrides the platform default.
func ConfigDir() string {
	if envDir := os.Getenv("PWCONVERT_CONFIG_DIR"); envDir != "" {
		return envDir
	}
	return PlatformConfigDir()
}

// ApplyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables are prefixed with PWCONVERT_.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("PWCONVERT_LAYOUT"); v != "" {
		c.Layout = v
	}
	if v := os.Getenv("PWCONVERT_OUTPUT"); v != "" {
		c.Output = v
	}

	// Logging overrides
	if v := os.Getenv("PWCONVERT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PWCONVERT_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("PWCONVERT_LOG_PATH"); v != "" {
		c.Logging.FilePath = v
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	return ValidateConfig(c)
}
