// Package cliconfig loads and persists configuration for the savectl CLI.
//
// Values are resolved with the following precedence:
//  1. Command-line flags (highest)
//  2. Environment variables
//  3. Global config file (~/.config/savectl/config.yaml)
//  4. Defaults (lowest)
//
// The config file also stores computed stored-to-displayed offsets so they
// survive between invocations (see `savectl offsets --store`).
package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvSavePath is the environment variable overriding the save file path.
const EnvSavePath = "SAVECTL_SAVE"

// DefaultSavePath is the save file path used when nothing else is set.
// The game writes the player save next to the working directory as "player".
const DefaultSavePath = "player"

// configDir is the directory under the user config root.
const configDir = "savectl"

// configFile is the config file name inside configDir.
const configFile = "config.yaml"

// Config is the persisted CLI configuration.
type Config struct {
	// SavePath is the default path to the player save file.
	SavePath string `yaml:"savePath,omitempty"`

	// Offsets maps entry names to their stored-minus-displayed offsets.
	Offsets map[string]int64 `yaml:"offsets,omitempty"`
}

// NewDefault returns a Config with default values.
func NewDefault() *Config {
	return &Config{
		SavePath: DefaultSavePath,
		Offsets:  map[string]int64{},
	}
}

// Path returns the location of the global config file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configDir, configFile), nil
}

// Load reads the global config file. A missing file is not an error; the
// defaults are returned instead.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return NewDefault(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a config file from an explicit path, falling back to
// defaults when the file does not exist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewDefault(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := NewDefault()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ConfigError{Path: path, Message: err.Error()}
	}
	if cfg.SavePath == "" {
		cfg.SavePath = DefaultSavePath
	}
	if cfg.Offsets == nil {
		cfg.Offsets = map[string]int64{}
	}
	return cfg, nil
}

// Save writes the config to the global config file, creating the directory
// if needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes the config to an explicit path.
func (c *Config) SaveFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ResolveSavePath picks the effective save file path: the flag value when
// set, then the environment, then the config file value.
func ResolveSavePath(flagValue string, cfg *Config) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvSavePath); env != "" {
		return env
	}
	if cfg != nil && cfg.SavePath != "" {
		return cfg.SavePath
	}
	return DefaultSavePath
}

// ConfigError is a configuration file error with its source path.
type ConfigError struct {
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}
