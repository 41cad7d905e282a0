// Package config provides reading and writing of sid configuration.
// Supports both global (~/.sid/config.yaml) and local (.sid/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.sid/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is dataset-specific config in .sid/config.yaml
	ScopeLocal
)

// Data holds dataset location configuration.
type Data struct {
	Dir string `yaml:"dir,omitempty"`
}

// Limits holds size limit configuration options.
type Limits struct {
	MaxFileSize *int64 `yaml:"max_file_size,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultDataDir     = "data"
	DefaultMaxFileSize = 4 * 1024 * 1024 // 4 MB - an ingredient file is a few KB
)

// Validation bounds for configuration values.
const (
	MinMaxFileSize = 1
	MaxMaxFileSize = 1024 * 1024 * 1024 // 1 GB - reasonable upper bound
)

// Config contains configuration for sid.
type Config struct {
	Data   Data   `yaml:"data,omitempty"`
	Limits Limits `yaml:"limits,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Limits.MaxFileSize != nil {
		v := *c.Limits.MaxFileSize
		if v < MinMaxFileSize || v > MaxMaxFileSize {
			return fmt.Errorf("%w: max_file_size must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxFileSize, MaxMaxFileSize, v)
		}
	}
	return nil
}

// DataDir returns the configured data directory (defaults to "data").
func (c *Config) DataDir() string {
	if c.Data.Dir == "" {
		return DefaultDataDir
	}
	return c.Data.Dir
}

// MaxFileSize returns the maximum data file size in bytes (defaults to 4 MB).
func (c *Config) MaxFileSize() int64 {
	if c.Limits.MaxFileSize == nil {
		return DefaultMaxFileSize
	}
	return *c.Limits.MaxFileSize
}

// LocalPath returns the path to the local (dataset) config file.
func LocalPath() string {
	return filepath.Join(".sid", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.sid/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sid", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
