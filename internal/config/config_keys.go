// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML structure
// and loading, while this file handles the CLI interface where config is
// accessed by string keys (e.g., "limits.max_file_size").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to zero". This enables proper
// defaulting - we only apply defaults when the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"data.dir",
		"limits.max_file_size",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "data.dir":
		return c.DataDir(), nil
	case "limits.max_file_size":
		return strconv.FormatInt(c.MaxFileSize(), 10), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "data.dir":
		if value == "" {
			return fmt.Errorf("%w: data.dir must not be empty", ErrInvalidValue)
		}
		c.Data.Dir = value
	case "limits.max_file_size":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: limits.max_file_size must be a positive integer", ErrInvalidValue)
		}
		c.Limits.MaxFileSize = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"data.dir":             c.DataDir(),
		"limits.max_file_size": strconv.FormatInt(c.MaxFileSize(), 10),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "data.dir":
		return c.Data.Dir != ""
	case "limits.max_file_size":
		return c.Limits.MaxFileSize != nil
	default:
		return false
	}
}
