package docstamp

import (
	"errors"
	"os"
	"strings"
	"sync"
)

// Config contains all configuration options for the stamping engine
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error)
	LogLevel string
	// PlaceholderPrefix opens a placeholder token, e.g. "${"
	PlaceholderPrefix string
	// PlaceholderSuffix closes a placeholder token, e.g. "}"
	PlaceholderSuffix string
	// FailOnMissing makes stamping fail when a placeholder has no value
	// instead of leaving the token in the document
	FailOnMissing bool
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	// Initialize global config from environment on first use
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:          "info",
		PlaceholderPrefix: "${",
		PlaceholderSuffix: "}",
		FailOnMissing:     false,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// DOCSTAMP_LOG_LEVEL
	if val := os.Getenv("DOCSTAMP_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	// DOCSTAMP_PLACEHOLDER_PREFIX
	if val := os.Getenv("DOCSTAMP_PLACEHOLDER_PREFIX"); val != "" {
		config.PlaceholderPrefix = val
	}

	// DOCSTAMP_PLACEHOLDER_SUFFIX
	if val := os.Getenv("DOCSTAMP_PLACEHOLDER_SUFFIX"); val != "" {
		config.PlaceholderSuffix = val
	}

	// DOCSTAMP_FAIL_ON_MISSING
	if val := os.Getenv("DOCSTAMP_FAIL_ON_MISSING"); val != "" {
		config.FailOnMissing = parseBool(val)
	}

	return config
}

// NewConfigWithDefaults creates a new configuration with defaults applied to unset fields
func NewConfigWithDefaults(overrides *Config) *Config {
	defaults := DefaultConfig()

	if overrides == nil {
		return defaults
	}

	// Create a copy of the overrides
	config := *overrides

	// Apply defaults for zero values
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}

	if config.PlaceholderPrefix == "" {
		config.PlaceholderPrefix = defaults.PlaceholderPrefix
	}

	if config.PlaceholderSuffix == "" {
		config.PlaceholderSuffix = defaults.PlaceholderSuffix
	}

	return &config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}

	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if c.PlaceholderPrefix == "" {
		return errors.New("placeholder prefix cannot be empty")
	}

	if c.PlaceholderSuffix == "" {
		return errors.New("placeholder suffix cannot be empty")
	}

	return nil
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent modification
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// Update logger based on new config (outside the lock to avoid deadlock)
	UpdateLoggerFromConfig()
}

// parseBool parses a boolean value from a string
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
