// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "REVENUE"

// Config represents the complete application configuration
type Config struct {
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	API     APIConfig     `mapstructure:"api" yaml:"api"`
	CSV     CSVConfig     `mapstructure:"csv" yaml:"csv"`
	State   StateConfig   `mapstructure:"state" yaml:"state"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// APIConfig configures the revenue API client.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url" yaml:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	StaleSeconds   int    `mapstructure:"stale_seconds" yaml:"stale_seconds"`
	MaxRetries     int    `mapstructure:"max_retries" yaml:"max_retries"`
}

// CSVConfig configures CSV export.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// StateConfig locates the persisted filter criteria.
type StateConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// DisplayConfig controls how dates and lists are presented.
type DisplayConfig struct {
	Timezone string `mapstructure:"timezone" yaml:"timezone"`
	PageSize int    `mapstructure:"page_size" yaml:"page_size"`
	Currency string `mapstructure:"currency" yaml:"currency"`
}

// Timeout returns the API request timeout.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// StaleTime returns how long API responses are reused. Zero disables
// caching.
func (c APIConfig) StaleTime() time.Duration {
	if c.StaleSeconds == 0 {
		return -1
	}
	return time.Duration(c.StaleSeconds) * time.Second
}

// Location resolves the display timezone. "Local" and "" mean the system
// zone.
func (c DisplayConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// DelimiterRune returns the configured delimiter as a rune.
func (c CSVConfig) DelimiterRune() rune {
	r := []rune(c.Delimiter)
	if len(r) == 0 {
		return ','
	}
	return r[0]
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
// An explicit configFile must exist; otherwise config.yaml is looked up in
// $HOME/.revenue, .revenue and the working directory.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.revenue")
		v.AddConfigPath(".revenue")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("api.base_url", "https://fe-task-api.mainstack.io")
	v.SetDefault("api.timeout_seconds", 30)
	v.SetDefault("api.stale_seconds", 300)
	v.SetDefault("api.max_retries", 2)

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("state.file", "filter-state.yaml")

	v.SetDefault("display.timezone", "Local")
	v.SetDefault("display.page_size", 10)
	v.SetDefault("display.currency", "USD")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if !strings.HasPrefix(config.API.BaseURL, "http://") && !strings.HasPrefix(config.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must be an http(s) URL, got: %s", config.API.BaseURL)
	}

	if config.API.TimeoutSeconds < 1 || config.API.TimeoutSeconds > 300 {
		return fmt.Errorf("api.timeout_seconds must be between 1 and 300, got: %d", config.API.TimeoutSeconds)
	}

	if config.API.StaleSeconds < 0 {
		return fmt.Errorf("api.stale_seconds must not be negative, got: %d", config.API.StaleSeconds)
	}

	if config.API.MaxRetries < 0 || config.API.MaxRetries > 10 {
		return fmt.Errorf("api.max_retries must be between 0 and 10, got: %d", config.API.MaxRetries)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Display.PageSize < 1 || config.Display.PageSize > 100 {
		return fmt.Errorf("display.page_size must be between 1 and 100, got: %d", config.Display.PageSize)
	}

	if _, err := config.Display.Location(); err != nil {
		return fmt.Errorf("invalid display.timezone %q: %w", config.Display.Timezone, err)
	}

	return nil
}
