// Package config provides configuration loading and validation for the server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Defaults applied by MergeWithDefaults.
const (
	DefaultPort           = 8080
	DefaultMaxUploadMB    = 10
	DefaultRateLimitRPM   = 10
	DefaultRateLimitBurst = 5
)

// RateLimit configures throttling of the scoring and CV upload endpoints.
type RateLimit struct {
	Enabled           bool     `json:"enabled,omitempty"`
	RequestsPerMinute int      `json:"requests_per_minute,omitempty"`
	Burst             int      `json:"burst,omitempty"`
	Whitelist         []string `json:"whitelist,omitempty"` // Client addresses never throttled
	Blacklist         []string `json:"blacklist,omitempty"` // Client addresses always rejected
}

// Config represents the service configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or environment overrides.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`
	MaxUploadMB int    `json:"max_upload_mb,omitempty"` // Largest accepted CV upload
	DatabaseURL string `json:"database_url,omitempty"`  // PostgreSQL connection URL; empty serves the embedded catalog
	CatalogPath string `json:"catalog_path,omitempty"`  // Catalog JSON file replacing the embedded catalog

	// Logging
	LogJSON bool `json:"log_json,omitempty"`
	Debug   bool `json:"debug,omitempty"`

	// Behavior
	IncludeExpiredDefault bool `json:"include_expired_default,omitempty"` // Show programs whose deadlines have passed
	DisablePDF            bool `json:"disable_pdf,omitempty"`
	DisableDOCX           bool `json:"disable_docx,omitempty"`

	RateLimit RateLimit `json:"rate_limit"`
}

// Default returns the configuration used when nothing else is provided.
func Default() Config {
	return Config{
		Port:        DefaultPort,
		MaxUploadMB: DefaultMaxUploadMB,
		RateLimit: RateLimit{
			Enabled:           true,
			RequestsPerMinute: DefaultRateLimitRPM,
			Burst:             DefaultRateLimitBurst,
		},
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Load builds the effective configuration: the optional JSON file at path,
// merged with Default, then environment overrides, then validation.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		// Without a file the rate limiter stays on unless the environment turns it off.
		cfg.RateLimit.Enabled = true
	}

	merged := cfg.MergeWithDefaults(Default())
	if err := merged.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxUploadMB < 0 {
		return fmt.Errorf("config error: 'max_upload_mb' must be non-negative")
	}
	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("config error: 'rate_limit.requests_per_minute' must be non-negative")
	}
	if c.RateLimit.Burst < 0 {
		return fmt.Errorf("config error: 'rate_limit.burst' must be non-negative")
	}

	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.CatalogPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.CatalogPath == "" {
		result.CatalogPath = defaults.CatalogPath
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxUploadMB == 0 {
		result.MaxUploadMB = defaults.MaxUploadMB
	}
	if result.RateLimit.RequestsPerMinute == 0 {
		result.RateLimit.RequestsPerMinute = defaults.RateLimit.RequestsPerMinute
	}
	if result.RateLimit.Burst == 0 {
		result.RateLimit.Burst = defaults.RateLimit.Burst
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (environment overrides win for bools)

	return result
}

// ApplyEnv overrides fields with values from the environment.
func (c *Config) ApplyEnv() error {
	var err error

	if c.Port, err = getEnvInt("PORT", c.Port); err != nil {
		return err
	}
	if c.MaxUploadMB, err = getEnvInt("MAX_UPLOAD_MB", c.MaxUploadMB); err != nil {
		return err
	}
	c.DatabaseURL = getEnvString("DATABASE_URL", c.DatabaseURL)
	c.CatalogPath = getEnvString("CATALOG_PATH", c.CatalogPath)

	if c.LogJSON, err = getEnvBool("LOG_JSON", c.LogJSON); err != nil {
		return err
	}
	if c.Debug, err = getEnvBool("DEBUG", c.Debug); err != nil {
		return err
	}
	if c.IncludeExpiredDefault, err = getEnvBool("INCLUDE_EXPIRED_DEFAULT", c.IncludeExpiredDefault); err != nil {
		return err
	}

	if c.RateLimit.Enabled, err = getEnvBool("RATE_LIMIT_ENABLED", c.RateLimit.Enabled); err != nil {
		return err
	}
	if c.RateLimit.RequestsPerMinute, err = getEnvInt("RATE_LIMIT_RPM", c.RateLimit.RequestsPerMinute); err != nil {
		return err
	}
	if c.RateLimit.Burst, err = getEnvInt("RATE_LIMIT_BURST", c.RateLimit.Burst); err != nil {
		return err
	}
	if list := os.Getenv("RATE_LIMIT_WHITELIST"); list != "" {
		c.RateLimit.Whitelist = splitList(list)
	}
	if list := os.Getenv("RATE_LIMIT_BLACKLIST"); list != "" {
		c.RateLimit.Blacklist = splitList(list)
	}

	return nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// MaxUploadBytes returns the upload limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func splitList(list string) []string {
	var items []string
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
