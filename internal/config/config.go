// Package config provides configuration loading and validation for the job board server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Defaults applied when no source sets a value.
const (
	DefaultPort          = 8080
	DefaultOracleTimeout = 60 * time.Second
	DefaultAckDelay      = 500 * time.Millisecond
	DefaultGatewayURL    = "http://localhost:8080"
)

// Duration is a time.Duration that reads as a Go duration string ("30s") in JSON.
type Duration time.Duration

// UnmarshalJSON accepts a duration string or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid duration %s", string(data))
	}
	*d = Duration(n)
	return nil
}

// MarshalJSON writes the duration string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Config represents the job board configuration.
// All fields are optional; missing values come from the environment or defaults.
type Config struct {
	Port          int       `json:"port,omitempty"`           // HTTP listen port
	APIKey        string    `json:"api_key,omitempty"`        // Gemini API key
	Model         string    `json:"model,omitempty"`          // Override for the standard-tier model
	RedisURL      string    `json:"redis_url,omitempty"`      // Queue submissions on Redis when set
	OracleTimeout Duration  `json:"oracle_timeout,omitempty"` // Budget for one oracle call
	AckDelay      *Duration `json:"ack_delay,omitempty"`      // Pause before acknowledging a submission
	GatewayURL    string    `json:"gateway_url,omitempty"`    // Gateway base URL used by CLI commands
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	ack := Duration(DefaultAckDelay)
	return Config{
		Port:          DefaultPort,
		OracleTimeout: Duration(DefaultOracleTimeout),
		AckDelay:      &ack,
		GatewayURL:    DefaultGatewayURL,
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

// FromEnv reads configuration from environment variables.
// API_KEY takes precedence over GEMINI_API_KEY.
func FromEnv() (*Config, error) {
	cfg := &Config{
		APIKey:     firstEnv("API_KEY", "GEMINI_API_KEY"),
		Model:      os.Getenv("GEMINI_MODEL"),
		RedisURL:   os.Getenv("REDIS_URL"),
		GatewayURL: os.Getenv("JOBBOARD_GATEWAY_URL"),
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config error: PORT must be an integer: %w", err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("ORACLE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("config error: ORACLE_TIMEOUT: %w", err)
		}
		cfg.OracleTimeout = Duration(d)
	}

	if v := os.Getenv("ACK_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("config error: ACK_DELAY: %w", err)
		}
		ack := Duration(d)
		cfg.AckDelay = &ack
	}

	return cfg, nil
}

// Load resolves the effective configuration: the JSON file at path (if any)
// over the environment over Defaults.
func Load(path string) (*Config, error) {
	env, err := FromEnv()
	if err != nil {
		return nil, err
	}

	cfg := env.MergeWithDefaults(Defaults())
	if path != "" {
		file, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = file.MergeWithDefaults(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// A missing API key is not an error here; the gateway reports it per request.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.OracleTimeout < 0 {
		return fmt.Errorf("config error: 'oracle_timeout' must be non-negative")
	}
	if c.AckDelay != nil && *c.AckDelay < 0 {
		return fmt.Errorf("config error: 'ack_delay' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.OracleTimeout == 0 {
		result.OracleTimeout = defaults.OracleTimeout
	}
	if result.AckDelay == nil {
		result.AckDelay = defaults.AckDelay
	}
	if result.GatewayURL == "" {
		result.GatewayURL = defaults.GatewayURL
	}

	return result
}

// OracleTimeoutDuration returns the oracle budget as a time.Duration.
func (c *Config) OracleTimeoutDuration() time.Duration {
	return time.Duration(c.OracleTimeout)
}

// AckDelayDuration returns the acknowledgment delay, zero when unset.
func (c *Config) AckDelayDuration() time.Duration {
	if c.AckDelay == nil {
		return 0
	}
	return time.Duration(*c.AckDelay)
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
