package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server configuration.
type Config struct {
	// Server
	Port      int `env:"MCP_PORT" envDefault:"8080"`
	TimeoutMS int `env:"TIMEOUT_MS" envDefault:"30000"`

	// Finnhub
	FinnhubAPIKey  string `env:"FINNHUB_API_KEY"`
	FinnhubBaseURL string `env:"FINNHUB_BASE_URL"`

	// Natural-language front end. Optional: when the API key is absent the
	// /ask endpoint reports itself unavailable.
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Optional Redis cache for raw upstream responses.
	RedisURL        string `env:"REDIS_URL"`
	RedisPassword   string `env:"REDIS_PASSWORD"`
	QuoteCacheTTLMS int    `env:"QUOTE_CACHE_TTL_MS" envDefault:"30000"`
	NewsCacheTTLMS  int    `env:"NEWS_CACHE_TTL_MS" envDefault:"600000"`

	// Observability
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Timeout returns the per-request timeout as a time.Duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// QuoteCacheTTL returns the quote cache TTL as a time.Duration.
func (c *Config) QuoteCacheTTL() time.Duration {
	return time.Duration(c.QuoteCacheTTLMS) * time.Millisecond
}

// NewsCacheTTL returns the news cache TTL as a time.Duration.
func (c *Config) NewsCacheTTL() time.Duration {
	return time.Duration(c.NewsCacheTTLMS) * time.Millisecond
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	if c.TimeoutMS < 1 {
		return fmt.Errorf("timeout must be at least 1ms, got %dms", c.TimeoutMS)
	}

	if c.FinnhubAPIKey == "" {
		return fmt.Errorf("FINNHUB_API_KEY environment variable is not set")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}
