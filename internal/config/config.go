package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"fattureincloud-mcp/internal/fic"
	"fattureincloud-mcp/internal/logger"
)

// Config is read once at startup and handed to the components that need it.
type Config struct {
	// Fatture in Cloud API
	AccessToken    string
	CompanyID      int64
	APIBaseURL     string
	TimeoutSeconds int

	// SenderEmail is the "from" address of send_email; optional.
	SenderEmail string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	companyID, err := getInt64("FIC_COMPANY_ID", 0)
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	timeout, err := getInt64("FIC_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	config := &Config{
		AccessToken:    getEnv("FIC_ACCESS_TOKEN", ""),
		CompanyID:      companyID,
		APIBaseURL:     getEnv("FIC_API_BASE_URL", fic.DefaultBaseURL),
		TimeoutSeconds: int(timeout),
		SenderEmail:    getEnv("FIC_SENDER_EMAIL", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:  getEnv("LOG_TIME_FORMAT", time.RFC3339),
		LogOutput:      getEnv("LOG_OUTPUT", "stderr"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.AccessToken == "" {
		return fmt.Errorf("FIC_ACCESS_TOKEN is required")
	}
	if c.CompanyID <= 0 {
		return fmt.Errorf("FIC_COMPANY_ID is required and must be a positive integer")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("FIC_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

// APIConfig returns the API client configuration.
func (c *Config) APIConfig() fic.Config {
	return fic.Config{
		BaseURL:     c.APIBaseURL,
		AccessToken: c.AccessToken,
		CompanyID:   c.CompanyID,
		Timeout:     time.Duration(c.TimeoutSeconds) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return n, nil
}
