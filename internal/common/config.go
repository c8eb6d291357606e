package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	DocAI    DocAIConfig
	OCR      OCRConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr string
}

// DatabaseConfig holds expense store configuration
type DatabaseConfig struct {
	DSN         string
	DialTimeout time.Duration
}

// DocAIConfig holds the cloud document-understanding configuration.
// An empty APIKey disables the cloud backend entirely.
type DocAIConfig struct {
	APIKey       string
	ModelID      string
	BaseURL      string
	InitialDelay time.Duration
	PollInterval time.Duration
	MaxPolls     int
	Timeout      time.Duration
	Debug        bool
}

// OCRConfig holds local text-recognition configuration
type OCRConfig struct {
	Tesseract   string
	Lang        string
	TessdataDir string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: getEnv("HTTP_ADDR", ":4000"),
		},
		Database: DatabaseConfig{
			DSN:         getEnv("DB_URL", "smartreceipt.db"),
			DialTimeout: getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		DocAI: DocAIConfig{
			APIKey:       getEnv("DOCAI_API_KEY", ""),
			ModelID:      getEnv("DOCAI_MODEL_ID", ""),
			BaseURL:      getEnv("DOCAI_BASE_URL", ""),
			InitialDelay: getEnvAsDuration("DOCAI_INITIAL_DELAY", time.Second),
			PollInterval: getEnvAsDuration("DOCAI_POLL_INTERVAL", time.Second),
			MaxPolls:     getEnvAsInt("DOCAI_MAX_POLLS", 20),
			Timeout:      getEnvAsDuration("DOCAI_TIMEOUT", 30*time.Second),
			Debug:        getEnv("DOCAI_DEBUG", "") != "",
		},
		OCR: OCRConfig{
			Tesseract:   getEnv("TESSERACT_BIN", "tesseract"),
			Lang:        getEnv("TESSERACT_LANG", "eng"),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration. A configured cloud
// backend without a model ID is the one misconfiguration worth
// failing fast on; everything else has workable defaults.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.DocAI.APIKey != "" && c.DocAI.ModelID == "" {
		return NewAppError("CONFIG_ERROR", "DOCAI_MODEL_ID is required when DOCAI_API_KEY is set", ErrInvalidInput)
	}
	return nil
}
