package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port            string
	Debug           bool
	LogJSON         bool
	ShutdownTimeout time.Duration

	// Skill vocabulary and course catalog; empty uses the embedded default
	SkillsFile string

	// Uploads
	UploadDir        string
	UploadBucket     string
	MaxUploadMB      int
	UploadRatePerSec float64
	UploadBurst      int

	// Resume decoding
	ParseWorkers int

	// Google Cloud
	ProjectID       string
	Location        string
	CredentialsFile string

	// Entity recognition through Gemini
	EntityRecognition bool
	GeminiModel       string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port:            getEnv("PORT", "8000"),
		Debug:           getEnvBool("DEBUG", false),
		LogJSON:         getEnvBool("LOG_JSON", false),
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 30)) * time.Second,

		SkillsFile: getEnv("SKILLS_FILE", ""),

		// Uploads
		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),
		UploadBucket:     getEnv("UPLOAD_BUCKET", ""),
		MaxUploadMB:      getEnvInt("MAX_UPLOAD_MB", 10),
		UploadRatePerSec: getEnvFloat("UPLOAD_RATE_PER_SEC", 5),
		UploadBurst:      getEnvInt("UPLOAD_BURST", 10),

		ParseWorkers: getEnvInt("PARSE_WORKERS", 4),

		// Google Cloud
		ProjectID:       getEnv("PROJECT_ID", ""),
		Location:        getEnv("LOCATION", "us-central1"),
		CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", ""),

		EntityRecognition: getEnvBool("ENTITY_RECOGNITION", false),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
	}

	return cfg
}

// MaxUploadBytes is the largest accepted resume upload.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.Port == "" {
		return &ConfigError{Field: "PORT", Message: "PORT must not be empty"}
	}
	if c.MaxUploadMB <= 0 {
		return &ConfigError{Field: "MAX_UPLOAD_MB", Message: "MAX_UPLOAD_MB must be positive"}
	}
	if c.ParseWorkers <= 0 {
		return &ConfigError{Field: "PARSE_WORKERS", Message: "PARSE_WORKERS must be positive"}
	}
	if c.UploadRatePerSec <= 0 || c.UploadBurst <= 0 {
		return &ConfigError{Field: "UPLOAD_RATE_PER_SEC", Message: "upload rate and burst must be positive"}
	}

	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
