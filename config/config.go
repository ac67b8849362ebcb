package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	Debug       bool
	LogJSON     bool
	CORSOrigins []string

	// External scraper
	ScraperURL            string
	ScraperTimeoutSeconds int
	ScraperRatePerSecond  float64
	PlainSites            []string
	RecommendSites        []string

	// Orchestration
	MaxConcurrentTerms  int
	MaxConcurrentScores int

	// Scrape cache
	RedisURL        string
	CacheTTLMinutes int

	// Google Cloud
	ProjectID string
	Location  string

	// Gemini Model
	GeminiModel string

	// Authentication
	JWTSecret      string
	JWTExpiryHours int
	GoogleClientID string

	// Cloud Storage
	ResultsBucket string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Debug:       getEnvBool("DEBUG", false),
		LogJSON:     getEnvBool("LOG_JSON", false),
		CORSOrigins: getEnvList("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),

		// External scraper
		ScraperURL:            getEnv("SCRAPER_URL", "http://127.0.0.1:8000"),
		ScraperTimeoutSeconds: getEnvInt("SCRAPER_TIMEOUT_SECONDS", 120),
		ScraperRatePerSecond:  getEnvFloat("SCRAPER_RATE_PER_SECOND", 2),
		PlainSites:            getEnvList("PLAIN_SITES", "indeed,linkedin,zip_recruiter,google,bayt"),
		RecommendSites:        getEnvList("RECOMMEND_SITES", "indeed,linkedin,glassdoor,google"),

		// Orchestration
		MaxConcurrentTerms:  getEnvInt("MAX_CONCURRENT_TERMS", 4),
		MaxConcurrentScores: getEnvInt("MAX_CONCURRENT_SCORES", 8),

		// Scrape cache
		RedisURL:        getEnv("REDIS_URL", ""),
		CacheTTLMinutes: getEnvInt("CACHE_TTL_MINUTES", 15),

		// Google Cloud
		ProjectID: getEnv("PROJECT_ID", ""),
		Location:  getEnv("LOCATION", "us-central1"),

		// Gemini Model
		GeminiModel: getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		// Authentication
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),

		// Cloud Storage
		ResultsBucket: getEnv("RESULTS_BUCKET", ""),
	}

	return cfg
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.ScraperURL == "" {
		return &ConfigError{Field: "SCRAPER_URL", Message: "SCRAPER_URL is required to reach the job scraper"}
	}
	if c.ScraperTimeoutSeconds <= 0 {
		return &ConfigError{Field: "SCRAPER_TIMEOUT_SECONDS", Message: "SCRAPER_TIMEOUT_SECONDS must be positive"}
	}
	if c.ScraperRatePerSecond <= 0 {
		return &ConfigError{Field: "SCRAPER_RATE_PER_SECOND", Message: "SCRAPER_RATE_PER_SECOND must be positive"}
	}
	if len(c.PlainSites) == 0 {
		return &ConfigError{Field: "PLAIN_SITES", Message: "PLAIN_SITES must name at least one site"}
	}
	if len(c.RecommendSites) == 0 {
		return &ConfigError{Field: "RECOMMEND_SITES", Message: "RECOMMEND_SITES must name at least one site"}
	}
	if c.MaxConcurrentTerms < 1 {
		return &ConfigError{Field: "MAX_CONCURRENT_TERMS", Message: "MAX_CONCURRENT_TERMS must be at least 1"}
	}
	if c.MaxConcurrentScores < 1 {
		return &ConfigError{Field: "MAX_CONCURRENT_SCORES", Message: "MAX_CONCURRENT_SCORES must be at least 1"}
	}
	if c.ResultsBucket != "" && c.ProjectID == "" {
		return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required when RESULTS_BUCKET is set"}
	}

	return nil
}

// CloudEnabled reports whether Google Cloud integrations should be started.
func (c *Config) CloudEnabled() bool {
	return c.ProjectID != ""
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

// getEnvList splits a comma-separated variable, dropping blank entries.
func getEnvList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
