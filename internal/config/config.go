package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bilgisen/dayboard/internal/models"
	"github.com/joho/godotenv"
)

// DefaultCacheTTL is applied whenever CACHE_TTL_SECONDS is absent or not a
// positive number.
const DefaultCacheTTL = 300 * time.Second

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port            string        `json:"port"`
	Env             string        `json:"env"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	HTTPTimeout     time.Duration `json:"http_timeout"`

	// Cache configuration
	CacheTTL time.Duration `json:"cache_ttl"`

	// News feeds, comma-separated URL lists per category
	NewsFeeds map[models.Category][]string `json:"news_feeds"`

	// Schedule sources. Both are optional; an empty value means the
	// corresponding fallback stage is skipped.
	GoogleCredentialsJSON string `json:"-"`
	GoogleCalendarID      string `json:"google_calendar_id"`
	CalendarICSURL        string `json:"calendar_ics_url"`

	// Logging
	LogLevel string `json:"log_level"`
}

// feedEnvKeys maps each news category to the environment variable holding
// its feed URL list.
var feedEnvKeys = map[models.Category]string{
	models.CategoryAI:      "AI_NEWS_FEEDS",
	models.CategoryEconomy: "ECONOMY_NEWS_FEEDS",
	models.CategoryIkehaya: "IKEHAYA_NEWS_FEEDS",
}

// Load loads configuration from environment variables
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	feeds := make(map[models.Category][]string, len(feedEnvKeys))
	for category, key := range feedEnvKeys {
		feeds[category] = splitFeedList(getEnv(key, ""))
	}

	return &Config{
		// Server configuration
		Port:            getEnv("PORT", "8787"),
		Env:             getEnv("APP_ENV", "development"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),

		// Cache configuration
		CacheTTL: cacheTTL(),

		// News feeds
		NewsFeeds: feeds,

		// Schedule sources
		GoogleCredentialsJSON: getEnv("GOOGLE_CREDENTIALS_JSON", ""),
		GoogleCalendarID:      getEnv("GOOGLE_CALENDAR_ID", ""),
		CalendarICSURL:        getEnv("CALENDAR_ICS_URL", ""),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// cacheTTL reads CACHE_TTL_SECONDS, coercing absent or non-positive values
// to the default. The cache itself never interprets TTLs.
func cacheTTL() time.Duration {
	seconds := getEnvAsInt("CACHE_TTL_SECONDS", 0)
	if seconds <= 0 {
		return DefaultCacheTTL
	}
	return time.Duration(seconds) * time.Second
}

// splitFeedList parses a comma-separated URL list, dropping empty entries.
func splitFeedList(raw string) []string {
	if raw == "" {
		return nil
	}
	var urls []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			urls = append(urls, part)
		}
	}
	return urls
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultVal int) int {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %d", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}
