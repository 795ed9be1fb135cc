package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the terminal reads from the environment.
type Config struct {
	Port           string
	BackendBaseURL string
	RequestTimeout time.Duration

	// Receipt identity
	StoreName       string
	LogoURL         string
	InstagramHandle string
	InstagramURL    string
	PrintCommand    string

	RefreshSpec string
	LogLevel    string
}

// Load reads the configuration from the environment with sensible defaults
// for a single-register setup.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		BackendBaseURL:  getEnv("BACKEND_BASE_URL", "http://localhost:5222/api"),
		RequestTimeout:  getDuration("REQUEST_TIMEOUT_SECONDS", 10*time.Second),
		StoreName:       getEnv("STORE_NAME", "Çakmak Fast&Food"),
		LogoURL:         getEnv("LOGO_URL", ""),
		InstagramHandle: getEnv("INSTAGRAM_HANDLE", "@cakmakfastfood"),
		InstagramURL:    getEnv("INSTAGRAM_URL", "https://instagram.com/cakmakfastfood"),
		PrintCommand:    getEnv("PRINT_COMMAND", "lp"),
		RefreshSpec:     getEnv("REFRESH_SPEC", "@every 30s"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
