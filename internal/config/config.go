package config

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultAPIBaseURL is the remote customer API used when API_BASE_URL is
// not set.
const DefaultAPIBaseURL = "https://customercrudbackend-1.onrender.com/api"

// Config holds all application configuration.
type Config struct {
	APIBaseURL string
	Port       string
	PerPage    int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	perPage, err := strconv.Atoi(getEnv("PER_PAGE", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid PER_PAGE: %w", err)
	}
	if perPage < 1 {
		return nil, fmt.Errorf("invalid PER_PAGE: must be positive")
	}

	return &Config{
		APIBaseURL: getEnv("API_BASE_URL", DefaultAPIBaseURL),
		Port:       getEnv("PORT", "3000"),
		PerPage:    perPage,
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
