package cli

import (
	"os"

	"github.com/divin-k/guessquest/internal/factory"
)

// Config holds CLI configuration
type Config struct {
	StorageType string
	RedisURL    string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		StorageType: getEnvOrDefault("GUESSQUEST_STORAGE", factory.StorageTypeMemory),
		RedisURL:    getEnvOrDefault("REDIS_URL", "redis://localhost:6379"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
