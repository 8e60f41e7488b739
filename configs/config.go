package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver        string
	DBSource        string
	Port            string
	JWTSecret       string
	JWTTTL          time.Duration
	SessionCapacity int
	LogLevel        string
	GinMode         string
	CORSOrigins     []string
	EnvFileLoaded   bool
}

// LoadConfig reads .env when present and falls back to defaults for
// anything unset.
func LoadConfig() (*Config, error) {
	loaded := godotenv.Load() == nil

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("JWT_TTL: %w", err)
	}
	capacity, err := strconv.Atoi(getEnv("SESSION_CAPACITY", "1024"))
	if err != nil || capacity <= 0 {
		return nil, fmt.Errorf("SESSION_CAPACITY must be a positive integer")
	}

	return &Config{
		DBDriver:        getEnv("DB_DRIVER", "sqlite"),
		DBSource:        getEnv("DB_SOURCE", "file::memory:?cache=shared"),
		Port:            getEnv("PORT", "8000"),
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		JWTTTL:          ttl,
		SessionCapacity: capacity,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		GinMode:         getEnv("GIN_MODE", "release"),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "*")),
		EnvFileLoaded:   loaded,
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
