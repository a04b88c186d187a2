package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            string
	Env             string
	DatabaseDSN     string
	JWTSecret       string
	JWTExpiry       time.Duration
	UploadDir       string
	MaxUploadBytes  int64
	LoginRateLimit  int
	UploadRateLimit int
	RateLimitWindow time.Duration
}

func Load() Config {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		DatabaseDSN:     getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/reelstream?parseTime=true"),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		JWTExpiry:       time.Hour,
		UploadDir:       getEnv("UPLOAD_DIR", "uploads/reels"),
		MaxUploadBytes:  int64(getEnvInt("MAX_UPLOAD_MB", 50)) << 20,
		LoginRateLimit:  getEnvInt("LOGIN_RATE_LIMIT", 10),
		UploadRateLimit: getEnvInt("UPLOAD_RATE_LIMIT", 20),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		slog.Warn("invalid duration in environment, using default", "key", key, "value", v)
	}
	return fallback
}
