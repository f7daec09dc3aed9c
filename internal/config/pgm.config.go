package config

import (
	"os"
	"strconv"
)

type AppConfig struct {
	HTTPAddr  string
	RedisAddr string
	RedisPass string

	CronSecret string
	RateLimit  int64

	StripeAPIURL    string
	StripeSecretKey string

	StorageBucket    string
	StorageRegion    string
	StorageEndpoint  string
	StorageBaseURL   string
	StoragePathStyle bool
}

func Load() AppConfig {
	return AppConfig{
		HTTPAddr:  getEnv("HTTP_ADDR", ":8004"),
		RedisAddr: getEnv("REDIS_ADDR", "redis:6379"),
		RedisPass: getEnv("REDIS_PASS", ""),

		CronSecret: getEnv("CRON_SECRET", ""),
		RateLimit:  getEnvAsInt64("WORKSPACE_RATE_LIMIT", 100),

		StripeAPIURL:    getEnv("STRIPE_API_URL", ""),
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),

		StorageBucket:    getEnv("STORAGE_BUCKET", ""),
		StorageRegion:    getEnv("STORAGE_REGION", "auto"),
		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", ""),
		StorageBaseURL:   getEnv("STORAGE_BASE_URL", ""),
		StoragePathStyle: getEnv("STORAGE_PATH_STYLE", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}
