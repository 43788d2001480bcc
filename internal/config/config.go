package config

import (
	"os"
	"strconv"
	"time"
)

// Config, vitrin uygulamasının ortam değişkenlerinden okunan ayarlarıdır.
type Config struct {
	HTTPPort     string
	StoreBackend string // memory | file | redis
	DataPath     string
	RedisAddr    string
	// SessionSecret, hatırlanan oturum token'ının imza anahtarıdır.
	SessionSecret string

	LoginDelay     time.Duration
	PurchaseDelay  time.Duration
	PlanDelay      time.Duration
	NotifyTTL      time.Duration
	CelebrationTTL time.Duration
}

// NewConfig, ortam değişkenlerini varsayılanlarla okur.
func NewConfig() *Config {
	return &Config{
		HTTPPort:      getEnv("PORT", "8082"),
		StoreBackend:  getEnv("STORE_BACKEND", "file"),
		DataPath:      getEnv("DATA_PATH", "./data.json"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		SessionSecret: getEnv("SESSION_SECRET", "techconnect-demo-secret"),

		LoginDelay:     getEnvDuration("LOGIN_DELAY_MS", 1500),
		PurchaseDelay:  getEnvDuration("PURCHASE_DELAY_MS", 2000),
		PlanDelay:      getEnvDuration("PLAN_DELAY_MS", 1500),
		NotifyTTL:      getEnvDuration("NOTIFY_TTL_MS", 5000),
		CelebrationTTL: getEnvDuration("CELEBRATION_TTL_MS", 5000),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallbackMs int) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if ms, err := strconv.Atoi(value); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(fallbackMs) * time.Millisecond
}
