package config

import (
	"os"
	"strconv"
	"time"
)

// Config is built once at startup and passed into constructors. Nothing
// reads the environment after this.
type Config struct {
	ListenAddr          string
	BackendBaseURL      string
	GatewayKeyID        string
	GatewayScriptURL    string
	EventName           string
	ApprovedEmailDomain string
	RequestTimeout      time.Duration
	SessionTTL          time.Duration
	RedisAddr           string
}

func FromEnv() Config {
	cfg := Config{
		ListenAddr:          getenv("LISTEN_ADDR", ":8080"),
		BackendBaseURL:      getenv("BACKEND_BASE_URL", "https://mrd2025.netlify.app"),
		GatewayKeyID:        getenv("GATEWAY_KEY_ID", ""),
		GatewayScriptURL:    getenv("GATEWAY_SCRIPT_URL", "https://checkout.razorpay.com/v1/checkout.js"),
		EventName:           getenv("EVENT_NAME", "Malang Ras Dandiya 2025"),
		ApprovedEmailDomain: getenv("APPROVED_EMAIL_DOMAIN", "gmail.com"),
		RequestTimeout:      getduration("REQUEST_TIMEOUT_SECONDS", 30*time.Second),
		SessionTTL:          getduration("SESSION_TTL_SECONDS", 30*time.Minute),
	}

	redisHost := os.Getenv("REDIS_HOST")
	if redisHost != "" {
		cfg.RedisAddr = redisHost + ":" + getenv("REDIS_PORT", "6379")
	}

	return cfg
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	return value
}

func getduration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return fallback
	}

	return time.Duration(seconds) * time.Second
}
