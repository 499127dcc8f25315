package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	Env               string
	LogLevel          string
	Endpoint          string
	FallbackEndpoint  string
	ServiceID         string
	Guide             string
	Timeout           time.Duration
	Retries           int
	RetryWait         time.Duration
	MessagesFile      string
	JWTSecret         string
	BreakerMaxRequest int
	BreakerTimeout    time.Duration
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		Port:              "8080",
		Env:               "local",
		LogLevel:          "info",
		Endpoint:          "http://achecker.ca/checkacc.php",
		Guide:             "WCAG2-AA",
		Timeout:           30 * time.Second,
		Retries:           3,
		RetryWait:         500 * time.Millisecond,
		BreakerMaxRequest: 3,
		BreakerTimeout:    30 * time.Second,
	}
}

// Load reads configuration from the environment. A .env file in the working
// directory, when present, seeds variables that are not already set.
func Load() *Config {
	_ = godotenv.Load()

	d := Defaults()

	return &Config{
		Port:              getEnv("PORT", d.Port),
		Env:               getEnv("ENV", d.Env),
		LogLevel:          getEnv("LOG_LEVEL", d.LogLevel),
		Endpoint:          getEnv("ACHECKER_ENDPOINT", d.Endpoint),
		FallbackEndpoint:  getEnv("ACHECKER_FALLBACK_ENDPOINT", ""),
		ServiceID:         getEnv("ACHECKER_ID", ""),
		Guide:             getEnv("ACHECKER_GUIDE", d.Guide),
		Timeout:           getEnvDuration("ACHECKER_TIMEOUT", d.Timeout),
		Retries:           getEnvInt("ACHECKER_RETRIES", d.Retries),
		RetryWait:         getEnvDuration("ACHECKER_RETRY_WAIT", d.RetryWait),
		MessagesFile:      getEnv("ACHECKER_MESSAGES_FILE", ""),
		JWTSecret:         getEnv("API_JWT_SECRET", ""),
		BreakerMaxRequest: getEnvInt("ACHECKER_BREAKER_MAX_REQUESTS", d.BreakerMaxRequest),
		BreakerTimeout:    getEnvDuration("ACHECKER_BREAKER_TIMEOUT", d.BreakerTimeout),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid env %s: %v", key, err)
	}
	return i
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid env %s: %v", key, err)
	}
	return d
}
