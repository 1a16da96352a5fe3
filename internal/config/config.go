package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// Token modes accepted by AUTH_TOKEN_MODE.
const (
	TokenModeUsername = "username"
	TokenModeJWT      = "jwt"
)

type Config struct {
	AppName string
	Env     string
	Port    string
	GinMode string

	LogLevel string

	// Database
	DBDriver   string // sqlite, mysql, postgres
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Auth
	SessionSecret string
	TokenMode     string
	JWTSecret     string
	TokenTTL      time.Duration

	// Currency
	RateAPIURL string

	// CORS
	CORSAllowedOrigins string
}

func Load() *Config {
	return &Config{
		AppName: getEnv("APP_NAME", "darth-vader-api"),
		Env:     getEnv("APP_ENV", "development"),
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		LogLevel: getEnv("LOG_LEVEL", ""),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBPath:     getEnv("DB_PATH", "./yapilacaklar.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "taskuser"),
		DBPassword: getEnv("DB_PASSWORD", "taskpassword"),
		DBName:     getEnv("DB_NAME", "yapilacaklar"),

		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		TokenMode:     strings.ToLower(getEnv("AUTH_TOKEN_MODE", TokenModeUsername)),
		JWTSecret:     getEnv("JWT_SECRET", "dev-jwt-secret-change-me"),
		TokenTTL:      getDuration("TOKEN_TTL", 24*time.Hour),

		RateAPIURL: getEnv("RATE_API_URL", "https://api.frankfurter.app/latest?from=EUR&to=TRY"),

		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("invalid duration for %s: %v, using default %v", key, err, defaultValue)
		return defaultValue
	}
	return d
}
