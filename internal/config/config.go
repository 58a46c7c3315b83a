package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const devJWTSecret = "hbnb-development-secret"

type Config struct {
	Port               string
	Env                string // development, production, test
	LogLevel           string
	BaseURL            string // Backend base URL
	FrontendURL        string // Frontend base URL (target of place QR codes)
	RedisURL           string // empty disables the token denylist
	JWTSecret          string  // Secret key for JWT token signing
	JWTTTL             int     // JWT token expiration time in hours
	RateLimitRPS       float64 // Rate limit for general API endpoints (requests per second)
	RateLimitBurst     int     // Burst size for rate limiting
	RateLimitAuthRPS   float64 // Rate limit for auth endpoints (stricter)
	RateLimitAuthBurst int     // Burst size for auth endpoints
	AllowedOrigins     []string
}

func Load() *Config {
	// .env is optional
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables or defaults")
	}

	baseURL := getEnv("BASE_URL", "http://localhost:8080")
	env := getEnv("APP_ENV", "development")

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" && env != "production" {
		jwtSecret = devJWTSecret
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                env,
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		BaseURL:            baseURL,
		FrontendURL:        getEnv("FRONTEND_URL", baseURL),
		RedisURL:           getEnv("REDIS_URL", ""),
		JWTSecret:          jwtSecret,
		JWTTTL:             getEnvInt("JWT_TTL_HOURS", 24),
		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),
		RateLimitAuthRPS:   getEnvFloat("RATE_LIMIT_AUTH_RPS", 5),
		RateLimitAuthBurst: getEnvInt("RATE_LIMIT_AUTH_BURST", 10),
		AllowedOrigins:     getEnvList("ALLOWED_ORIGINS", []string{"*"}),
	}
}

// Validate reports the first setting that would keep the server from starting
func (c *Config) Validate() error {
	switch {
	case c.Port == "":
		return errors.New("PORT must not be empty")
	case c.JWTSecret == "":
		return errors.New("JWT_SECRET is required in production")
	case c.JWTTTL <= 0:
		return errors.New("JWT_TTL_HOURS must be positive")
	case c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0:
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	case c.RateLimitAuthRPS <= 0 || c.RateLimitAuthBurst <= 0:
		return errors.New("RATE_LIMIT_AUTH_RPS and RATE_LIMIT_AUTH_BURST must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated value, dropping empty entries
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
