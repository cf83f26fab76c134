package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds all configuration for the application
type Config struct {
	Port           string
	DatabaseURL    string
	Version        string
	LogLevel       string
	JWTSecret      string // Secret for signing access tokens
	JWTExpiryHours int    // Access token lifetime in hours
	OpenAIKey      string
	AIModel        string // Chat completion model used for generation and analysis
	OpenAITimeout  int    // OpenAI API timeout in seconds
	SendGridAPIKey string // SendGrid API key for sending outreach emails
	FromEmail      string // Sender address for outreach emails
	FromName       string // Sender display name for outreach emails
	StatsCacheTTL  int    // Dashboard stats cache TTL in minutes
}

// Load initializes and returns application configuration
func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Version:        getEnv("VERSION", "1.0.0"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		JWTSecret:      getEnv("JWT_SECRET", "jwt-secret-change-me"),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		AIModel:        getEnv("AI_MODEL", "gpt-4o"),
		OpenAITimeout:  getEnvInt("OPENAI_TIMEOUT", 60),
		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		FromEmail:      getEnv("DEFAULT_FROM_EMAIL", "faris@farisai.app"),
		FromName:       getEnv("DEFAULT_FROM_NAME", "Faris AI"),
		StatsCacheTTL:  getEnvInt("STATS_CACHE_TTL_MINUTES", 5),
	}

	return config
}

// getEnv gets an environment variable with a default fallback
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as integer with a default fallback
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// SetupLogger configures zerolog with JSON output and single-line format
func (c *Config) SetupLogger() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "faris").
		Str("version", c.Version).
		Logger()

	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	return logger
}
