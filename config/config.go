package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultGeminiModel is the model used for plan generation and chat when GEMINI_MODEL is unset
const DefaultGeminiModel = "gemini-2.5-flash"

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort     string
	ServerHost     string
	AllowedOrigins []string

	// Database configuration
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Rate limiting for LLM-backed routes
	RateLimitPerHour int

	// JWT configuration
	JWTSecret string

	// Gemini configuration
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	// Plan archive bucket, empty disables archiving
	S3BucketName string
	AWSRegion    string
}

// LoadConfig creates a new Config instance with values from environment variables or secrets.
// A .env file in the working directory is loaded first when present.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	env := GetEnvironment()
	cfg := &Config{}

	switch env {
	case CI:
		loadFromEnv(cfg, os.Getenv)
	case Development, Test:
		loadFromEnv(cfg, lookup)
	case Production:
		loadFromEnv(cfg, readSecretOrEnv)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromEnv fills cfg using get for every key and applies defaults for anything left empty
func loadFromEnv(cfg *Config, get func(string) string) {
	cfg.ServerPort = withDefault(get("SERVER_PORT"), "8080")
	cfg.ServerHost = withDefault(get("SERVER_HOST"), "0.0.0.0")
	cfg.AllowedOrigins = splitList(get("CORS_ALLOWED_ORIGINS"))

	cfg.DBDriver = withDefault(get("DB_DRIVER"), "sqlite")
	cfg.DBPath = withDefault(get("DB_PATH"), "fitsync.db")
	cfg.DBHost = withDefault(get("DB_HOST"), "localhost")
	cfg.DBPort = withDefault(get("DB_PORT"), "5432")
	cfg.DBUser = withDefault(get("DB_USER"), "postgres")
	cfg.DBPassword = get("DB_PASSWORD")
	cfg.DBName = withDefault(get("DB_NAME"), "fitsync")
	cfg.DBSSLMode = withDefault(get("DB_SSL_MODE"), "disable")

	cfg.RedisHost = get("REDIS_HOST")
	cfg.RedisPort = withDefault(get("REDIS_PORT"), "6379")
	cfg.RedisPassword = get("REDIS_PASSWORD")
	cfg.RedisURL = get("REDIS_URL")
	cfg.RedisDB = atoiDefault(get("REDIS_DB"), 0)
	cfg.RateLimitPerHour = atoiDefault(get("RATE_LIMIT_PER_HOUR"), 30)

	cfg.JWTSecret = get("JWT_SECRET")

	cfg.GeminiAPIKey = get("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		if path := os.Getenv("GEMINI_API_KEY_FILE"); path != "" {
			if data, err := os.ReadFile(path); err == nil {
				cfg.GeminiAPIKey = strings.TrimSpace(string(data))
			} else {
				log.Printf("Failed to read GEMINI_API_KEY_FILE %s: %v", path, err)
			}
		}
	}
	cfg.GeminiModel = withDefault(get("GEMINI_MODEL"), DefaultGeminiModel)
	cfg.GeminiBaseURL = get("GEMINI_BASE_URL")

	cfg.S3BucketName = get("S3_BUCKET_NAME")
	cfg.AWSRegion = get("AWS_REGION")
}

// RedisEnabled reports whether a Redis server was configured
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// ArchiveEnabled reports whether generated plans should be archived to S3
func (c *Config) ArchiveEnabled() bool {
	return c.S3BucketName != ""
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// splitList parses a comma-separated list, dropping empty entries
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// lookup prefers the environment and falls back to a Docker secret of the same name in lower case
func lookup(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return readSecret(strings.ToLower(key))
}

// readSecretOrEnv prefers the Docker secret and falls back to the environment
func readSecretOrEnv(key string) string {
	if v := readSecret(strings.ToLower(key)); v != "" {
		return v
	}
	return os.Getenv(key)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
