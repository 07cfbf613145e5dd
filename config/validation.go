package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingAPIKey is returned when no Gemini API key could be found
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY not found. Please set it in your .env file")

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	if cfg.GeminiAPIKey == "" {
		return ErrMissingAPIKey
	}

	env := GetEnvironment()
	var problems []string

	switch cfg.DBDriver {
	case "sqlite":
		if env == Production {
			problems = append(problems, ValidationError{"DB_DRIVER", "sqlite is not allowed in production"}.Error())
		}
	case "postgres":
		if cfg.DBPassword == "" && (env == Production || env == CI) {
			problems = append(problems, ValidationError{"DB_PASSWORD", "required for postgres"}.Error())
		}
	default:
		problems = append(problems, ValidationError{"DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver)}.Error())
	}

	if cfg.JWTSecret == "" {
		if env == Production || env == CI {
			problems = append(problems, ValidationError{"JWT_SECRET", "required"}.Error())
		} else {
			cfg.JWTSecret = "dev-secret-change-me"
		}
	}

	if cfg.RateLimitPerHour <= 0 {
		problems = append(problems, ValidationError{"RATE_LIMIT_PER_HOUR", "must be positive"}.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(problems, "\n"))
	}

	return nil
}
