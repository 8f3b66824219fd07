package config

import (
	"os"
	"strings"

	"github.com/Conceptual-Machines/magda-theory/internal/validation"
)

// Config holds the application configuration.
// The service is stateless: catalogs are embedded and built at startup.
type Config struct {
	// Environment
	Environment string
	Port        string
	Debug       bool

	// Observability
	SentryDSN      string // Sentry DSN for error tracking
	MetricsEnabled bool   // CloudWatch metrics, only honoured in production

	// CORS
	AllowedOrigins []string
}

func Load() *Config {
	return &Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		Port:           getEnv("PORT", "8080"),
		Debug:          validation.ParseBooleanLike(getEnv("DEBUG", "false")),
		SentryDSN:      getEnv("SENTRY_DSN", ""),
		MetricsEnabled: validation.ParseBooleanLike(getEnv("METRICS_ENABLED", "true")),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
