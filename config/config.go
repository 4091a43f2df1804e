package config

import (
	"fmt"
	"os"

	"github.com/hucmaggie/shipping-quote-by-zip-api/internal/models"
)

// Config holds the deployment configuration, read from environment variables.
type Config struct {
	PORT string

	// ORIGIN_ZIP is the default origin when a request omits origin_zip.
	ORIGIN_ZIP string

	// ZIP_LOOKUP_MODE is "strict" (unknown ZIPs are rejected) or "fallback"
	// (unknown ZIPs resolve to a first-digit regional approximation).
	ZIP_LOOKUP_MODE string

	// RESPONSE_DETAIL is "total", "numeric" or "formatted".
	RESPONSE_DETAIL string

	// PostgreSQL ZIP table. The in-memory table is used when DB_HOST is empty.
	DB_USER     string
	DB_PASSWORD string
	DB_NAME     string
	DB_HOST     string
	DB_PORT     string

	// Kafka event publishing. Disabled when KAFKA_BROKER is empty.
	KAFKA_TOPIC  string
	KAFKA_BROKER string
}

// LoadConfig returns a Config struct, reading environment variables and
// applying defaults where they are unset.
func LoadConfig() *Config {
	cfg := &Config{
		PORT:            os.Getenv("PORT"),
		ORIGIN_ZIP:      os.Getenv("ORIGIN_ZIP"),
		ZIP_LOOKUP_MODE: os.Getenv("ZIP_LOOKUP_MODE"),
		RESPONSE_DETAIL: os.Getenv("RESPONSE_DETAIL"),

		DB_USER:     os.Getenv("DB_USER"),
		DB_PASSWORD: os.Getenv("DB_PASSWORD"),
		DB_HOST:     os.Getenv("DB_HOST"),
		DB_PORT:     os.Getenv("DB_PORT"),
		DB_NAME:     os.Getenv("DB_NAME"),

		KAFKA_TOPIC:  os.Getenv("KAFKA_TOPIC"),
		KAFKA_BROKER: os.Getenv("KAFKA_BROKER"),
	}

	if cfg.PORT == "" {
		cfg.PORT = "8000"
	}
	if cfg.ORIGIN_ZIP == "" {
		cfg.ORIGIN_ZIP = models.DefaultOriginZip
	}
	if cfg.ZIP_LOOKUP_MODE == "" {
		cfg.ZIP_LOOKUP_MODE = "strict"
	}
	if cfg.RESPONSE_DETAIL == "" {
		cfg.RESPONSE_DETAIL = "formatted"
	}
	if cfg.KAFKA_TOPIC == "" {
		cfg.KAFKA_TOPIC = "quote.generated"
	}
	return cfg
}

// UsePostgres reports whether a database-backed ZIP store is configured.
func (c *Config) UsePostgres() bool {
	return c.DB_HOST != ""
}

// GetDBURL formats the config into a PostgreSQL connection string.
func (c *Config) GetDBURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", c.DB_USER, c.DB_PASSWORD, c.DB_HOST, c.DB_PORT, c.DB_NAME)
}
