// Package config handles application configuration loading from environment
// variables. A .env file in the working directory is read first when present.
package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// placeholder is the default for secrets that must be replaced in production.
const placeholder = "changeme"

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host    string `env:"APP_HOST" envDefault:"0.0.0.0"`
	Port    string `env:"APP_PORT" envDefault:"8080"`
	Env     string `env:"APP_ENV" envDefault:"development"` // "development", "production", "testing"
	SiteURL string `env:"SITE_URL" envDefault:"http://localhost:8080"`

	// PostgreSQL connection
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"birmesajmutluluk"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"changeme"`
	DBName     string `env:"DB_NAME" envDefault:"birmesajmutluluk"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// Valkey (Redis-compatible cache)
	ValkeyHost     string `env:"VALKEY_HOST" envDefault:"localhost"`
	ValkeyPort     string `env:"VALKEY_PORT" envDefault:"6379"`
	ValkeyPassword string `env:"VALKEY_PASSWORD"`
	ValkeyDB       int    `env:"VALKEY_DB" envDefault:"0"`

	// Email (Resend)
	ResendAPIKey string `env:"RESEND_API_KEY"`
	EmailFrom    string `env:"EMAIL_FROM" envDefault:"Bir Mesaj Mutluluk <noreply@birmesajmutluluk.com>"`
	EmailReplyTo string `env:"EMAIL_REPLY_TO"`

	// S3-compatible object storage for share images
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Bucket    string `env:"S3_BUCKET"`
	S3PublicURL string `env:"S3_PUBLIC_URL"`

	// AI providers. AIProvider picks the one used for generation.
	AIProvider     string `env:"AI_PROVIDER" envDefault:"openai"`
	OpenAIKey      string `env:"OPENAI_API_KEY"`
	OpenAIModel    string `env:"OPENAI_MODEL"`
	OpenAIBaseURL  string `env:"OPENAI_BASE_URL"`
	GeminiKey      string `env:"GEMINI_API_KEY"`
	GeminiModel    string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	GeminiBaseURL  string `env:"GEMINI_BASE_URL"`
	ClaudeKey      string `env:"CLAUDE_API_KEY"`
	ClaudeModel    string `env:"CLAUDE_MODEL" envDefault:"claude-sonnet-4-5"`
	ClaudeBaseURL  string `env:"CLAUDE_BASE_URL"`
	MistralKey     string `env:"MISTRAL_API_KEY"`
	MistralModel   string `env:"MISTRAL_MODEL"`
	MistralBaseURL string `env:"MISTRAL_BASE_URL"`

	// PayTR
	PayTRMerchantID   string `env:"PAYTR_MERCHANT_ID"`
	PayTRMerchantKey  string `env:"PAYTR_MERCHANT_KEY"`
	PayTRMerchantSalt string `env:"PAYTR_MERCHANT_SALT"`
	PayTRTestMode     bool   `env:"PAYTR_TEST_MODE" envDefault:"true"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// First administrator, created when the users table is empty.
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@birmesajmutluluk.com"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"changeme"`

	// Requests per minute per client IP. Zero disables the limiter.
	APIRateLimit  int `env:"API_RATE_LIMIT" envDefault:"60"`
	PageRateLimit int `env:"PAGE_RATE_LIMIT" envDefault:"120"`

	PreviewTTL           time.Duration `env:"PREVIEW_CACHE_TTL" envDefault:"10m"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"5m"`
}

// Load reads configuration from the environment, applying development
// defaults. Returns an error if a placeholder secret is left in production.
func Load() (*Config, error) {
	// A missing .env file is the normal case outside development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")
	cfg.CORSAllowedOrigins = trimAll(cfg.CORSAllowedOrigins)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIRateLimit < 0 || c.PageRateLimit < 0 {
		return errors.New("rate limits must not be negative")
	}
	if c.HousekeepingInterval <= 0 {
		return errors.New("HOUSEKEEPING_INTERVAL must be positive")
	}
	if !c.IsProduction() {
		return nil
	}
	if c.DBPassword == placeholder {
		return errors.New("DB_PASSWORD must be set in production")
	}
	if c.AdminPassword == placeholder {
		return errors.New("ADMIN_PASSWORD must be set in production")
	}
	if !strings.HasPrefix(c.SiteURL, "https://") {
		return fmt.Errorf("SITE_URL must use https in production, got %q", c.SiteURL)
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, net.JoinHostPort(c.DBHost, c.DBPort), c.DBName, c.DBSSLMode,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// URL returns path as an absolute URL under SiteURL.
func (c *Config) URL(path string) string {
	return c.SiteURL + path
}

func trimAll(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
