package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const stripePricePrefix = "STRIPE_PRICE_"

// Config holds all application configuration
type Config struct {
	Env  string
	Port string

	// Database
	DatabaseURL       string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	// Hosted auth
	SupabaseURL            string
	SupabaseJWTSecret      string
	SupabaseServiceRoleKey string

	// Billing
	StripeSecretKey string
	// plan slug -> price id, from STRIPE_PRICE_<SLUG>
	StripePrices map[string]string
	AppBaseURL   string

	// AI provider for house rules drafts
	AIProvider   string
	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	QRProviderURL string
	QRCacheTTL    time.Duration

	CorsOrigins []string
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "production")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("AI_PROVIDER", "openai")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("QR_PROVIDER_URL", "https://api.qrserver.com/v1/create-qr-code/")
	v.SetDefault("QR_CACHE_TTL", "24h")

	cfg := &Config{
		Env:                    v.GetString("APP_ENV"),
		Port:                   v.GetString("PORT"),
		DatabaseURL:            v.GetString("DATABASE_URL"),
		DBMaxOpenConns:         v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:         v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime:      v.GetDuration("DB_CONN_MAX_LIFETIME"),
		SupabaseURL:            v.GetString("SUPABASE_URL"),
		SupabaseJWTSecret:      v.GetString("SUPABASE_JWT_SECRET"),
		SupabaseServiceRoleKey: v.GetString("SUPABASE_SERVICE_ROLE_KEY"),
		StripeSecretKey:        v.GetString("STRIPE_SECRET_KEY"),
		StripePrices:           stripePricesFromEnv(os.Environ()),
		AppBaseURL:             strings.TrimRight(v.GetString("APP_BASE_URL"), "/"),
		AIProvider:             strings.ToLower(v.GetString("AI_PROVIDER")),
		OpenAIAPIKey:           v.GetString("OPENAI_API_KEY"),
		OpenAIModel:            v.GetString("OPENAI_MODEL"),
		GeminiAPIKey:           v.GetString("GEMINI_API_KEY"),
		GeminiModel:            v.GetString("GEMINI_MODEL"),
		RedisAddr:              v.GetString("REDIS_ADDR"),
		RedisPassword:          v.GetString("REDIS_PASSWORD"),
		RedisDB:                v.GetInt("REDIS_DB"),
		QRProviderURL:          v.GetString("QR_PROVIDER_URL"),
		QRCacheTTL:             v.GetDuration("QR_CACHE_TTL"),
		CorsOrigins:            parseList(v.GetString("CORS_ORIGINS")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.SupabaseJWTSecret == "" {
		return nil, fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}

	return cfg, nil
}

// IsDev reports whether the service runs with development defaults.
func (c *Config) IsDev() bool {
	return c.Env == "dev" || c.Env == "development"
}

// PriceID resolves a plan slug to the payment provider price id.
func (c *Config) PriceID(plan string) (string, bool) {
	id, ok := c.StripePrices[strings.ToLower(strings.TrimSpace(plan))]
	return id, ok && id != ""
}

func stripePricesFromEnv(environ []string) map[string]string {
	prices := make(map[string]string)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, stripePricePrefix) {
			continue
		}
		slug := strings.ToLower(strings.TrimPrefix(key, stripePricePrefix))
		if slug == "" || strings.TrimSpace(value) == "" {
			continue
		}
		prices[slug] = strings.TrimSpace(value)
	}
	return prices
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
