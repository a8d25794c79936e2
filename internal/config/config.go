package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// TLS/mTLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)

	// Client cert via header (for ingress-terminated TLS)
	ClientCertHeader string // Header name containing client cert CN, e.g. "X-Client-CN"

	// OIDC
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)
	RedisURL      string // Optional shared session store, e.g. "redis://localhost:6379/0"

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Knowledge base
	KnowledgeFile      string // Optional YAML file of fact overrides
	FallbackFirstMatch bool   // Crop topic buckets use first match instead of last

	// History
	HistoryQueueSize     int
	HistoryWriteTimeout  time.Duration
	HistoryRetention     time.Duration // 0 keeps history forever
	HistoryPruneInterval time.Duration

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "KrishiSahay"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:              getEnv("ENV", "development"),
		ServerAddr:       getEnv("SERVER_ADDR", ":3000"),
		BaseURL:          getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:      getEnv("DATABASE_URL", "postgres://localhost:5432/krishisahay?sslmode=disable"),
		TLSEnabled:       getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:      getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:       getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:        getEnv("TLS_CA_FILE", ""),
		ClientCertHeader: getEnv("CLIENT_CERT_HEADER", ""),
		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", "http://localhost:3000/auth/callback"),
		SessionSecret:    getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		RedisURL:         getEnv("REDIS_URL", ""),
		CORSOrigins:      getEnv("CORS_ORIGINS", ""),

		KnowledgeFile:      getEnv("KNOWLEDGE_FILE", ""),
		FallbackFirstMatch: getEnv("FALLBACK_FIRST_MATCH", "") != "",

		HistoryQueueSize:     getEnvInt("HISTORY_QUEUE_SIZE", 1024),
		HistoryWriteTimeout:  getEnvPositiveDuration("HISTORY_WRITE_TIMEOUT", 5*time.Second),
		HistoryRetention:     getEnvDuration("HISTORY_RETENTION", 0),
		HistoryPruneInterval: getEnvDuration("HISTORY_PRUNE_INTERVAL", time.Hour),

		SiteTitle:   getEnv("SITE_TITLE", "KrishiSahay"),
		SiteTagline: getEnv("SITE_TAGLINE", "Answers for crops, pests and fertilizers"),
		SiteFooter:  getEnv("SITE_FOOTER", "KrishiSahay - farming help on demand"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d >= 0 {
		return d
	}
	return fallback
}

// getEnvPositiveDuration is getEnvDuration for settings where zero makes no sense.
func getEnvPositiveDuration(key string, fallback time.Duration) time.Duration {
	if d := getEnvDuration(key, fallback); d > 0 {
		return d
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}
