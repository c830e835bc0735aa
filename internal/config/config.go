package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Session JWT
	JWTSecret        string
	JWTSessionExpiry time.Duration

	// External identity provider (Firebase / Google sign-in)
	GoogleJWKSURL      string
	FirebaseProjectID  string
	AllowedEmailDomain string

	// Administrators
	AdminEmails string

	// Chatbot microservice
	ChatbotURL     string
	ChatbotTimeout time.Duration

	// Blood request retention
	RequestRetentionDays   int
	RetentionSweepInterval time.Duration

	// Error tracking
	SentryDSN   string
	Environment string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "campusconnect_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTSessionExpiry: parseDuration(getEnv("JWT_SESSION_EXPIRY", "24h"), 24*time.Hour),

		GoogleJWKSURL:      getEnv("GOOGLE_JWKS_URL", "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"),
		FirebaseProjectID:  getEnv("FIREBASE_PROJECT_ID", ""),
		AllowedEmailDomain: getEnv("ALLOWED_EMAIL_DOMAIN", ""),

		AdminEmails: getEnv("ADMIN_EMAILS", ""),

		ChatbotURL:     getEnv("CHATBOT_URL", ""),
		ChatbotTimeout: parseDuration(getEnv("CHATBOT_TIMEOUT", "30s"), 30*time.Second),

		RequestRetentionDays:   parseInt(getEnv("REQUEST_RETENTION_DAYS", "2"), 2),
		RetentionSweepInterval: parseDuration(getEnv("RETENTION_SWEEP_INTERVAL", "48h"), 48*time.Hour),

		SentryDSN:   getEnv("SENTRY_DSN", ""),
		Environment: getEnv("APP_ENV", ""),

		Port:        getEnv("PORT", "4000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
