package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

/* =======================
   CONFIG STRUCT
======================= */

// Config carries every secret and tunable the app needs. It is built once in
// main and injected; nothing reads os.Getenv after startup.
type Config struct {
	Port string

	// Database
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	// Session tokens
	JWTSecret string
	TokenTTL  time.Duration

	// Outbound mail (notification sender)
	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	MailSender string

	// Structure-extraction service
	ExtractorBaseURL string
	ExtractorTimeout time.Duration
	ExtractorRetries int

	// Document staging/storage
	UploadDir string

	// Bounded pool for memory-hard credential verification
	VerifyWorkers int

	// Legacy-compat policy switches. Secure defaults: both false.
	// AllowAdminBypass skips credential verification for Administrator staff.
	// TrustClientScope lets School callers supply their own school_code.
	AllowAdminBypass bool
	TrustClientScope bool
}

/* =======================
   ENV LOADER
======================= */

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}

	cfg := &Config{
		Port: GetEnv("PORT", "3000"),

		DBUser:     GetEnv("DB_USER"),
		DBPassword: GetEnv("DB_PASSWORD"),
		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBName:     GetEnv("DB_NAME"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "require"),

		JWTSecret: GetEnv("JWT_SECRET"),
		TokenTTL:  envDuration("TOKEN_TTL", time.Hour),

		SMTPHost:   GetEnv("SMTP_HOST"),
		SMTPPort:   GetEnv("SMTP_PORT", "587"),
		SMTPUser:   GetEnv("SMTP_USER"),
		SMTPPass:   GetEnv("SMTP_PASS"),
		MailSender: GetEnv("MAIL_SENDER"),

		ExtractorBaseURL: GetEnv("EXTRACTOR_BASE_URL", "http://localhost:8080"),
		ExtractorTimeout: envDuration("EXTRACTOR_TIMEOUT", 30*time.Second),
		ExtractorRetries: envInt("EXTRACTOR_RETRIES", 2),

		UploadDir: GetEnv("UPLOAD_DIR", "./data"),

		VerifyWorkers: envInt("VERIFY_WORKERS", 4),

		AllowAdminBypass: envBool("ALLOW_ADMIN_BYPASS", false),
		TrustClientScope: envBool("TRUST_CLIENT_SCOPE", false),
	}

	if cfg.JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	} else {
		log.Println("✅ JWT_SECRET loaded.")
	}
	if cfg.AllowAdminBypass {
		log.Println("⚠️ ALLOW_ADMIN_BYPASS enabled: Administrator logins skip credential verification")
	}

	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
