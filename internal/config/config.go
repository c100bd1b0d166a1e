// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const devSecretKey = "moodvenue-insecure-dev-key-change-me"

// Config is resolved once at startup and handed to everything that needs it.
//
// Precedence for every value: process environment, then the .env file, then the default
// listed next to each getEnv call below.
type Config struct {
	Port        string
	Environment string
	DatabaseURL string

	SecretKey          string
	Debug              bool
	AllowedHosts       []string
	CORSAllowedOrigins []string

	LogLevel  string
	LogFormat string

	AdminUsername       string
	AdminPasswordHash   string
	JWTExpiresInSeconds int64

	S3 S3Settings
}

// S3Settings describes the media bucket. An empty Bucket disables uploads.
type S3Settings struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicBaseURL   string
}

// Load reads the .env file (if any) and the environment into a Config.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path. A missing file is not an error.
func LoadFrom(envFile string) (*Config, error) {
	if envFile != "" {
		// godotenv.Load never overrides variables already present in the environment.
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	debug, err := parseBool("DEBUG", false)
	if err != nil {
		return nil, err
	}
	expiresIn, err := strconv.ParseInt(getEnv("JWT_EXPIRES_IN_SECONDS", "86400"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRES_IN_SECONDS: %w", err)
	}

	logLevel := getEnv("LOG_LEVEL", "info")
	if debug && os.Getenv("LOG_LEVEL") == "" {
		logLevel = "debug"
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		DatabaseURL: getEnv("DATABASE_URL", "sqlite://moodvenue.db"),

		SecretKey:          getEnv("SECRET_KEY", devSecretKey),
		Debug:              debug,
		AllowedHosts:       splitList(getEnv("ALLOWED_HOSTS", "localhost,127.0.0.1")),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:8000,http://127.0.0.1:8000")),

		LogLevel:  logLevel,
		LogFormat: getEnv("LOG_FORMAT", "json"),

		AdminUsername:       getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash:   getEnv("ADMIN_PASSWORD_HASH", ""),
		JWTExpiresInSeconds: expiresIn,

		S3: S3Settings{
			Region:          getEnv("AWS_REGION", ""),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Bucket:          getEnv("S3_BUCKET_NAME", ""),
			PublicBaseURL:   getEnv("S3_PUBLIC_BASE_URL", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail late at request time.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, "PORT must be between 1 and 65535")
	}
	if c.DatabaseURL == "" {
		problems = append(problems, "DATABASE_URL is required")
	}
	if c.IsProduction() && (c.SecretKey == "" || c.SecretKey == devSecretKey) {
		problems = append(problems, "SECRET_KEY must be set in production")
	}
	if c.IsProduction() && c.Debug {
		problems = append(problems, "DEBUG must be off in production")
	}
	if c.JWTExpiresInSeconds <= 0 {
		problems = append(problems, "JWT_EXPIRES_IN_SECONDS must be positive")
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		problems = append(problems, "LOG_FORMAT must be one of: json, text")
	}
	if c.S3.Bucket != "" && c.S3.PublicBaseURL == "" {
		problems = append(problems, "S3_PUBLIC_BASE_URL is required when S3_BUCKET_NAME is set")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// IsProduction reports whether ENVIRONMENT is "production".
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// MediaEnabled reports whether an S3 bucket has been configured.
func (c *Config) MediaEnabled() bool {
	return c.S3.Bucket != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseBool(key string, defaultValue bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
