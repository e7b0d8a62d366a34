// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mlanzi/spese-backend/logger"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT"`
	Port           string      `mapstructure:"PORT"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS"`
	Version        string      `mapstructure:"VERSION"`
}

// SupabaseConfig holds connection details for the hosted Postgres REST API.
type SupabaseConfig struct {
	URL            string `mapstructure:"URL"`
	Key            string `mapstructure:"KEY"`
	TimeoutSeconds int    `mapstructure:"TIMEOUT_SECONDS"`
}

// StorageConfig holds object storage settings for receipt images. When the
// S3 credentials are absent the application falls back to local disk storage.
type StorageConfig struct {
	Bucket          string `mapstructure:"BUCKET"`
	AccountID       string `mapstructure:"ACCOUNT_ID"`
	AccessKeyID     string `mapstructure:"ACCESS_KEY_ID"`
	SecretAccessKey string `mapstructure:"SECRET_ACCESS_KEY"`
	PublicBaseURL   string `mapstructure:"PUBLIC_BASE_URL"`
	LocalDir        string `mapstructure:"LOCAL_DIR"`
}

// OCRConfig holds Google Vision credential material. CredentialsFile points
// at a service account JSON file; CredentialsJSON carries the same material
// inline for deployments without a filesystem secret. Both empty means OCR is
// disabled and uploads degrade to manual entry.
type OCRConfig struct {
	CredentialsFile string `mapstructure:"CREDENTIALS_FILE"`
	CredentialsJSON string `mapstructure:"CREDENTIALS_JSON"`
}

// UploadConfig bounds receipt image uploads and normalization.
type UploadConfig struct {
	MaxSizeBytes   int64 `mapstructure:"MAX_SIZE_BYTES"`
	MaxDimensionPx int   `mapstructure:"MAX_DIMENSION_PX"`
	JPEGQuality    int   `mapstructure:"JPEG_QUALITY"`
}

// MileageConfig holds the fallback per-km reimbursement rate applied when a
// trip is created without an explicit rate.
type MileageConfig struct {
	DefaultRate string `mapstructure:"DEFAULT_RATE"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server   ServerConfig   `mapstructure:"SERVER"`
	Supabase SupabaseConfig `mapstructure:"SUPABASE"`
	Storage  StorageConfig  `mapstructure:"STORAGE"`
	OCR      OCRConfig      `mapstructure:"OCR"`
	Upload   UploadConfig   `mapstructure:"UPLOAD"`
	Mileage  MileageConfig  `mapstructure:"MILEAGE"`
}

// IsProduction returns true when running in the production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// DefaultRate parses the configured fallback per-km rate.
func (c *Config) DefaultRate() decimal.Decimal {
	rate, err := decimal.NewFromString(c.Mileage.DefaultRate)
	if err != nil {
		return decimal.RequireFromString("0.19")
	}
	return rate
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// applies defaults, unmarshals into Config, and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("SUPABASE.TIMEOUT_SECONDS", 10)
	v.SetDefault("STORAGE.BUCKET", "expenses")
	v.SetDefault("STORAGE.LOCAL_DIR", "./uploads")
	v.SetDefault("UPLOAD.MAX_SIZE_BYTES", 10485760)
	v.SetDefault("UPLOAD.MAX_DIMENSION_PX", 1200)
	v.SetDefault("UPLOAD.JPEG_QUALITY", 85)
	v.SetDefault("MILEAGE.DEFAULT_RATE", "0.19")
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		{"SERVER.ENVIRONMENT", "ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.VERSION", "VERSION"},
		{"SUPABASE.URL", "SUPABASE_URL"},
		{"SUPABASE.KEY", "SUPABASE_KEY"},
		{"SUPABASE.TIMEOUT_SECONDS", "HTTP_TIMEOUT_SECONDS"},
		{"STORAGE.BUCKET", "STORAGE_BUCKET"},
		{"STORAGE.ACCOUNT_ID", "STORAGE_ACCOUNT_ID"},
		{"STORAGE.ACCESS_KEY_ID", "STORAGE_ACCESS_KEY_ID"},
		{"STORAGE.SECRET_ACCESS_KEY", "STORAGE_SECRET_ACCESS_KEY"},
		{"STORAGE.PUBLIC_BASE_URL", "STORAGE_PUBLIC_BASE_URL"},
		{"STORAGE.LOCAL_DIR", "UPLOAD_DIR"},
		{"OCR.CREDENTIALS_FILE", "GOOGLE_APPLICATION_CREDENTIALS"},
		{"OCR.CREDENTIALS_JSON", "GOOGLE_CREDENTIALS_JSON"},
		{"UPLOAD.MAX_SIZE_BYTES", "MAX_UPLOAD_SIZE"},
		{"MILEAGE.DEFAULT_RATE", "DEFAULT_RATE_PER_KM"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"server_port", cfg.Server.Port,
		"supabase_url", cfg.Supabase.URL,
		"supabase_key", logger.MaskSensitiveString(cfg.Supabase.Key, 4, 4),
		"storage_bucket", cfg.Storage.Bucket,
		"ocr_configured", cfg.OCR.CredentialsFile != "" || cfg.OCR.CredentialsJSON != "",
	)

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Supabase.URL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if _, err := url.ParseRequestURI(cfg.Supabase.URL); err != nil {
		return fmt.Errorf("SUPABASE_URL is not a valid URL: %w", err)
	}
	if cfg.Supabase.Key == "" {
		return fmt.Errorf("SUPABASE_KEY is required")
	}
	if _, err := decimal.NewFromString(cfg.Mileage.DefaultRate); err != nil {
		return fmt.Errorf("DEFAULT_RATE_PER_KM is not a valid decimal: %w", err)
	}
	if cfg.Upload.MaxSizeBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be positive")
	}
	return nil
}
