package config

import (
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Logger        LoggerConfig
	Auth          AuthConfig
	Redis         RedisConfig
	Backend       BackendConfig
	VoucherImport VoucherImportConfig
	Currency      CurrencyConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port         int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout  time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string `envconfig:"DB_HOST" default:"localhost"`
	Port            int    `envconfig:"DB_PORT" default:"5432"`
	User            string `envconfig:"DB_USER" default:"postgres"`
	Password        string `envconfig:"DB_PASSWORD"`
	Database        string `envconfig:"DB_NAME" default:"storefront"`
	SSLMode         string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConnections  int    `envconfig:"DB_MAX_CONNECTIONS" default:"25"`
	MinConnections  int    `envconfig:"DB_MIN_CONNECTIONS" default:"5"`
	MaxConnLifetime int    `envconfig:"DB_MAX_CONN_LIFETIME" default:"300"` // seconds
	AutoMigrate     bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"` // "json" or "console"
}

// AuthConfig holds authentication configuration for the admin API.
type AuthConfig struct {
	APIKey string `envconfig:"API_KEY"`
}

// RedisConfig holds the public FAQ cache configuration.
type RedisConfig struct {
	Enabled  bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Address  string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	FAQTTL   time.Duration `envconfig:"REDIS_FAQ_TTL" default:"5m"`
}

// BackendConfig points at the hosted backend REST API probed by the health check.
type BackendConfig struct {
	URL        string        `envconfig:"BACKEND_URL"`
	AnonKey    string        `envconfig:"BACKEND_ANON_KEY"`
	ProbeTable string        `envconfig:"BACKEND_PROBE_TABLE" default:"products"`
	Timeout    time.Duration `envconfig:"BACKEND_TIMEOUT" default:"5s"`
}

// VoucherImportConfig controls the startup import of voucher definitions.
type VoucherImportConfig struct {
	Enabled   bool   `envconfig:"VOUCHER_IMPORT_ENABLED" default:"false"`
	File      string `envconfig:"VOUCHER_IMPORT_FILE" default:"data/vouchers/vouchers.csv.gz"`
	S3Enabled bool   `envconfig:"VOUCHER_IMPORT_S3_ENABLED" default:"false"`
	S3Bucket  string `envconfig:"VOUCHER_IMPORT_S3_BUCKET"`
	S3Region  string `envconfig:"VOUCHER_IMPORT_S3_REGION" default:"us-east-1"`
	S3Prefix  string `envconfig:"VOUCHER_IMPORT_S3_PREFIX" default:"vouchers/"`
}

// CurrencyConfig controls how amounts are rendered in customer-facing messages.
type CurrencyConfig struct {
	Symbol string `envconfig:"CURRENCY_SYMBOL" default:"₱"`
}

// Load loads configuration from an optional .env file and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to read .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return &cfg, nil
}

// MigrationConfig holds the sections needed by the migration tool.
type MigrationConfig struct {
	Database DatabaseConfig
	Logger   LoggerConfig
}

// LoadMigrationConfig loads database and logger settings without requiring the
// API server's configuration.
func LoadMigrationConfig() (*MigrationConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to read .env file")
	}

	var cfg MigrationConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	if cfg.Database.Host == "" || cfg.Database.User == "" || cfg.Database.Database == "" {
		return nil, errors.New("database host, user and name are required")
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Database.Port)
	}

	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.Database.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.Database.MinConnections > c.Database.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	if c.Auth.APIKey == "" {
		return fmt.Errorf("API key is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Redis.Enabled && c.Redis.Address == "" {
		return fmt.Errorf("redis address is required when redis is enabled")
	}

	if c.Backend.URL != "" {
		if _, err := url.ParseRequestURI(c.Backend.URL); err != nil {
			return fmt.Errorf("invalid backend URL: %s", c.Backend.URL)
		}
	}

	if c.VoucherImport.S3Enabled {
		if c.VoucherImport.S3Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 voucher import is enabled")
		}
		if c.VoucherImport.S3Region == "" {
			return fmt.Errorf("S3 region is required when S3 voucher import is enabled")
		}
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.Database,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ProjectRef returns the first host label of the backend URL, e.g. "abcd" for https://abcd.example.co.
func (c *BackendConfig) ProjectRef() string {
	u, err := url.Parse(c.URL)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.SplitN(u.Hostname(), ".", 2)[0]
}
