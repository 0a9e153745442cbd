// Package config loads application settings from environment variables.
package config

import (
	"fmt"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

// Config aggregates every runtime setting of the StudentMarket backend.
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// APIConfig contains HTTP server settings.
type APIConfig struct {
	Port            int    `mapstructure:"port"`
	AllowOrigins    string `mapstructure:"allow_origins"`
	RateLimitPerSec uint   `mapstructure:"rate_limit_per_sec"`
}

// DatabaseConfig contains connection options for PostgreSQL.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
	// ConnStr overrides the individual fields when set
	ConnStr string `mapstructure:"conn_str"`
}

// RedisConfig contains connection options for the task queue and the
// JWT blacklist store.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// MinIOConfig contains connection options for S3-compatible object storage.
type MinIOConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	Bucket          string `mapstructure:"bucket"`
}

// AuthConfig contains JWT and Google OAuth settings.
type AuthConfig struct {
	SecretKey          string `mapstructure:"secret_key"`
	GoogleClientID     string `mapstructure:"google_client_id"`
	GoogleClientSecret string `mapstructure:"google_client_secret"`
	OAuthRedirectURL   string `mapstructure:"oauth_redirect_url"`
	AdminUsername      string `mapstructure:"admin_username"`
	AdminPassword      string `mapstructure:"admin_password"`
}

// DSN builds a postgres connection string, preferring ConnStr when provided.
func (d DatabaseConfig) DSN() string {
	if d.ConnStr != "" {
		return d.ConnStr
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// Load reads configuration from environment variables with defaults applied.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Auth.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY must be set")
	}

	return &cfg, nil
}

// MustLoad wraps Load and exits on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.allow_origins", "http://localhost:3000")
	v.SetDefault("api.rate_limit_per_sec", 5)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "studentmarket")
	v.SetDefault("database.user", "studentmarket")
	v.SetDefault("database.password", "studentmarket")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.bucket", "studentmarket")
}

func bindEnv(v *viper.Viper) error {
	bindings := map[string]string{
		"api.port":                  "PORT",
		"api.allow_origins":         "ALLOW_ORIGIN",
		"api.rate_limit_per_sec":    "RATE_LIMIT_REQUESTS_PER_SECOND",
		"database.host":             "DB_HOST",
		"database.port":             "DB_PORT",
		"database.name":             "DB_DATABASE",
		"database.user":             "DB_USERNAME",
		"database.password":         "DB_PASSWORD",
		"database.sslmode":          "DB_SSLMODE",
		"database.conn_str":         "DB_CONNECTION_STR",
		"redis.addr":                "REDIS_ADDR",
		"redis.password":            "REDIS_PASSWORD",
		"redis.db":                  "REDIS_DB",
		"minio.endpoint":            "MINIO_ENDPOINT",
		"minio.access_key_id":       "MINIO_ACCESS_KEY",
		"minio.secret_access_key":   "MINIO_SECRET_KEY",
		"minio.use_ssl":             "MINIO_USE_SSL",
		"minio.bucket":              "MINIO_BUCKET",
		"auth.secret_key":           "SECRET_KEY",
		"auth.google_client_id":     "GOOGLE_AUTH_CLIENT",
		"auth.google_client_secret": "GOOGLE_AUTH_SECRET",
		"auth.oauth_redirect_url":   "OAUTH_REDIRECT_URL",
		"auth.admin_username":       "ADMIN_USERNAME",
		"auth.admin_password":       "ADMIN_PASSWORD",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}
	return nil
}
