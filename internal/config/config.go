package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// key-value store
	StoreBackend   string `toml:"store_backend"` // redis | postgres | sqlite | memory
	StoreNamespace string `toml:"store_namespace"`
	// local read cache in front of the store, 0 disables it
	LocalCacheSizeMB     int `toml:"local_cache_size_mb"`
	LocalCacheTTLSeconds int `toml:"local_cache_ttl_seconds"`

	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	SQLitePath string `toml:"sqlite_path"`

	// calendar day boundaries for session rollover
	Timezone string `toml:"timezone"`

	// exercise catalog
	CatalogDir     string            `toml:"catalog_dir"`
	CatalogBaseURL string            `toml:"catalog_base_url"`
	CatalogUsers   map[string]string `toml:"catalog_users"`

	// metrics
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`

	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`
	AllowedOrigins              []string `toml:"allowed_origins"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.StoreBackend == "" {
		c.StoreBackend = "redis"
	}
	if c.StoreNamespace == "" {
		c.StoreNamespace = "treino-app-"
	}
	if c.LocalCacheTTLSeconds == 0 {
		c.LocalCacheTTLSeconds = 60
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.LoginRateLimitAllowedPerMin == 0 {
		c.LoginRateLimitAllowedPerMin = 5
	}
}

func (c *Config) validate() error {
	if c.Port == 0 {
		return fmt.Errorf("port is required")
	}
	switch c.StoreBackend {
	case "redis":
		if c.RedisHost == "" || c.RedisPort == "" {
			return fmt.Errorf("redis_host and redis_port are required for the redis store")
		}
	case "postgres":
		if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
			return fmt.Errorf("postgres_host, postgres_port and postgres_db_name are required for the postgres store")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("sqlite_path is required for the sqlite store")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown store_backend: %s", c.StoreBackend)
	}
	if c.CatalogDir == "" && c.CatalogBaseURL == "" {
		return fmt.Errorf("one of catalog_dir or catalog_base_url is required")
	}
	if len(c.CatalogUsers) == 0 {
		return fmt.Errorf("catalog_users is empty")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured time zone used for calendar-day comparisons.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Secrets are never kept in the TOML file.
type Secrets struct {
	RedisPassword     string `env:"TREINO_REDIS_PASS"`
	PostgresPassword  string `env:"TREINO_POSTGRES_PASS"`
	AdminUsername     string `env:"TREINO_ADMIN_USERNAME"`
	AdminPasswordHash string `env:"TREINO_ADMIN_PASSWORD_HASH"`
	SentryDSN         string `env:"SENTRY_DSN"`
	HoneycombEnabled  bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombAPIKey   string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName   string `env:"OTEL_SERVICE_NAME, default=treino-backend"`
}

func LoadSecrets(ctx context.Context) (*Secrets, error) {
	var s Secrets
	if err := envconfig.Process(ctx, &s); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &s, nil
}
