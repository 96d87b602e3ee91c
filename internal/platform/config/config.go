package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

// ConfigFileEnv names the optional YAML file merged under the environment.
const ConfigFileEnv = "ASSETVERSE_CONFIG"

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string `yaml:"service_name"`
	HTTPPort    string `yaml:"http_port"`
	StoreDriver string `yaml:"store_driver"`

	PostgresDSN   string `yaml:"postgres_dsn"`
	MongoURI      string `yaml:"mongo_uri"`
	MongoDatabase string `yaml:"mongo_database"`
	AutoMigrate   bool   `yaml:"auto_migrate"`

	JWTSecret   string `yaml:"jwt_secret"`
	JWTIssuer   string `yaml:"jwt_issuer"`
	JWTAudience string `yaml:"jwt_audience"`

	StripeSecretKey string `yaml:"stripe_secret_key"`
	SiteDomain      string `yaml:"site_domain"`

	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`

	OutboxPollInterval time.Duration `yaml:"outbox_poll_interval"`
	OutboxBatchSize    int           `yaml:"outbox_batch_size"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Load reads .env (when present), then an optional YAML file named by
// ASSETVERSE_CONFIG, then the process environment. Later sources win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path := strings.TrimSpace(os.Getenv(ConfigFileEnv)); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg := Config{
		ServiceName:        v.GetString("service_name"),
		HTTPPort:           v.GetString("http_port"),
		StoreDriver:        strings.ToLower(strings.TrimSpace(v.GetString("store_driver"))),
		PostgresDSN:        v.GetString("postgres_dsn"),
		MongoURI:           v.GetString("mongo_uri"),
		MongoDatabase:      v.GetString("mongo_database"),
		AutoMigrate:        envBool(v.GetString("auto_migrate"), false),
		JWTSecret:          v.GetString("jwt_secret"),
		JWTIssuer:          v.GetString("jwt_issuer"),
		JWTAudience:        v.GetString("jwt_audience"),
		StripeSecretKey:    v.GetString("stripe_secret_key"),
		SiteDomain:         strings.TrimRight(v.GetString("site_domain"), "/"),
		CORSAllowedOrigins: listValue(v, "cors_allowed_origins"),
		OutboxPollInterval: v.GetDuration("outbox_poll_interval"),
		OutboxBatchSize:    v.GetInt("outbox_batch_size"),
		ShutdownTimeout:    v.GetDuration("shutdown_timeout"),
		LogLevel:           strings.ToLower(v.GetString("log_level")),
		LogFormat:          strings.ToLower(v.GetString("log_format")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}
	if cfg.OutboxPollInterval <= 0 {
		cfg.OutboxPollInterval = 2 * time.Second
	}
	if cfg.OutboxBatchSize <= 0 {
		cfg.OutboxBatchSize = 100
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 15 * time.Second
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service_name", "assetverse")
	v.SetDefault("http_port", "8080")
	v.SetDefault("store_driver", StoreMemory)
	v.SetDefault("postgres_dsn", "")
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_database", "assetverse")
	v.SetDefault("auto_migrate", "false")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_issuer", "")
	v.SetDefault("jwt_audience", "")
	v.SetDefault("stripe_secret_key", "")
	v.SetDefault("site_domain", "http://localhost:5173")
	v.SetDefault("cors_allowed_origins", "*")
	v.SetDefault("outbox_poll_interval", "2s")
	v.SetDefault("outbox_batch_size", 100)
	v.SetDefault("shutdown_timeout", "15s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}

// ValidateStore checks that the selected store driver has what it needs.
func (c Config) ValidateStore() error {
	switch c.StoreDriver {
	case StoreMemory:
		return nil
	case StorePostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			return errors.New("POSTGRES_DSN is required for the postgres store")
		}
		return nil
	case StoreMongo:
		if strings.TrimSpace(c.MongoURI) == "" || strings.TrimSpace(c.MongoDatabase) == "" {
			return errors.New("MONGO_URI and MONGO_DATABASE are required for the mongo store")
		}
		return nil
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}
}

// ValidateAPI adds the checks only the HTTP process needs.
func (c Config) ValidateAPI() error {
	if err := c.ValidateStore(); err != nil {
		return err
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

// Masked returns a copy safe to print.
func (c Config) Masked() Config {
	masked := c
	masked.PostgresDSN = mask(c.PostgresDSN)
	masked.MongoURI = mask(c.MongoURI)
	masked.JWTSecret = mask(c.JWTSecret)
	masked.StripeSecretKey = mask(c.StripeSecretKey)
	return masked
}

func mask(value string) string {
	if value == "" {
		return ""
	}
	return "********"
}

// listValue accepts a YAML sequence or a comma separated string.
func listValue(v *viper.Viper, key string) []string {
	if raw, ok := v.Get(key).(string); ok {
		return splitList(raw)
	}
	return splitList(strings.Join(v.GetStringSlice(key), ","))
}

func splitList(raw string) []string {
	var items []string
	for _, value := range strings.Split(raw, ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}

func envBool(raw string, fallback bool) bool {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
