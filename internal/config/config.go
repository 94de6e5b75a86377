package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers
const (
	DriverSQLite   = "sqlite"
	DriverSupabase = "supabase"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Store     StoreConfig     `mapstructure:"store"`
	Supabase  SupabaseConfig  `mapstructure:"supabase"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Log       LogConfig       `mapstructure:"log"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

// StoreConfig selects the record store backend
type StoreConfig struct {
	Driver     string `mapstructure:"driver"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

// SupabaseConfig holds Supabase-specific configuration
type SupabaseConfig struct {
	URL        string `mapstructure:"url"`
	ServiceKey string `mapstructure:"service_key"`
}

// AnalyticsConfig tunes the analytics engine
type AnalyticsConfig struct {
	// Timezone names the zone whose calendar days the engine uses
	Timezone   string   `mapstructure:"timezone"`
	Categories []string `mapstructure:"categories"`
	TrendDays  int      `mapstructure:"trend_days"`
}

// CORSConfig lists the browser origins allowed to call the API.
// Empty means any origin.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.sqlite_path", "data/habithub.db")
	v.SetDefault("supabase.url", "")
	v.SetDefault("supabase.service_key", "")
	v.SetDefault("analytics.timezone", "Local")
	v.SetDefault("analytics.categories", []string{})
	v.SetDefault("analytics.trend_days", 7)
	v.SetDefault("cors.allowed_origins", []string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.namespace", "habithub")
}

// Load reads configuration from .env, environment variables and config files
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("HABITHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unprefixed names used by hosting platforms
	v.BindEnv("server.port", "HABITHUB_SERVER_PORT", "PORT")
	v.BindEnv("supabase.url", "HABITHUB_SUPABASE_URL", "SUPABASE_URL")
	v.BindEnv("supabase.service_key", "HABITHUB_SUPABASE_SERVICE_KEY", "SUPABASE_SERVICE_KEY")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverSQLite:
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("store.sqlite_path is required for the sqlite driver")
		}
	case DriverSupabase:
		if c.Supabase.URL == "" {
			return fmt.Errorf("SUPABASE_URL is required")
		}
		if c.Supabase.ServiceKey == "" {
			return fmt.Errorf("SUPABASE_SERVICE_KEY is required")
		}
	default:
		return fmt.Errorf("unknown store.driver %q: want %s or %s", c.Store.Driver, DriverSQLite, DriverSupabase)
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Analytics.TrendDays < 1 {
		return fmt.Errorf("analytics.trend_days must be at least 1")
	}
	return nil
}

// Location resolves the analytics timezone
func (c *Config) Location() (*time.Location, error) {
	if c.Analytics.Timezone == "" || c.Analytics.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Analytics.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid analytics.timezone %q: %w", c.Analytics.Timezone, err)
	}
	return loc, nil
}

// IsProduction reports whether the server runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
