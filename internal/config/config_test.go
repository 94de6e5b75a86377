package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "data/habithub.db", cfg.Store.SQLitePath)
	assert.Equal(t, 7, cfg.Analytics.TrendDays)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("HABITHUB_STORE_DRIVER", "supabase")
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_SERVICE_KEY", "secret")
	t.Setenv("HABITHUB_ANALYTICS_TIMEZONE", "America/New_York")
	t.Setenv("HABITHUB_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, DriverSupabase, cfg.Store.Driver)
	assert.Equal(t, "https://example.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, "debug", cfg.Log.Level)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Store:     StoreConfig{Driver: DriverSQLite, SQLitePath: "x.db"},
			Analytics: AnalyticsConfig{TrendDays: 7},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid sqlite", mutate: func(*Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Store.Driver = "mongo" }, wantErr: true},
		{name: "sqlite without path", mutate: func(c *Config) { c.Store.SQLitePath = "" }, wantErr: true},
		{name: "supabase without url", mutate: func(c *Config) { c.Store.Driver = DriverSupabase }, wantErr: true},
		{
			name: "supabase complete",
			mutate: func(c *Config) {
				c.Store.Driver = DriverSupabase
				c.Supabase = SupabaseConfig{URL: "https://x", ServiceKey: "k"}
			},
		},
		{name: "bad timezone", mutate: func(c *Config) { c.Analytics.Timezone = "Mars/Olympus" }, wantErr: true},
		{name: "zero trend window", mutate: func(c *Config) { c.Analytics.TrendDays = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLocation_Local(t *testing.T) {
	cfg := Config{}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}
