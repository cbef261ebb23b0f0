package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/cropstats/internal/config"
)

var keys = []string{
	"APP_PORT", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "DATA_SOURCE", "ADMIN_API_KEY",
	"REFRESH_ENABLED", "REFRESH_CRON_SCHEDULE", "TIMEZONE", "REFRESH_TIMEOUT",
	"MONGODB_URI", "MONGODB_DB_NAME", "GOOGLE_SHEETS_CREDENTIALS_PATH", "GOOGLE_SHEET_DATABASE_ID",
	"SNAPSHOT_URL", "SNAPSHOT_TOKEN",
}

// clearEnv blanks every key so a developer's shell or .env does not leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, config.SourceFixtures, cfg.Data.Source)
	assert.Equal(t, "farmhandpro-refresh-2025", cfg.Admin.APIKey)
	assert.False(t, cfg.Refresh.Enabled)
	assert.Equal(t, "0 */6 * * *", cfg.Refresh.CronSchedule)
	assert.Equal(t, "America/Sao_Paulo", cfg.Refresh.Timezone)
	assert.Equal(t, 2*time.Minute, cfg.Refresh.Timeout)
	assert.Equal(t, "cropstats", cfg.MongoDB.DBName)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	for _, k := range keys {
		require.NoError(t, os.Unsetenv(k))
	}
	t.Cleanup(func() {
		for _, k := range keys {
			_ = os.Unsetenv(k)
		}
	})

	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9090\nDATA_SOURCE=http\nSNAPSHOT_URL=https://stats.example.com/snapshot.json\nCORS_ALLOWED_ORIGINS=https://a.example.com, https://b.example.com\nREFRESH_ENABLED=true\nREFRESH_TIMEOUT=30s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, config.SourceHTTP, cfg.Data.Source)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.Refresh.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Refresh.Timeout)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("REFRESH_TIMEOUT", "soon")
	_, err := config.Load(missingEnvFile(t))
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("REFRESH_ENABLED", "maybe")
	_, err = config.Load(missingEnvFile(t))
	assert.Error(t, err)
}

func TestValidateIsSourceAware(t *testing.T) {
	base := func() config.Config {
		return config.Config{
			Server:  config.ServerConfig{Port: "8080", LogLevel: "info"},
			Data:    config.DataConfig{Source: config.SourceFixtures},
			Admin:   config.AdminConfig{APIKey: "key"},
			Refresh: config.RefreshConfig{Timeout: time.Minute},
			MongoDB: config.MongoDBConfig{DBName: "cropstats"},
		}
	}

	cfg := base()
	require.NoError(t, cfg.Validate())

	cases := map[string]func(c *config.Config){
		"mongodb without uri":      func(c *config.Config) { c.Data.Source = config.SourceMongoDB },
		"sheets without creds":     func(c *config.Config) { c.Data.Source = config.SourceSheets },
		"http without url":         func(c *config.Config) { c.Data.Source = config.SourceHTTP },
		"unknown source":           func(c *config.Config) { c.Data.Source = "ftp" },
		"empty admin key":          func(c *config.Config) { c.Admin.APIKey = "" },
		"bad log level":            func(c *config.Config) { c.Server.LogLevel = "loud" },
		"refresh without schedule": func(c *config.Config) { c.Refresh.Enabled = true },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := base()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	mongo := base()
	mongo.Data.Source = config.SourceMongoDB
	mongo.MongoDB.URI = "mongodb://localhost:27017"
	assert.NoError(t, mongo.Validate())
}
