package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Data sources the registry can be loaded from.
const (
	SourceFixtures = "fixtures"
	SourceMongoDB  = "mongodb"
	SourceSheets   = "sheets"
	SourceHTTP     = "http"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Admin    AdminConfig
	Refresh  RefreshConfig
	MongoDB  MongoDBConfig
	Sheets   SheetsConfig
	Snapshot SnapshotConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port               string
	LogLevel           string
	CORSAllowedOrigins []string
}

// DataConfig selects where the statistics dataset comes from.
type DataConfig struct {
	Source string
}

// AdminConfig protects the refresh endpoint.
type AdminConfig struct {
	APIKey string
}

// RefreshConfig holds scheduler-related settings.
type RefreshConfig struct {
	Enabled      bool
	CronSchedule string
	Timezone     string
	Timeout      time.Duration
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// SheetsConfig contains configuration required to interact with Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// SnapshotConfig points at a remote JSON dataset.
type SnapshotConfig struct {
	URL   string
	Token string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	enabled, err := strconv.ParseBool(getenvWithDefault("REFRESH_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("REFRESH_ENABLED: %w", err)
	}

	timeout, err := time.ParseDuration(getenvWithDefault("REFRESH_TIMEOUT", "2m"))
	if err != nil {
		return nil, fmt.Errorf("REFRESH_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:               getenvWithDefault("APP_PORT", "8080"),
			LogLevel:           getenvWithDefault("LOG_LEVEL", "info"),
			CORSAllowedOrigins: splitList(getenvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
		},
		Data: DataConfig{
			Source: strings.ToLower(getenvWithDefault("DATA_SOURCE", SourceFixtures)),
		},
		Admin: AdminConfig{
			APIKey: getenvWithDefault("ADMIN_API_KEY", "farmhandpro-refresh-2025"),
		},
		Refresh: RefreshConfig{
			Enabled:      enabled,
			CronSchedule: getenvWithDefault("REFRESH_CRON_SCHEDULE", "0 */6 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "America/Sao_Paulo"),
			Timeout:      timeout,
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "cropstats"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
		},
		Snapshot: SnapshotConfig{
			URL:   os.Getenv("SNAPSHOT_URL"),
			Token: os.Getenv("SNAPSHOT_TOKEN"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch c.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL %q must be one of debug, info, warn, error", c.Server.LogLevel)
	}

	if c.Admin.APIKey == "" {
		return errors.New("ADMIN_API_KEY must not be empty")
	}

	switch c.Data.Source {
	case SourceFixtures:
	case SourceMongoDB:
		if c.MongoDB.URI == "" {
			return errors.New("MONGODB_URI must be provided when DATA_SOURCE=mongodb")
		}
		if c.MongoDB.DBName == "" {
			return errors.New("MONGODB_DB_NAME must not be empty")
		}
	case SourceSheets:
		if c.Sheets.CredentialsPath == "" {
			return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided when DATA_SOURCE=sheets")
		}
		if c.Sheets.SpreadsheetID == "" {
			return errors.New("GOOGLE_SHEET_DATABASE_ID must be provided when DATA_SOURCE=sheets")
		}
	case SourceHTTP:
		if c.Snapshot.URL == "" {
			return errors.New("SNAPSHOT_URL must be provided when DATA_SOURCE=http")
		}
	default:
		return fmt.Errorf("DATA_SOURCE %q must be one of fixtures, mongodb, sheets, http", c.Data.Source)
	}

	if c.Refresh.Enabled {
		if c.Refresh.CronSchedule == "" {
			return errors.New("REFRESH_CRON_SCHEDULE must be provided")
		}
		if c.Refresh.Timezone == "" {
			return errors.New("TIMEZONE must be provided")
		}
	}

	if c.Refresh.Timeout <= 0 {
		return errors.New("REFRESH_TIMEOUT must be positive")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
