package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidConfig               = errors.New("invalid configuration")
)

// Catalog sources.
const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
	CatalogSourceSQLite   = "sqlite"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string   `mapstructure:"env"`        // current application environment (local, dev, production etc)
	TelegramAPIToken string   `mapstructure:"-"`          // Telegram API token loaded from environment
	LogLevel         string   `mapstructure:"log_level"`  // overrides the default log level of the environment
	AssetsDir        string   `mapstructure:"assets_dir"` // directory image references are resolved against
	Catalog          Catalog  `mapstructure:"catalog"`    // where the animals come from
	Quiz             Quiz     `mapstructure:"quiz"`       // quiz shape
	Sessions         Sessions `mapstructure:"sessions"`   // in-memory session housekeeping
	HTTP             HTTP     `mapstructure:"http"`       // health endpoint
	DB               DB       `mapstructure:"database"`   // database configuration section
}

// Catalog selects and locates the animal catalog.
type Catalog struct {
	Source      string `mapstructure:"source"`        // file, postgres or sqlite
	Path        string `mapstructure:"path"`          // JSON catalog file
	SQLitePath  string `mapstructure:"sqlite_path"`   // SQLite database file
	SeedOnStart bool   `mapstructure:"seed_on_start"` // upsert the JSON catalog into the database at startup
}

// Quiz contains quiz generation parameters.
type Quiz struct {
	QuestionCount int `mapstructure:"question_count"` // questions per quiz
}

// Sessions contains parameters of idle session eviction.
type Sessions struct {
	IdleTTL       time.Duration `mapstructure:"idle_ttl"`       // sessions untouched for longer are dropped
	SweepSchedule string        `mapstructure:"sweep_schedule"` // cron spec of the sweeper
}

// HTTP contains the health endpoint listener settings.
type HTTP struct {
	Addr string `mapstructure:"addr"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from a .env file, config files and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists.
	_ = godotenv.Load()

	return load(viper.New(), "./config")
}

func load(v *viper.Viper, configDir string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("log_level", "")
	v.SetDefault("assets_dir", "assets")
	v.SetDefault("catalog.source", CatalogSourceFile)
	v.SetDefault("catalog.path", "assets/data/animals.json")
	v.SetDefault("catalog.sqlite_path", "animals.db")
	v.SetDefault("catalog.seed_on_start", true)
	v.SetDefault("quiz.question_count", 3)
	v.SetDefault("sessions.idle_ttl", "24h")
	v.SetDefault("sessions.sweep_schedule", "@every 30m")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("database.max_connections", 5)
	v.SetDefault("database.max_conn_lifetime", "30m")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("log_level", "LOG_LEVEL")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.DB.URL = v.GetString("database_url")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that cannot be fixed by defaults.
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogSourceFile, CatalogSourceSQLite:
	case CatalogSourcePostgres:
		if c.DB.URL == "" {
			return ErrMissingEnvironmentVariables
		}
	default:
		return fmt.Errorf("%w: unknown catalog source %q", ErrInvalidConfig, c.Catalog.Source)
	}

	if c.Quiz.QuestionCount <= 0 {
		return fmt.Errorf("%w: quiz.question_count must be positive", ErrInvalidConfig)
	}
	if c.Sessions.IdleTTL <= 0 {
		return fmt.Errorf("%w: sessions.idle_ttl must be positive", ErrInvalidConfig)
	}

	return nil
}
