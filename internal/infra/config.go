package infra

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultSubmitGroupURL is the public form where new groups are proposed.
const DefaultSubmitGroupURL = "https://docs.google.com/forms/d/e/1FAIpQLSecRjjoJ3OGduMiqu1CMmIu0wFeK0BHezjHW383ipB_erYA6w/viewform?usp=sharing"

var (
	ErrMissingDatabaseURL     = errors.New("missing DB_URL")
	ErrUnsupportedDatabaseURL = errors.New("unsupported DB_URL scheme")
)

type Config struct {
	DatabaseURL string `env:"DB_URL"`
	Port        string `env:"PORT" envDefault:"8080"`

	PoolSize    int           `env:"DB_POOL_SIZE" envDefault:"10"`
	MaxOverflow int           `env:"DB_MAX_OVERFLOW" envDefault:"20"`
	PoolTimeout time.Duration `env:"DB_POOL_TIMEOUT" envDefault:"30s"`
	PoolRecycle time.Duration `env:"DB_POOL_RECYCLE" envDefault:"30m"`
	AutoMigrate bool          `env:"DB_AUTO_MIGRATE" envDefault:"false"`

	SubmitGroupURL       string `env:"SUBMIT_GROUP_URL"`
	CardColumns          int    `env:"CARD_COLUMNS" envDefault:"2"`
	StrictCategoryFilter bool   `env:"STRICT_CATEGORY_FILTER" envDefault:"false"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	GinMode   string `env:"GIN_MODE" envDefault:"release"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SubmitGroupURL == "" {
		cfg.SubmitGroupURL = DefaultSubmitGroupURL
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return ErrMissingDatabaseURL
	}
	if _, _, err := c.Dialect(); err != nil {
		return err
	}
	if c.PoolSize < 1 {
		return fmt.Errorf("DB_POOL_SIZE must be positive, got %d", c.PoolSize)
	}
	if c.MaxOverflow < 0 {
		return fmt.Errorf("DB_MAX_OVERFLOW must not be negative, got %d", c.MaxOverflow)
	}
	if c.PoolTimeout <= 0 {
		return fmt.Errorf("DB_POOL_TIMEOUT must be positive, got %s", c.PoolTimeout)
	}
	if c.CardColumns < 1 {
		return fmt.Errorf("CARD_COLUMNS must be positive, got %d", c.CardColumns)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	return nil
}

// MaxOpenConns is the hard ceiling of the pool: steady size plus overflow.
func (c Config) MaxOpenConns() int {
	return c.PoolSize + c.MaxOverflow
}

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Dialect reports which driver DatabaseURL targets and the DSN that driver expects.
func (c Config) Dialect() (string, string, error) {
	dsn := strings.TrimSpace(c.DatabaseURL)
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(dsn, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("%w: empty sqlite path", ErrUnsupportedDatabaseURL)
		}
		return DialectSQLite, path, nil
	case strings.HasPrefix(dsn, "file:"):
		return DialectSQLite, dsn, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDatabaseURL, redact(dsn))
	}
}

// redact keeps the scheme and drops everything that might carry credentials.
func redact(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i] + "://..."
	}
	if len(dsn) > 8 {
		return dsn[:8] + "..."
	}
	return dsn
}
