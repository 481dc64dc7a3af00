package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const devJWTSecret = "fallback-secret-key-for-dev-only"

// Config holds application configuration
type Config struct {
	// Server
	Env  string `env:"ENV" envDefault:"development"`
	Port string `env:"PORT" envDefault:"8080"`

	// Database
	DBDriver     string        `env:"DB_DRIVER" envDefault:"postgres"`
	DBHost       string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort       string        `env:"DB_PORT" envDefault:"5432"`
	DBUser       string        `env:"DB_USER" envDefault:"fintrack"`
	DBPassword   string        `env:"DB_PASSWORD" envDefault:"fintrack"`
	DBName       string        `env:"DB_NAME" envDefault:"fintrack"`
	DBSSLMode    string        `env:"DB_SSLMODE" envDefault:"disable"`
	SQLitePath   string        `env:"SQLITE_PATH" envDefault:"fintrack.db"`
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`

	// JWT
	JWTSecret        string        `env:"JWT_SECRET" envDefault:"fallback-secret-key-for-dev-only"`
	JWTExpirationDur time.Duration `env:"JWT_EXPIRES_IN" envDefault:"24h"`

	// Redis backs the login rate limiter and the summary cache; both are disabled when empty.
	RedisURL        string        `env:"REDIS_URL"`
	LoginRateLimit  int           `env:"LOGIN_RATE_LIMIT" envDefault:"5"`
	SummaryCacheTTL time.Duration `env:"SUMMARY_CACHE_TTL" envDefault:"5m"`

	// AMQP record change events; disabled when empty.
	AMQPURL      string `env:"AMQP_URL"`
	AMQPExchange string `env:"AMQP_EXCHANGE" envDefault:"fintrack.records"`

	// Records
	MergePolicy        string `env:"RECORD_MERGE_POLICY" envDefault:"presence"`
	HideForeignRecords bool   `env:"HIDE_FOREIGN_RECORDS" envDefault:"false"`
}

// Load loads configuration from the environment, reading a .env file first if one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (use %s or %s)", c.DBDriver, DriverPostgres, DriverSQLite)
	}

	switch c.MergePolicy {
	case "presence", "truthy":
	default:
		return fmt.Errorf("unsupported RECORD_MERGE_POLICY %q (use presence or truthy)", c.MergePolicy)
	}

	if c.JWTSecret == "" || (c.IsProduction() && c.JWTSecret == devJWTSecret) {
		return fmt.Errorf("JWT_SECRET must be set in %s", c.Env)
	}
	if c.JWTExpirationDur <= 0 {
		return fmt.Errorf("JWT_EXPIRES_IN must be positive, got %s", c.JWTExpirationDur)
	}
	return nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// PostgresURL returns the URL form of the Postgres DSN, as used by golang-migrate.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}
