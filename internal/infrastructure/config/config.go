package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port            string        `env:"PORT,             default=8080"`
	Env             string        `env:"ENV,              default=development"`
	JWTSecret       string        `env:"JWT_SECRET"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	TokenTTL        time.Duration `env:"TOKEN_TTL,        default=24h"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=15s"`

	// AdminEmails lists the accounts that register with the admin role.
	AdminEmails []string `env:"ADMIN_EMAILS"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Ledger LedgerConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017/?replicaSet=rs0"`
	Database string `env:"MONGO_DB,  default=connects"`
}

type RedisConfig struct {
	Enabled  bool   `env:"REDIS_ENABLED,  default=true"`
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// LedgerConfig tunes the connects ledger and directory transactions.
type LedgerConfig struct {
	StarterConnects int64         `env:"LEDGER_STARTER_CONNECTS,  default=50"`
	TxnMaxAttempts  int           `env:"LEDGER_TXN_MAX_ATTEMPTS,  default=5"`
	IdempotencyTTL  time.Duration `env:"LEDGER_IDEMPOTENCY_TTL,   default=24h"`
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	if c.IsProduction() && c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is required in production")
	}
	if c.Ledger.StarterConnects < 0 {
		return fmt.Errorf("config: LEDGER_STARTER_CONNECTS must not be negative")
	}
	if c.Ledger.TxnMaxAttempts < 1 {
		return fmt.Errorf("config: LEDGER_TXN_MAX_ATTEMPTS must be at least 1")
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
// It panics on malformed or invalid settings.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadFrom reads configuration from l.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
