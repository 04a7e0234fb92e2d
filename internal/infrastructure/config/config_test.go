package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "connects", cfg.Mongo.Database)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, int64(50), cfg.Ledger.StarterConnects)
	assert.Equal(t, 5, cfg.Ledger.TxnMaxAttempts)
	assert.Equal(t, 24*time.Hour, cfg.Ledger.IdempotencyTTL)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.AdminEmails)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":                    "9090",
		"REDIS_ENABLED":           "false",
		"LEDGER_STARTER_CONNECTS": "0",
		"LEDGER_TXN_MAX_ATTEMPTS": "10",
		"TOKEN_TTL":               "1h",
		"ADMIN_EMAILS":            "ops@example.com,root@example.com",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, int64(0), cfg.Ledger.StarterConnects)
	assert.Equal(t, 10, cfg.Ledger.TxnMaxAttempts)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"ops@example.com", "root@example.com"}, cfg.AdminEmails)
}

func TestLoadFrom_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"production without secret": {"ENV": "production"},
		"negative starter pack":     {"LEDGER_STARTER_CONNECTS": "-1"},
		"zero attempts":             {"LEDGER_TXN_MAX_ATTEMPTS": "0"},
		"malformed duration":        {"TOKEN_TTL": "soon"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFrom(context.Background(), envconfig.MapLookuper(env))
			assert.Error(t, err)
		})
	}
}
