package config_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundexio/fundexio/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "s3cret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, slog.LevelInfo, cfg.App.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.True(t, cfg.Ledger.MinInvestment.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 3, cfg.Ledger.MaxAttempts)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.Origins)
	assert.Equal(t, "postgres://postgres:@localhost:5432/fundexio?sslmode=disable", cfg.ConnectionString())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "s3cret")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MIN_INVESTMENT", "250.50")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.App.LogLevel)
	assert.True(t, cfg.Ledger.MinInvestment.Equal(decimal.RequireFromString("250.50")))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.Origins)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	require.NoError(t, os.Unsetenv("ACCESS_TOKEN_SECRET"))

	_, err := config.Load()
	assert.Error(t, err)
}
