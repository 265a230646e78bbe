package config

import (
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/crypto-storefront/internal/pricing"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "LOG_LEVEL", "HTTP_PORT", "GRPC_PORT", "BTC_USD_RATE", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 8081, cfg.GRPCPort)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.BTC.RateUSD.Equal(decimal.NewFromInt(60000)))
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ETH_USD_RATE", "2500.5")
	t.Setenv("SOL_ADDRESS", "sol-test")
	t.Setenv("GRPC_PORT", "not-a-number")
	t.Setenv("BTC_USD_RATE", "lots")

	cfg := Load()
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 8081, cfg.GRPCPort)
	assert.Equal(t, "2500.5", cfg.ETH.RateUSD.String())
	assert.Equal(t, "sol-test", cfg.SOL.Address)
	assert.True(t, cfg.BTC.RateUSD.Equal(decimal.NewFromInt(60000)))
}

func TestRates(t *testing.T) {
	t.Setenv("BTC_USD_RATE", "")
	cfg := Load()

	table, err := cfg.Rates()
	require.NoError(t, err)
	for _, chain := range pricing.Chains() {
		_, ok := table.Lookup(chain)
		assert.True(t, ok, chain)
	}

	cfg.SOL.RateUSD = decimal.Zero
	_, err = cfg.Rates()
	assert.True(t, errors.Is(err, pricing.ErrInvalidRate))
}
