package config

import (
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/crypto-storefront/internal/pricing"
)

type Config struct {
	AppEnv   string
	LogLevel string

	GRPCPort int
	HTTPPort int

	ShutdownTimeout       time.Duration
	CheckoutMaxConcurrent int
	QRSize                int

	BTC Chain
	ETH Chain
	SOL Chain
}

// Chain is the static rate and recipient for one payment network.
type Chain struct {
	RateUSD decimal.Decimal
	Address string
}

func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		HTTPPort: getEnvInt("HTTP_PORT", 8080),
		GRPCPort: getEnvInt("GRPC_PORT", 8081),

		ShutdownTimeout:       time.Duration(getEnvInt("SHUTDOWN_TIMEOUT", 10)) * time.Second,
		CheckoutMaxConcurrent: getEnvInt("CHECKOUT_MAX_CONCURRENT", 10),
		QRSize:                getEnvInt("QR_SIZE", 180),

		BTC: Chain{
			RateUSD: getEnvDecimal("BTC_USD_RATE", decimal.NewFromInt(60000)),
			Address: getEnv("BTC_ADDRESS", "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh"),
		},
		ETH: Chain{
			RateUSD: getEnvDecimal("ETH_USD_RATE", decimal.NewFromInt(3000)),
			Address: getEnv("ETH_ADDRESS", "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"),
		},
		SOL: Chain{
			RateUSD: getEnvDecimal("SOL_USD_RATE", decimal.NewFromInt(150)),
			Address: getEnv("SOL_ADDRESS", "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"),
		},
	}
}

// Rates builds the pricing table. It fails on a non-positive rate.
func (c Config) Rates() (pricing.RateTable, error) {
	return pricing.NewRateTable(map[pricing.Chain]pricing.ChainConfig{
		pricing.Bitcoin:  {RateUSDPerUnit: c.BTC.RateUSD, Address: c.BTC.Address},
		pricing.Ethereum: {RateUSDPerUnit: c.ETH.RateUSD, Address: c.ETH.Address},
		pricing.Solana:   {RateUSDPerUnit: c.SOL.RateUSD, Address: c.SOL.Address},
	})
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvDecimal(key string, def decimal.Decimal) decimal.Decimal {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		return def
	}
	return d
}
