package pricing

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var ErrInvalidRate = errors.New("invalid rate")

// ChainConfig is the static pricing input for one chain. Address is opaque
// and not checked against the chain's address format.
type ChainConfig struct {
	RateUSDPerUnit decimal.Decimal
	Address        string
}

// RateTable maps each supported chain to its rate and recipient. Build it
// with NewRateTable so every rate is known to be positive.
type RateTable struct {
	entries map[Chain]ChainConfig
}

func NewRateTable(entries map[Chain]ChainConfig) (RateTable, error) {
	t := RateTable{entries: make(map[Chain]ChainConfig, len(entries))}
	for chain, cfg := range entries {
		if _, ok := formatters[chain]; !ok {
			return RateTable{}, errors.Wrapf(ErrUnsupportedChain, "%q", chain)
		}
		if !cfg.RateUSDPerUnit.IsPositive() {
			return RateTable{}, errors.Wrapf(ErrInvalidRate, "%s rate %s", chain, cfg.RateUSDPerUnit)
		}
		t.entries[chain] = cfg
	}
	return t, nil
}

func (t RateTable) Lookup(chain Chain) (ChainConfig, bool) {
	cfg, ok := t.entries[chain]
	return cfg, ok
}
