package pricing

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

const (
	// AmountPlaces is the number of fractional digits of every quoted amount.
	AmountPlaces = 8

	weiPerEther = 18
)

// ChainQuote is what a buyer needs to pay a USD total on one chain.
type ChainQuote struct {
	Chain   Chain
	Address string
	Amount  string
	URI     string
}

// uriFormatter renders the payment URI for an amount already rounded to
// AmountPlaces.
type uriFormatter func(address string, amount decimal.Decimal) string

var formatters = map[Chain]uriFormatter{
	Bitcoin: func(address string, amount decimal.Decimal) string {
		return fmt.Sprintf("bitcoin:%s?amount=%s", address, amount.StringFixed(AmountPlaces))
	},
	Ethereum: func(address string, amount decimal.Decimal) string {
		return fmt.Sprintf("ethereum:%s?value=%s", address, ToWei(amount))
	},
	Solana: func(address string, amount decimal.Decimal) string {
		return fmt.Sprintf("solana:%s?amount=%s", address, amount.StringFixed(AmountPlaces))
	},
}

// ToWei converts an ether amount to an integer count of wei, rounding to
// the nearest unit.
func ToWei(eth decimal.Decimal) string {
	return eth.Shift(weiPerEther).Round(0).StringFixed(0)
}

// Amount converts totalUSD into units of the chain's currency, rounded half
// away from zero to AmountPlaces in a single step. rate must be positive.
func Amount(totalUSD, rate decimal.Decimal) decimal.Decimal {
	return totalUSD.DivRound(rate, AmountPlaces)
}

// Quote prices totalUSD on chain using the table. totalUSD must not be
// negative; callers own that check.
func (t RateTable) Quote(totalUSD decimal.Decimal, chain Chain) (ChainQuote, error) {
	format, ok := formatters[chain]
	if !ok {
		return ChainQuote{}, errors.Wrapf(ErrUnsupportedChain, "%q", chain)
	}
	cfg, ok := t.Lookup(chain)
	if !ok {
		return ChainQuote{}, errors.Wrapf(ErrUnsupportedChain, "no rate configured for %s", chain)
	}

	amount := Amount(totalUSD, cfg.RateUSDPerUnit)
	return ChainQuote{
		Chain:   chain,
		Address: cfg.Address,
		Amount:  amount.StringFixed(AmountPlaces),
		URI:     format(cfg.Address, amount),
	}, nil
}
