package pricing

import (
	"strings"

	"github.com/go-faster/errors"
)

// Chain is a supported payment network.
type Chain string

const (
	Bitcoin  Chain = "bitcoin"
	Ethereum Chain = "ethereum"
	Solana   Chain = "solana"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

// Chains lists the supported networks in display order.
func Chains() []Chain {
	return []Chain{Bitcoin, Ethereum, Solana}
}

// ParseChain is the validation boundary for chain identifiers. It accepts
// the lower-case name in any case, and the ticker symbol.
func ParseChain(s string) (Chain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bitcoin", "btc":
		return Bitcoin, nil
	case "ethereum", "eth":
		return Ethereum, nil
	case "solana", "sol":
		return Solana, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedChain, "%q", s)
	}
}

// Symbol is the ticker of the chain's native unit.
func (c Chain) Symbol() string {
	switch c {
	case Bitcoin:
		return "BTC"
	case Ethereum:
		return "ETH"
	case Solana:
		return "SOL"
	default:
		return ""
	}
}

func (c Chain) String() string { return string(c) }
