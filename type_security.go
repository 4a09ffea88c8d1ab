package costbasis

import (
	"fmt"
	"strings"
)

// SecurityType classifies a security. Only Equity and Futures change how numbers
// are computed: equities are kept to whole shares after a split, futures are
// valued per contract.
type SecurityType int

const (
	Other SecurityType = iota
	Equity
	Option
	Bond
	Futures
	MutualFund
	ETF
	Reit
)

var securityTypeNames = []string{
	Other:      "other",
	Equity:     "equity",
	Option:     "option",
	Bond:       "bond",
	Futures:    "futures",
	MutualFund: "mutualfund",
	ETF:        "etf",
	Reit:       "reit",
}

func (t SecurityType) String() string {
	if t < 0 || int(t) >= len(securityTypeNames) {
		return "unknown"
	}
	return securityTypeNames[t]
}

// ParseSecurityType parses a string into a SecurityType.
func ParseSecurityType(s string) (SecurityType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range securityTypeNames {
		if name == s {
			return SecurityType(i), nil
		}
	}
	return Other, fmt.Errorf("unknown security type: %q", s)
}

// futuresContractSize is the number of units in one futures contract.
const futuresContractSize = 100

// Security represents a tradeable asset, identified by its ticker.
type Security struct {
	Ticker   string
	Name     string
	Type     SecurityType
	Currency string
}

// NewSecurity creates a security.
func NewSecurity(ticker, name string, typ SecurityType, currency string) Security {
	return Security{Ticker: ticker, Name: name, Type: typ, Currency: currency}
}

// FuturesFactor is the unit multiplier applied to compute market value.
// Futures prices are quoted per unit but a contract always holds 100 units.
func (s Security) FuturesFactor() Quantity {
	if s.Type == Futures {
		return Q(futuresContractSize)
	}
	return Q(1)
}

func (s Security) String() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Ticker
}

// CompareSecurities orders securities by name then by ticker. It is used when
// regrouping holdings by security.
func CompareSecurities(a, b Security) int {
	if c := strings.Compare(strings.ToLower(a.String()), strings.ToLower(b.String())); c != 0 {
		return c
	}
	return strings.Compare(a.Ticker, b.Ticker)
}

// Account is an account that holds securities. Cost basis is tracked separately
// for each account.
type Account struct {
	Name        string
	TaxDeferred bool // gains in this account are not taxable in the year they are realized.
}
