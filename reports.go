package costbasis

import "time"

// HoldingsReport is a view of the open lots at the calculator's cutoff date,
// grouped by security type then by security.
type HoldingsReport struct {
	Date           Date
	Time           time.Time // Generation time
	Types          []TypeHolding
	CostBasis      Amounts
	MarketValue    Amounts // Of the securities with a quote only.
	UnrealizedGain Amounts
}

// TypeHolding is the holdings of one security type.
type TypeHolding struct {
	Type           SecurityType
	Securities     []SecurityHolding
	CostBasis      Amounts
	MarketValue    Amounts
	UnrealizedGain Amounts
}

// SecurityHolding is the holding of one security, across the selected accounts.
// Its amounts are in the security's currency.
type SecurityHolding struct {
	Security       Security
	Units          Quantity
	CostBasis      Money
	Priced         bool // false if there is no quote for the security.
	Price          Money
	MarketValue    Money
	UnrealizedGain Money
	Lots           []Lot
}

// NewHoldingsReport builds the holdings report of the accounts accepted by
// filter. A nil filter accepts every account.
//
// Securities without a quote are counted in the cost basis but have no market
// value and no unrealized gain. Totals are kept per currency.
func NewHoldingsReport(calc *Calculator, quotes Quotes, filter func(Account) bool) *HoldingsReport {
	report := &HoldingsReport{
		Date: calc.Cutoff(),
		Time: time.Now(),
	}
	for _, group := range calc.HoldingsBySecurityType(filter) {
		th := TypeHolding{Type: group.Type}
		for _, g := range calc.RegroupBySecurity(group) {
			sh := SecurityHolding{
				Security:  *g.Security,
				Units:     g.Units(),
				CostBasis: g.CostBasis().In(g.Security.Currency),
				Lots:      g.Purchases,
			}
			if price, ok := quotes.Price(*g.Security); ok {
				sh.Priced = true
				sh.Price = price
				for _, lot := range g.Purchases {
					sh.MarketValue = sh.MarketValue.Add(lot.MarketValue(price))
				}
				sh.UnrealizedGain = sh.MarketValue.Sub(sh.CostBasis)
				th.MarketValue = th.MarketValue.Add(sh.MarketValue)
				th.UnrealizedGain = th.UnrealizedGain.Add(sh.UnrealizedGain)
			}
			th.CostBasis = th.CostBasis.Add(sh.CostBasis)
			th.Securities = append(th.Securities, sh)
		}
		report.CostBasis = report.CostBasis.Plus(th.CostBasis)
		report.MarketValue = report.MarketValue.Plus(th.MarketValue)
		report.UnrealizedGain = report.UnrealizedGain.Plus(th.UnrealizedGain)
		report.Types = append(report.Types, th)
	}
	return report
}

// GainsReport is the realized gains, by holding period.
type GainsReport struct {
	Date    Date      // cutoff date
	Time    time.Time // Generation time
	Options CapitalGainsOptions
	*CapitalGains
	Pending int // number of sales without lots.
}

// NewGainsReport builds the gains report of the sales computed by calc.
func NewGainsReport(calc *Calculator, opts CapitalGainsOptions) *GainsReport {
	cg := NewCapitalGains(calc, opts)
	pending := 0
	for _, s := range cg.Unknown {
		if s.IsPending() {
			pending++
		}
	}
	return &GainsReport{
		Date:         calc.Cutoff(),
		Time:         time.Now(),
		Options:      opts,
		CapitalGains: cg,
		Pending:      pending,
	}
}
