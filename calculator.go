package costbasis

import (
	"cmp"
	"fmt"
	"log"
	"maps"
	"slices"
)

// Calculator computes realized sales and open lots for a whole ledger, using
// first-in first-out matching of disposals against acquisitions, per account.
//
// All the computation happens in NewCalculator. The Calculator then only
// answers queries. It owns the holdings of every account and never hands out
// references to its internal lots.
type Calculator struct {
	cutoff   Date
	holdings map[string]*AccountHoldings // by account name
	sales    []Sale
	problems []error
}

// NewCalculator computes the cost basis of every activity in ledger dated on or
// before cutoff.
func NewCalculator(ledger Ledger, cutoff Date) *Calculator {
	c := &Calculator{
		cutoff:   cutoff,
		holdings: make(map[string]*AccountHoldings),
	}
	securities := slices.SortedFunc(slices.Values(ledger.Securities()), func(a, b Security) int {
		return cmp.Compare(a.Ticker, b.Ticker)
	})
	for _, security := range securities {
		c.calculate(ledger, security)
	}
	return c
}

// calculate processes all the activities of a single security.
func (c *Calculator) calculate(ledger Ledger, security Security) {
	splits := slices.Clone(ledger.Splits(security.Ticker))
	slices.SortStableFunc(splits, func(a, b Split) int { return a.Date.Compare(b.Date) })

	for _, a := range ledger.Activities(security.Ticker, c.cutoff) {
		splits = c.applySplits(splits, a.Date)

		if !a.Units.IsPositive() {
			continue
		}

		switch {
		case a.Type.IsAcquisition() && !a.IsTransfer():
			holdings := c.holding(a.Account)
			holdings.buy(security, a.Date, a.Units, a.Amount)
			c.sales = append(c.sales, holdings.processPendingSales(security.Ticker)...)

		case a.Type.IsAcquisition():
			// The units come with their lots, moved when processing the other side.
			if to := a.Transfer.Counterpart; to == nil || !to.Type.IsDisposal() {
				c.reportMalformedTransfer(a)
			}

		case a.Type.IsDisposal() && !a.IsTransfer():
			c.sales = append(c.sales, c.holding(a.Account).sell(security, a.Date, a.Units, a.Amount)...)

		case a.Type.IsDisposal():
			c.transfer(security, a)
		}
	}

	c.applySplits(splits, c.cutoff)
}

// transfer moves lots from the account of a disposal to the account of its
// counterpart, keeping their acquisition date and cost basis.
func (c *Calculator) transfer(security Security, from *Activity) {
	to := from.Transfer.Counterpart
	if to == nil || to.Type != Add {
		c.reportMalformedTransfer(from)
		return
	}

	source := c.holding(from.Account)
	target := c.holding(to.Account)
	for _, moved := range source.sell(security, from.Date, from.Units, M(0, security.Currency)) {
		if moved.DateAcquired == nil {
			continue
		}
		target.buy(security, *moved.DateAcquired, moved.UnitsSold, moved.TotalCostBasis())
		c.sales = append(c.sales, target.processPendingSales(security.Ticker)...)
	}
}

func (c *Calculator) reportMalformedTransfer(a *Activity) {
	err := fmt.Errorf("%w: %s %s %s of %s in %q: counterpart %q", ErrMalformedTransfer, a.Date, a.Type, a.Units, a.Security, a.Account.Name, a.Transfer.ID)
	log.Printf("skipping %v", err)
	c.problems = append(c.problems, err)
}

// applySplits applies, in every account, the splits dated strictly before on,
// and returns the splits left.
func (c *Calculator) applySplits(splits []Split, on Date) []Split {
	for len(splits) > 0 && splits[0].Date.Before(on) {
		for _, name := range c.accountNames() {
			c.holdings[name].applySplit(splits[0])
		}
		splits = splits[1:]
	}
	return splits
}

func (c *Calculator) accountNames() []string {
	return slices.Sorted(maps.Keys(c.holdings))
}

// Cutoff returns the date up to which activities were processed.
func (c *Calculator) Cutoff() Date { return c.cutoff }

// Sales returns all the sales matched against lots, in the order they were
// realized, security by security.
func (c *Calculator) Sales() []Sale { return slices.Clone(c.sales) }

// Problems returns the activities that could not be processed. They are skipped
// and the rest of the ledger is processed normally.
func (c *Calculator) Problems() []error { return slices.Clone(c.problems) }

// Holding returns the holdings of an account, empty if the account never held
// anything.
func (c *Calculator) Holding(account Account) *AccountHoldings {
	if h, ok := c.holdings[account.Name]; ok {
		return h
	}
	return newAccountHoldings(account)
}

// holding returns the holdings of an account, registering empty ones on first use.
func (c *Calculator) holding(account Account) *AccountHoldings {
	h, ok := c.holdings[account.Name]
	if !ok {
		h = newAccountHoldings(account)
		c.holdings[account.Name] = h
	}
	return h
}

// AccountHoldings returns the holdings of every account, sorted by account name.
func (c *Calculator) AccountHoldings() []*AccountHoldings {
	var all []*AccountHoldings
	for _, name := range c.accountNames() {
		all = append(all, c.holdings[name])
	}
	return all
}

// PendingSales returns the sales that could not be matched against any lot in
// the accounts accepted by filter. A nil filter accepts every account.
//
// A pending sale means more units were disposed of than were ever recorded as
// acquired: it is a sign of missing or misordered data in the ledger.
func (c *Calculator) PendingSales(filter func(Account) bool) []Sale {
	var pending []Sale
	for _, h := range c.AccountHoldings() {
		if filter != nil && !filter(h.Account()) {
			continue
		}
		pending = append(pending, h.PendingSales()...)
	}
	return pending
}
