package costbasis

import (
	"maps"
	"slices"
)

// AccountHoldings tracks the lots of every security held in one account.
//
// Only the calculator changes the holdings: the exported methods return copies.
type AccountHoldings struct {
	account Account
	queues  map[string]*fifoQueue // by ticker
}

// newAccountHoldings returns empty holdings for account.
func newAccountHoldings(account Account) *AccountHoldings {
	return &AccountHoldings{account: account, queues: make(map[string]*fifoQueue)}
}

// Account returns the account these holdings belong to.
func (h *AccountHoldings) Account() Account { return h.account }

func (h *AccountHoldings) queue(security Security) *fifoQueue {
	q, ok := h.queues[security.Ticker]
	if !ok {
		q = newFIFOQueue(security, h.account)
		h.queues[security.Ticker] = q
	}
	return q
}

// tickers returns the tickers of all the securities ever traded, sorted.
func (h *AccountHoldings) tickers() []string {
	return slices.Sorted(maps.Keys(h.queues))
}

// buy adds a lot of units for a total cost basis.
func (h *AccountHoldings) buy(security Security, on Date, units Quantity, totalCostBasis Money) {
	h.queue(security).buy(on, units, totalCostBasis)
}

// sell disposes of units for total proceeds and returns the sales matched
// against lots. Units that no lot could cover are kept as a pending sale.
func (h *AccountHoldings) sell(security Security, on Date, units Quantity, proceeds Money) []Sale {
	return h.queue(security).sell(on, units, proceeds)
}

// processPendingSales retries the pending sales of a security and returns the
// sales that could be matched this time.
func (h *AccountHoldings) processPendingSales(ticker string) []Sale {
	q, ok := h.queues[ticker]
	if !ok {
		return nil
	}
	return q.processPendingSales()
}

// Holdings returns copies of all lots with units remaining, security by security.
func (h *AccountHoldings) Holdings() []Lot {
	var holdings []Lot
	for _, ticker := range h.tickers() {
		holdings = append(holdings, h.queues[ticker].holdings()...)
	}
	return holdings
}

// Purchases returns copies of the lots of a security with units remaining.
func (h *AccountHoldings) Purchases(ticker string) []Lot {
	q, ok := h.queues[ticker]
	if !ok {
		return nil
	}
	return q.holdings()
}

// PendingSales returns copies of the sales not yet matched against any lot.
func (h *AccountHoldings) PendingSales() []Sale {
	var pending []Sale
	for _, ticker := range h.tickers() {
		pending = append(pending, h.queues[ticker].pendingSales()...)
	}
	return pending
}

// applySplit applies a split to the security it concerns, if held.
func (h *AccountHoldings) applySplit(split Split) {
	if q, ok := h.queues[split.Security]; ok {
		q.applySplit(split)
	}
}
