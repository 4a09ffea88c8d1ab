package costbasis

import (
	"slices"
	"sort"
)

// fifoQueue is the ordered list of lots of one security in one account, and the
// sales waiting for lots to cover them.
//
// Lots are kept sorted by purchase date. Lots bought on the same day keep their
// insertion order. Exhausted lots are kept in the queue but never sold again.
type fifoQueue struct {
	security Security
	account  Account
	lots     []*Lot
	pending  []Sale
}

func newFIFOQueue(security Security, account Account) *fifoQueue {
	return &fifoQueue{security: security, account: account}
}

// buy inserts a new lot after every lot purchased on or before the same date.
func (q *fifoQueue) buy(on Date, units Quantity, totalCostBasis Money) {
	lot := newLot(q.security, q.account, on, units, totalCostBasis.Div(units))
	i := sort.Search(len(q.lots), func(i int) bool { return q.lots[i].DatePurchased.After(on) })
	q.lots = slices.Insert(q.lots, i, lot)
}

// sell sells units, oldest lots first, for a total of proceeds.
//
// If the lots cannot cover all the units and the uncovered part is at least one
// whole unit, it is recorded as a pending sale. A smaller shortfall is a
// rounding artifact and is dropped.
func (q *fifoQueue) sell(on Date, units Quantity, proceeds Money) []Sale {
	return q.sellAt(on, units, proceeds.Div(units))
}

func (q *fifoQueue) sellAt(on Date, units Quantity, unitSalePrice Money) []Sale {
	var sales []Sale
	for _, lot := range q.lots {
		if !units.IsPositive() {
			break
		}
		sale, ok := lot.sell(on, units, unitSalePrice)
		if !ok {
			continue
		}
		units = units.Sub(sale.UnitsSold)
		sales = append(sales, sale)
	}

	if units.Floor().IsPositive() {
		q.pending = append(q.pending, Sale{
			Security:         q.security,
			Account:          q.account,
			DateSold:         on,
			UnitsSold:        units,
			SalePricePerUnit: unitSalePrice,
			CostBasisPerUnit: M(0, unitSalePrice.Currency()),
			pending:          true,
		})
	}
	return sales
}

// processPendingSales retries every pending sale, in order.
// Sales still uncovered are pending again.
func (q *fifoQueue) processPendingSales() []Sale {
	pending := q.pending
	q.pending = nil

	var sales []Sale
	for _, p := range pending {
		sales = append(sales, q.sellAt(p.DateSold, p.UnitsSold, p.SalePricePerUnit)...)
	}
	return sales
}

// holdings returns copies of the lots with units remaining.
func (q *fifoQueue) holdings() []Lot {
	var holdings []Lot
	for _, lot := range q.lots {
		if !lot.IsExhausted() {
			holdings = append(holdings, *lot)
		}
	}
	return holdings
}

// pendingSales returns a copy of the pending sales.
func (q *fifoQueue) pendingSales() []Sale { return slices.Clone(q.pending) }

// units is the total number of units held.
func (q *fifoQueue) units() Quantity {
	var total Quantity
	for _, lot := range q.lots {
		total = total.Add(lot.UnitsRemaining)
	}
	return total
}

// wholeSharePrecision is the number of decimal places kept when equity lots are
// scaled back to a whole number of shares after a split.
const wholeSharePrecision = 5

// applySplit scales the lots purchased before the split, and the pending sales
// dated before the split. Units bought on the day of the split are already
// counted in post-split shares.
//
// Equities cannot be held in fractional shares: the fractional part created by
// the split is paid out in cash by the broker, so every lot is scaled down
// proportionally to keep a whole number of shares in the account. The cost basis
// per unit is not adjusted for that payout.
func (q *fifoQueue) applySplit(split Split) {
	num, den := Q(split.Numerator), Q(split.Denominator)

	for _, lot := range q.lots {
		if lot.IsExhausted() || !lot.DatePurchased.Before(split.Date) {
			continue
		}
		lot.UnitsRemaining = lot.UnitsRemaining.Mul(num).Div(den)
		lot.CostBasisPerUnit = lot.CostBasisPerUnit.Mul(den).Div(num)
	}

	for i := range q.pending {
		p := &q.pending[i]
		if p.DateSold.Before(split.Date) {
			p.UnitsSold = p.UnitsSold.Mul(num).Div(den)
			p.SalePricePerUnit = p.SalePricePerUnit.Mul(den).Div(num)
		}
	}

	if q.security.Type != Equity {
		return
	}
	total := q.units()
	if total.IsInteger() {
		return
	}
	adjustment := total.Floor().Div(total)
	for _, lot := range q.lots {
		if lot.IsExhausted() {
			continue
		}
		lot.UnitsRemaining = lot.UnitsRemaining.Mul(adjustment).Round(wholeSharePrecision)
	}
}
