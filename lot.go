package costbasis

import "github.com/google/uuid"

// Lot is a single acquisition of a security in an account, used for cost basis
// calculations.
//
// A lot keeps its identity, acquisition date and account for its whole life.
// Only UnitsRemaining (by sales and splits) and CostBasisPerUnit (by splits)
// change, and only while the lot is owned by its queue. Lots returned by the
// Calculator are copies.
type Lot struct {
	ID            uuid.UUID
	Security      Security
	Account       Account
	DatePurchased Date
	// UnitsRemaining is the number of units not yet sold. It never goes below zero.
	UnitsRemaining Quantity
	// CostBasisPerUnit is the acquisition cost of one unit, commissions and fees
	// included. It is not necessarily the unit price paid.
	CostBasisPerUnit Money
}

func newLot(security Security, account Account, on Date, units Quantity, costBasisPerUnit Money) *Lot {
	return &Lot{
		ID:               uuid.New(),
		Security:         security,
		Account:          account,
		DatePurchased:    on,
		UnitsRemaining:   units,
		CostBasisPerUnit: costBasisPerUnit,
	}
}

// TotalCostBasis is the cost basis of the units remaining.
func (l Lot) TotalCostBasis() Money { return l.CostBasisPerUnit.Mul(l.UnitsRemaining) }

// MarketValue is the value of the units remaining at the given unit price.
func (l Lot) MarketValue(price Money) Money {
	return price.Mul(l.UnitsRemaining).Mul(l.Security.FuturesFactor())
}

// IsExhausted returns true when all the units of the lot have been sold.
func (l Lot) IsExhausted() bool { return !l.UnitsRemaining.IsPositive() }

// sell takes up to units out of the lot. It returns false if the lot is
// exhausted. Partial fills are not an error: the caller moves on to the next lot.
func (l *Lot) sell(on Date, units Quantity, unitSalePrice Money) (Sale, bool) {
	if l.IsExhausted() {
		return Sale{}, false
	}
	canSell := units.Min(l.UnitsRemaining)
	l.UnitsRemaining = l.UnitsRemaining.Sub(canSell)

	acquired := l.DatePurchased
	return Sale{
		Security:         l.Security,
		Account:          l.Account,
		DateSold:         on,
		DateAcquired:     &acquired,
		UnitsSold:        canSell,
		SalePricePerUnit: unitSalePrice,
		CostBasisPerUnit: l.CostBasisPerUnit,
	}, true
}

// lots is a list of lot copies.
type lots []Lot

// units is the total number of units remaining.
func (l lots) units() Quantity {
	var total Quantity
	for _, lot := range l {
		total = total.Add(lot.UnitsRemaining)
	}
	return total
}

// costBasis is the total cost basis of the units remaining, per currency.
func (l lots) costBasis() Amounts {
	var total Amounts
	for _, lot := range l {
		total = total.Add(lot.TotalCostBasis())
	}
	return total
}
