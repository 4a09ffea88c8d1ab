package costbasis

// Sale is the realized part of a disposal matched against one lot.
//
// A Sale with a nil DateAcquired has no known lot information: it is either a
// consolidation of sales from different lots (reported as "various"), or a
// pending sale that no lot could cover yet.
type Sale struct {
	Security         Security
	Account          Account
	DateSold         Date
	DateAcquired     *Date
	UnitsSold        Quantity
	SalePricePerUnit Money
	CostBasisPerUnit Money

	pending bool
}

// IsPending returns true if the sale could not be matched against any lot.
func (s Sale) IsPending() bool { return s.pending }

// Proceeds is the total amount received for the units sold.
func (s Sale) Proceeds() Money { return s.SalePricePerUnit.Mul(s.UnitsSold) }

// TotalCostBasis is the cost basis of the units sold.
func (s Sale) TotalCostBasis() Money { return s.CostBasisPerUnit.Mul(s.UnitsSold) }

// Gain is the realized gain (or loss if negative).
func (s Sale) Gain() Money { return s.Proceeds().Sub(s.TotalCostBasis()) }

// HoldingDays is the number of days the units were held, and false if the
// acquisition date is unknown.
func (s Sale) HoldingDays() (int, bool) {
	if s.DateAcquired == nil {
		return 0, false
	}
	return s.DateSold.DaysSince(*s.DateAcquired), true
}

// Consolidate merges other into s.
//
// Fields that disagree are not averaged: a different acquisition date makes it
// unknown ("various") and zeroes the cost basis, a different sale price or cost
// basis is zeroed.
func (s *Sale) Consolidate(other Sale) {
	s.UnitsSold = s.UnitsSold.Add(other.UnitsSold)

	if !sameDate(s.DateAcquired, other.DateAcquired) {
		s.DateAcquired = nil
		s.CostBasisPerUnit = M(0, s.CostBasisPerUnit.Currency())
	}
	if !s.SalePricePerUnit.Equal(other.SalePricePerUnit) {
		s.SalePricePerUnit = M(0, s.SalePricePerUnit.Currency())
	}
	if !s.CostBasisPerUnit.Equal(other.CostBasisPerUnit) {
		s.CostBasisPerUnit = M(0, s.CostBasisPerUnit.Currency())
	}
}

func sameDate(a, b *Date) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Sales is a list of sales.
type Sales []Sale

// Units returns the total number of units sold.
func (s Sales) Units() Quantity {
	var total Quantity
	for _, sale := range s {
		total = total.Add(sale.UnitsSold)
	}
	return total
}

// Proceeds returns the total proceeds, per currency.
func (s Sales) Proceeds() Amounts {
	var total Amounts
	for _, sale := range s {
		total = total.Add(sale.Proceeds())
	}
	return total
}

// CostBasis returns the total cost basis, per currency.
func (s Sales) CostBasis() Amounts {
	var total Amounts
	for _, sale := range s {
		total = total.Add(sale.TotalCostBasis())
	}
	return total
}

// Gain returns the total realized gain, per currency.
func (s Sales) Gain() Amounts {
	var total Amounts
	for _, sale := range s {
		total = total.Add(sale.Gain())
	}
	return total
}
