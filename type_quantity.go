package costbasis

import "github.com/shopspring/decimal"

// number is what Q and M accept.
type number interface {
	int | int64 | float64 | decimal.Decimal
}

func toDecimal[T number](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case float64:
		return decimal.NewFromFloat(v)
	}
	panic("unreachable")
}

// Quantity is a number of units of a security. It is exact and may be
// fractional: mutual fund shares, or units left by an uneven split.
type Quantity struct {
	value decimal.Decimal
}

// Q creates a Quantity.
func Q[T number](value T) Quantity { return Quantity{toDecimal(value)} }

func (q Quantity) Add(p Quantity) Quantity { return Quantity{q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity { return Quantity{q.value.Sub(p.value)} }
func (q Quantity) Mul(p Quantity) Quantity { return Quantity{q.value.Mul(p.value)} }
func (q Quantity) Div(p Quantity) Quantity { return Quantity{q.value.Div(p.value)} }

// Floor is the number of whole units.
func (q Quantity) Floor() Quantity { return Quantity{q.value.Floor()} }

// Round rounds to places decimal places, half away from zero.
func (q Quantity) Round(places int32) Quantity { return Quantity{q.value.Round(places)} }

// Min returns the smallest of q and p.
func (q Quantity) Min(p Quantity) Quantity {
	if p.value.LessThan(q.value) {
		return p
	}
	return q
}

// Equal compares values: Q(1) equals Q(1.0).
func (q Quantity) Equal(p Quantity) bool { return q.value.Equal(p.value) }
func (q Quantity) IsZero() bool          { return q.value.IsZero() }
func (q Quantity) IsPositive() bool      { return q.value.IsPositive() }
func (q Quantity) IsNegative() bool      { return q.value.IsNegative() }
func (q Quantity) IsInteger() bool       { return q.value.IsInteger() }

func (q Quantity) Decimal() decimal.Decimal { return q.value }
func (q Quantity) String() string           { return q.value.String() }

func (q Quantity) MarshalJSON() ([]byte, error) { return q.value.MarshalJSON() }
