package costbasis

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in a currency: a total cost, proceeds, or a price per unit.
//
// The empty currency is a wildcard: it adopts the currency of the other operand,
// so that M(0, "") is the neutral element of Add.
type Money struct {
	value decimal.Decimal // in major units
	cur   string          // ISO 4217 code
}

// M creates a Money in the given currency.
func M[T number](value T, currency string) Money { return Money{toDecimal(value), currency} }

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) Add(n Money) Money { return Money{m.value.Add(n.value), join(m, n)} }
func (m Money) Sub(n Money) Money { return Money{m.value.Sub(n.value), join(m, n)} }

// Mul returns the amount of units at price m.
func (m Money) Mul(units Quantity) Money { return Money{m.value.Mul(units.value), m.cur} }

// Div returns the price per unit of an amount m paid for units.
func (m Money) Div(units Quantity) Money { return Money{m.value.Div(units.value), m.cur} }

func (m Money) Equal(n Money) bool { return m.cur == n.cur && m.value.Equal(n.value) }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsPositive() bool   { return m.value.IsPositive() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }

// join returns the currency of an operation between m and n. Mixing two
// currencies is a programming error: the calculator never converts.
func join(m, n Money) string {
	switch {
	case m.cur == "":
		return n.cur
	case n.cur == "" || n.cur == m.cur:
		return m.cur
	}
	panic("currency mismatch: " + m.cur + " != " + n.cur)
}

// String formats the amount rounded to the currency's minor unit, like "$1,234.50".
// Amounts without currency are printed with two decimals.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	c := money.GetCurrency(m.cur)
	if c == nil {
		return m.value.StringFixed(2) + " " + m.cur
	}
	minor := m.value.Shift(int32(c.Fraction)).Round(0)
	return c.Formatter().Format(minor.IntPart())
}

// SignedString is like String with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	switch {
	case m.value.IsZero():
		return "-"
	case m.value.IsPositive():
		return "+" + m.String()
	}
	return m.String()
}
