package costbasis

import (
	"slices"
	"strings"
)

// Amounts is a total of money across currencies, one Money per currency
// sorted by currency code. The zero value is an empty total.
//
// Totals over securities of different currencies are never converted: a
// portfolio holding USD and EUR securities has a cost basis in both.
type Amounts []Money

// Sum returns the total of ms.
func Sum(ms ...Money) Amounts {
	var a Amounts
	for _, m := range ms {
		a = a.Add(m)
	}
	return a
}

// Add returns a new total with m added to the amount in m's currency.
func (a Amounts) Add(m Money) Amounts {
	if m.cur == "" && m.IsZero() {
		return a
	}
	i, found := slices.BinarySearchFunc(a, m.cur, func(x Money, cur string) int { return strings.Compare(x.cur, cur) })
	res := slices.Clone(a)
	if found {
		res[i] = res[i].Add(m)
		return res
	}
	return slices.Insert(res, i, m)
}

// Plus returns the sum of both totals.
func (a Amounts) Plus(b Amounts) Amounts {
	for _, m := range b {
		a = a.Add(m)
	}
	return a
}

// Sub returns a new total with m subtracted from the amount in m's currency.
func (a Amounts) Sub(m Money) Amounts { return a.Add(Money{m.value.Neg(), m.cur}) }

// In returns the amount in currency, zero if there is none.
func (a Amounts) In(currency string) Money {
	for _, m := range a {
		if m.cur == currency {
			return m
		}
	}
	return M(0, currency)
}

// Currencies returns the currency codes of the total, sorted.
func (a Amounts) Currencies() []string {
	curs := make([]string, len(a))
	for i, m := range a {
		curs[i] = m.cur
	}
	return curs
}

// IsZero returns true if every amount is zero.
func (a Amounts) IsZero() bool {
	for _, m := range a {
		if !m.IsZero() {
			return false
		}
	}
	return true
}

// Equal returns true if both totals have the same amount in every currency.
func (a Amounts) Equal(b Amounts) bool {
	for _, m := range a {
		if !b.In(m.cur).value.Equal(m.value) {
			return false
		}
	}
	for _, m := range b {
		if !a.In(m.cur).value.Equal(m.value) {
			return false
		}
	}
	return true
}

// String joins the amount of each currency, like "$1,200.00, €300.00".
func (a Amounts) String() string { return a.format(Money.String, "0.00") }

// SignedString is like String with explicit signs, and "-" for zero.
func (a Amounts) SignedString() string {
	if a.IsZero() {
		return "-"
	}
	return a.format(Money.SignedString, "-")
}

func (a Amounts) format(f func(Money) string, empty string) string {
	if len(a) == 0 {
		return empty
	}
	parts := make([]string, len(a))
	for i, m := range a {
		parts[i] = f(m)
	}
	return strings.Join(parts, ", ")
}
