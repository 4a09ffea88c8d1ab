// Package renderer renders cost basis reports as markdown.
package renderer

import (
	"fmt"

	"github.com/etnz/costbasis"
)

// perUnit formats a per-unit value. Cost basis per unit is often not a round
// amount after a split, so it keeps more digits than a total.
func perUnit(m costbasis.Money) string {
	if m.Currency() == "" {
		return m.Decimal().StringFixed(4)
	}
	return fmt.Sprintf("%s %s", m.Decimal().StringFixed(4), m.Currency())
}

// acquired formats the acquisition date of a sale. Sales without acquisition
// date are reported as "various".
func acquired(s costbasis.Sale) string {
	if s.DateAcquired == nil {
		return "various"
	}
	return s.DateAcquired.String()
}

func title(prefix string, year int, on costbasis.Date) string {
	if year != 0 {
		return fmt.Sprintf("%s for %d", prefix, year)
	}
	return fmt.Sprintf("%s up to %s", prefix, on)
}
