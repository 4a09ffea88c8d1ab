package costbasis

import (
	"cmp"
	"slices"
)

// SecurityGroup is a set of open lots sharing a security type, and possibly a
// security.
type SecurityGroup struct {
	Date Date
	// Security is nil when the lots of the group belong to several securities.
	Security  *Security
	Type      SecurityType
	Purchases []Lot
}

// IsMixed returns true if the group holds lots of more than one security.
func (g SecurityGroup) IsMixed() bool { return g.Security == nil }

// Units returns the total number of units held in the group.
func (g SecurityGroup) Units() Quantity { return lots(g.Purchases).units() }

// CostBasis returns the total cost basis of the units held in the group. A
// mixed group may hold securities of several currencies.
func (g SecurityGroup) CostBasis() Amounts { return lots(g.Purchases).costBasis() }

// HoldingsBySecurityType groups the open lots of the accounts accepted by filter
// by security type. A nil filter accepts every account. Groups are sorted by
// security type.
func (c *Calculator) HoldingsBySecurityType(filter func(Account) bool) []SecurityGroup {
	byType := make(map[SecurityType]*SecurityGroup)
	for _, h := range c.AccountHoldings() {
		if filter != nil && !filter(h.Account()) {
			continue
		}
		for _, lot := range h.Holdings() {
			g, ok := byType[lot.Security.Type]
			if !ok {
				security := lot.Security
				g = &SecurityGroup{Date: c.cutoff, Security: &security, Type: security.Type}
				byType[security.Type] = g
			} else if g.Security != nil && g.Security.Ticker != lot.Security.Ticker {
				g.Security = nil
			}
			g.Purchases = append(g.Purchases, lot)
		}
	}

	groups := make([]SecurityGroup, 0, len(byType))
	for _, g := range byType {
		groups = append(groups, *g)
	}
	slices.SortFunc(groups, func(a, b SecurityGroup) int { return cmp.Compare(a.Type, b.Type) })
	return groups
}

// RegroupBySecurity splits a group into one group per security, sorted with
// CompareSecurities.
func (c *Calculator) RegroupBySecurity(group SecurityGroup) []SecurityGroup {
	var groups []SecurityGroup
	index := make(map[string]int)
	for _, lot := range group.Purchases {
		i, ok := index[lot.Security.Ticker]
		if !ok {
			security := lot.Security
			i = len(groups)
			index[security.Ticker] = i
			groups = append(groups, SecurityGroup{Date: group.Date, Security: &security, Type: security.Type})
		}
		groups[i].Purchases = append(groups[i].Purchases, lot)
	}
	slices.SortStableFunc(groups, func(a, b SecurityGroup) int { return CompareSecurities(*a.Security, *b.Security) })
	return groups
}
