package costbasis

// DefaultLongTermDays is the holding period, in days, after which a gain is long
// term. A sale held exactly that many days is still short term.
const DefaultLongTermDays = 365

// CapitalGainsOptions selects and arranges the sales of a CapitalGains.
type CapitalGainsOptions struct {
	// Year keeps only the sales dated in that year. Zero keeps them all.
	Year int
	// IgnoreTaxDeferred skips the sales made in tax-deferred accounts.
	IgnoreTaxDeferred bool
	// ConsolidateOnDateSold merges consecutive sales of a security sold on the
	// same day at the same price, whatever their acquisition date. Otherwise
	// consecutive sales are merged when they share the acquisition date and price.
	ConsolidateOnDateSold bool
	// LongTermDays overrides DefaultLongTermDays when positive.
	LongTermDays int
}

// CapitalGains classifies realized sales by holding period.
type CapitalGains struct {
	// Unknown holds the sales without acquisition date: the pending sales no lot
	// could cover, so no cost basis is known.
	Unknown Sales
	// ShortTerm holds the sales of units held up to the long term threshold.
	ShortTerm Sales
	// LongTerm holds the sales of units held longer than the long term threshold.
	LongTerm Sales
}

// NewCapitalGains classifies the sales computed by calc.
func NewCapitalGains(calc *Calculator, opts CapitalGainsOptions) *CapitalGains {
	longTerm := opts.LongTermDays
	if longTerm <= 0 {
		longTerm = DefaultLongTermDays
	}
	keep := func(s Sale) bool {
		if opts.IgnoreTaxDeferred && s.Account.TaxDeferred {
			return false
		}
		return opts.Year == 0 || s.DateSold.Year() == opts.Year
	}

	cg := new(CapitalGains)
	for _, sale := range calc.Sales() {
		if !keep(sale) {
			continue
		}
		days, ok := sale.HoldingDays()
		switch {
		case !ok:
			cg.Unknown = append(cg.Unknown, sale)
		case days > longTerm:
			cg.LongTerm = append(cg.LongTerm, sale)
		default:
			cg.ShortTerm = append(cg.ShortTerm, sale)
		}
	}
	for _, sale := range calc.PendingSales(nil) {
		if keep(sale) {
			cg.Unknown = append(cg.Unknown, sale)
		}
	}

	cg.Unknown = consolidate(cg.Unknown, opts.ConsolidateOnDateSold)
	cg.ShortTerm = consolidate(cg.ShortTerm, opts.ConsolidateOnDateSold)
	cg.LongTerm = consolidate(cg.LongTerm, opts.ConsolidateOnDateSold)
	return cg
}

// consolidate merges consecutive sales that can be reported as one line.
func consolidate(sales Sales, onDateSold bool) Sales {
	var result Sales
	for _, s := range sales {
		if len(result) == 0 {
			result = append(result, s)
			continue
		}
		previous := &result[len(result)-1]
		switch {
		case previous.Security.Ticker != s.Security.Ticker,
			!previous.SalePricePerUnit.Equal(s.SalePricePerUnit),
			onDateSold && previous.DateSold != s.DateSold,
			!onDateSold && !sameDate(previous.DateAcquired, s.DateAcquired):
			result = append(result, s)
		default:
			previous.Consolidate(s)
		}
	}
	return result
}

// Total returns the sum of all the sales.
func (cg *CapitalGains) Total() Sales {
	all := make(Sales, 0, len(cg.Unknown)+len(cg.ShortTerm)+len(cg.LongTerm))
	all = append(all, cg.Unknown...)
	all = append(all, cg.ShortTerm...)
	return append(all, cg.LongTerm...)
}
