package costbasis

import "testing"

var (
	MSFT  = NewSecurity("MSFT", "Microsoft", Equity, "USD")
	VFIAX = NewSecurity("VFIAX", "Vanguard 500 Index Admiral", MutualFund, "USD")
	ES    = NewSecurity("ES", "E-mini S&P 500", Futures, "USD")
	SAP   = NewSecurity("SAP", "SAP", Equity, "EUR")

	Ameritrade = Account{Name: "Ameritrade"}
	Fidelity   = Account{Name: "Fidelity"}
	IRA        = Account{Name: "IRA", TaxDeferred: true}
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is like USD, in euros.
func EUR(v float64) Money { return M(v, "EUR") }

// day is a helper for test to create a date from an ISO string.
func day(s string) Date { return MustParseDate(s) }

// testLedger is a MemoryLedger that fails the test on invalid input.
type testLedger struct {
	t *testing.T
	*MemoryLedger
}

func newTestLedger(t *testing.T, securities ...Security) *testLedger {
	t.Helper()
	l := &testLedger{t: t, MemoryLedger: NewMemoryLedger()}
	for _, s := range securities {
		l.Declare(s)
	}
	return l
}

// record appends an activity. amount is the total cost or proceeds, in the
// currency of the security.
func (l *testLedger) record(typ ActivityType, on string, account Account, ticker string, units, amount float64) *Activity {
	l.t.Helper()
	cur := "USD"
	if sec, ok := l.Security(ticker); ok {
		cur = sec.Currency
	}
	a := &Activity{
		Date:     day(on),
		Type:     typ,
		Security: ticker,
		Account:  account,
		Units:    Q(units),
		Amount:   M(amount, cur),
	}
	if err := l.Append(a); err != nil {
		l.t.Fatalf("Append() error = %v", err)
	}
	return a
}

// transfer records the two sides of a transfer of units from one account to another.
func (l *testLedger) transfer(on string, from, to Account, ticker string, units float64) (*Activity, *Activity) {
	l.t.Helper()
	remove := l.record(Remove, on, from, ticker, units, 0)
	add := l.record(Add, on, to, ticker, units, 0)
	l.Link(remove, add)
	return remove, add
}

func (l *testLedger) split(on string, ticker string, numerator, denominator int64) {
	l.t.Helper()
	if err := l.AddSplit(Split{Date: day(on), Security: ticker, Numerator: numerator, Denominator: denominator}); err != nil {
		l.t.Fatalf("AddSplit() error = %v", err)
	}
}
