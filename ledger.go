package costbasis

import (
	"cmp"
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"
	"sort"

	"github.com/google/uuid"
)

// MemoryLedger is an in-memory Ledger.
//
// In a MemoryLedger activities and splits are always in chronological order.
// Activities on the same day keep the order they were appended in.
type MemoryLedger struct {
	securities map[string]Security    // index securities by ticker
	accounts   map[string]Account     // index accounts by name
	activities map[string][]*Activity // by ticker
	splits     map[string][]Split     // by ticker
	ids        map[string]*Activity   // index activities by ID
}

// NewMemoryLedger creates an empty ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		securities: make(map[string]Security),
		accounts:   make(map[string]Account),
		activities: make(map[string][]*Activity),
		splits:     make(map[string][]Split),
		ids:        make(map[string]*Activity),
	}
}

// Declare adds or replaces a security.
func (l *MemoryLedger) Declare(security Security) {
	l.securities[security.Ticker] = security
}

// Security returns the security declared with this ticker.
func (l *MemoryLedger) Security(ticker string) (Security, bool) {
	sec, ok := l.securities[ticker]
	return sec, ok
}

// DeclareAccount adds or replaces an account. Activities appended afterwards on
// an account with the same name use it.
func (l *MemoryLedger) DeclareAccount(account Account) {
	l.accounts[account.Name] = account
}

// Account returns the account with this name. Undeclared accounts are not tax
// deferred.
func (l *MemoryLedger) Account(name string) Account {
	if a, ok := l.accounts[name]; ok {
		return a
	}
	return Account{Name: name}
}

// Accounts returns the declared accounts, sorted by name.
func (l *MemoryLedger) Accounts() []Account {
	return slices.SortedFunc(maps.Values(l.accounts), func(a, b Account) int { return cmp.Compare(a.Name, b.Name) })
}

// Append appends activities to this ledger and maintains the chronological order.
//
// Every activity must be on a declared security, and its ID, if any, must be
// unique. Nothing is appended if one activity is invalid.
func (l *MemoryLedger) Append(activities ...*Activity) error {
	seen := make(map[string]bool)
	for _, a := range activities {
		if _, ok := l.securities[a.Security]; !ok {
			return fmt.Errorf("invalid %s activity on %v: %w: %q", a.Type, a.Date, ErrUnknownSecurity, a.Security)
		}
		if a.ID == "" {
			continue
		}
		if existing, exists := l.ids[a.ID]; (exists && existing != a) || seen[a.ID] {
			return fmt.Errorf("invalid %s activity on %v: duplicate id %q", a.Type, a.Date, a.ID)
		}
		seen[a.ID] = true
	}

	for _, a := range activities {
		if a.ID != "" {
			l.ids[a.ID] = a
		}
		list := append(l.activities[a.Security], a)
		// Ensure the ledger remains sorted after appending.
		sort.SliceStable(list, func(i, j int) bool { return list[i].Date.Before(list[j].Date) })
		l.activities[a.Security] = list
	}
	return nil
}

// Lookup returns the activity appended with this ID.
func (l *MemoryLedger) Lookup(id string) (*Activity, bool) {
	a, ok := l.ids[id]
	return a, ok
}

// Link makes from and to the two sides of a transfer. Activities without ID get
// a random one.
func (l *MemoryLedger) Link(from, to *Activity) {
	for _, a := range []*Activity{from, to} {
		if a.ID == "" {
			a.ID = uuid.NewString()
			l.ids[a.ID] = a
		}
	}
	from.Transfer = &Transfer{ID: to.ID, Counterpart: to}
	to.Transfer = &Transfer{ID: from.ID, Counterpart: from}
}

// AddSplit adds a split to a declared security. A split of the same security on
// the same day replaces the existing one.
func (l *MemoryLedger) AddSplit(split Split) error {
	if _, ok := l.securities[split.Security]; !ok {
		return fmt.Errorf("invalid split on %v: %w: %q", split.Date, ErrUnknownSecurity, split.Security)
	}
	if split.Numerator <= 0 || split.Denominator <= 0 {
		return fmt.Errorf("invalid split on %v: ratio %d/%d must be positive", split.Date, split.Numerator, split.Denominator)
	}

	list := l.splits[split.Security]
	for i, old := range list {
		if old.Date != split.Date {
			continue
		}
		// if identical do nothing
		if old.Numerator != split.Numerator || old.Denominator != split.Denominator {
			log.Printf("%v: update %v split %v/%v with %v/%v", old.Date, old.Security, old.Numerator, old.Denominator, split.Numerator, split.Denominator)
			list[i] = split
		}
		return nil
	}
	list = append(list, split)
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.Before(list[j].Date) })
	l.splits[split.Security] = list
	return nil
}

// Securities returns the securities with at least one activity, sorted by ticker.
func (l *MemoryLedger) Securities() []Security {
	var securities []Security
	for _, ticker := range slices.Sorted(maps.Keys(l.activities)) {
		securities = append(securities, l.securities[ticker])
	}
	return securities
}

// Activities returns the activities of a security dated on or before cutoff.
func (l *MemoryLedger) Activities(ticker string, cutoff Date) []*Activity {
	var activities []*Activity
	for _, a := range l.activities[ticker] {
		if a.Date.After(cutoff) {
			// The ledger is sorted by date, so it's safe to break.
			break
		}
		activities = append(activities, a)
	}
	return activities
}

// Splits returns the splits of a security.
func (l *MemoryLedger) Splits(ticker string) []Split {
	return slices.Clone(l.splits[ticker])
}

// All returns every activity, in chronological order, security by security.
func (l *MemoryLedger) All() iter.Seq[*Activity] {
	return func(yield func(*Activity) bool) {
		for _, ticker := range slices.Sorted(maps.Keys(l.activities)) {
			for _, a := range l.activities[ticker] {
				if !yield(a) {
					return
				}
			}
		}
	}
}

// NewestActivityDate returns the date of the latest activity or split in the
// ledger, or the zero Date if it is empty.
func (l *MemoryLedger) NewestActivityDate() Date {
	var newest Date
	for _, list := range l.activities {
		if n := len(list); n > 0 && list[n-1].Date.After(newest) {
			newest = list[n-1].Date
		}
	}
	for _, list := range l.splits {
		if n := len(list); n > 0 && list[n-1].Date.After(newest) {
			newest = list[n-1].Date
		}
	}
	return newest
}
