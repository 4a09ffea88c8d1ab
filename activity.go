package costbasis

import (
	"errors"
	"fmt"
)

// ActivityType is the kind of an investment activity.
type ActivityType int

const (
	Add    ActivityType = iota // units received without a purchase (gift, transfer in)
	Buy                        // units purchased
	Remove                     // units given away without a sale (transfer out)
	Sell                       // units sold
)

func (t ActivityType) String() string {
	switch t {
	case Add:
		return "add"
	case Buy:
		return "buy"
	case Remove:
		return "remove"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseActivityType parses a string into an ActivityType.
func ParseActivityType(s string) (ActivityType, error) {
	switch s {
	case "add":
		return Add, nil
	case "buy":
		return Buy, nil
	case "remove":
		return Remove, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown activity type: %q", s)
	}
}

// IsAcquisition returns true for activities that bring units into an account.
func (t ActivityType) IsAcquisition() bool { return t == Add || t == Buy }

// IsDisposal returns true for activities that take units out of an account.
func (t ActivityType) IsDisposal() bool { return t == Remove || t == Sell }

// Activity is one investment record of the ledger.
type Activity struct {
	ID       string // optional, used to link transfers.
	Date     Date
	Type     ActivityType
	Security string // ticker of the security.
	Account  Account
	Units    Quantity
	// Amount is the total cost (add, buy) or the total proceeds (remove, sell),
	// commissions and fees included.
	Amount   Money
	Transfer *Transfer // non nil when this activity is one side of a transfer between accounts.
}

// IsTransfer returns true if the activity moves units between two accounts.
func (a *Activity) IsTransfer() bool { return a.Transfer != nil }

// Transfer links the two sides of a movement of units between accounts.
type Transfer struct {
	ID          string    // ID of the counterpart activity.
	Counterpart *Activity // nil when the ledger could not resolve ID.
}

// Split is a stock split of a security. Numerator/Denominator is the ratio
// between the new and the old number of units: a 2-for-1 split is 2/1.
type Split struct {
	Date        Date
	Security    string
	Numerator   int64
	Denominator int64
}

var (
	// ErrMalformedTransfer reports a transfer whose counterpart is missing or is
	// not an acquisition.
	ErrMalformedTransfer = errors.New("malformed transfer")
	// ErrUnknownSecurity reports an activity on a security that was never declared.
	ErrUnknownSecurity = errors.New("unknown security")
)

//go:generate mockgen -source=activity.go -destination=mock_ledger_test.go -package=costbasis

// Ledger is the view of the investment ledger consumed by the Calculator.
//
// The calculator never stores nor modifies what the ledger returns.
type Ledger interface {
	// Securities returns all the securities with investment activity.
	Securities() []Security
	// Activities returns the activities of a security dated on or before cutoff,
	// in chronological order.
	Activities(ticker string, cutoff Date) []*Activity
	// Splits returns the splits of a security in chronological order.
	Splits(ticker string) []Split
}
