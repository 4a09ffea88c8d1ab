package costbasis

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// CommandType is the "command" field of a ledger line.
type CommandType string

const (
	CmdDeclare CommandType = "declare"
	CmdAccount CommandType = "account"
	CmdAdd     CommandType = "add"
	CmdBuy     CommandType = "buy"
	CmdRemove  CommandType = "remove"
	CmdSell    CommandType = "sell"
	CmdSplit   CommandType = "split"
)

// declareCmd declares a security.
type declareCmd struct {
	Ticker   string `json:"ticker"`
	Name     string `json:"name,omitempty"`
	Type     string `json:"type,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// accountCmd declares an account.
type accountCmd struct {
	Name        string `json:"name"`
	TaxDeferred bool   `json:"taxDeferred,omitempty"`
}

// activityCmd is used for all four activity commands.
type activityCmd struct {
	ID       string          `json:"id,omitempty"`
	Date     Date            `json:"date"`
	Account  string          `json:"account"`
	Security string          `json:"security"`
	Units    decimal.Decimal `json:"units"`
	Amount   decimal.Decimal `json:"amount"`
	Transfer string          `json:"transfer,omitempty"`
}

// splitCmd is a stock split.
type splitCmd struct {
	Date        Date   `json:"date"`
	Security    string `json:"security"`
	Numerator   int64  `json:"numerator"`
	Denominator int64  `json:"denominator"`
}

// DecodeLedger decodes a ledger from a stream of JSONL data, one command per line.
//
// Securities and accounts must be declared before use. Transfers are linked by the "transfer"
// field of one side, holding the "id" of the other side. A transfer to an
// unknown id is kept with a nil counterpart: it is reported by the Calculator.
func DecodeLedger(r io.Reader) (*MemoryLedger, error) {
	ledger := NewMemoryLedger()
	scanner := bufio.NewScanner(r)
	transfers := make(map[*Activity]string)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Command CommandType `json:"command"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify command in %q: %w", lineNum, string(lineBytes), err)
		}

		var err error
		switch identifier.Command {
		case CmdDeclare:
			var cmd declareCmd
			if err = json.Unmarshal(lineBytes, &cmd); err != nil {
				break
			}
			typ := Other
			if cmd.Type != "" {
				if typ, err = ParseSecurityType(cmd.Type); err != nil {
					break
				}
			}
			ledger.Declare(NewSecurity(cmd.Ticker, cmd.Name, typ, cmd.Currency))

		case CmdAccount:
			var cmd accountCmd
			if err = json.Unmarshal(lineBytes, &cmd); err != nil {
				break
			}
			ledger.DeclareAccount(Account{Name: cmd.Name, TaxDeferred: cmd.TaxDeferred})

		case CmdAdd, CmdBuy, CmdRemove, CmdSell:
			var cmd activityCmd
			if err = json.Unmarshal(lineBytes, &cmd); err != nil {
				break
			}
			if cmd.Date.IsZero() {
				err = fmt.Errorf("%s: missing date", identifier.Command)
				break
			}
			var typ ActivityType
			if typ, err = ParseActivityType(string(identifier.Command)); err != nil {
				break
			}
			sec, _ := ledger.Security(cmd.Security)
			a := &Activity{
				ID:       cmd.ID,
				Date:     cmd.Date,
				Type:     typ,
				Security: cmd.Security,
				Account:  ledger.Account(cmd.Account),
				Units:    Q(cmd.Units),
				Amount:   M(cmd.Amount, sec.Currency),
			}
			if err = ledger.Append(a); err != nil {
				break
			}
			if cmd.Transfer != "" {
				transfers[a] = cmd.Transfer
			}

		case CmdSplit:
			var cmd splitCmd
			if err = json.Unmarshal(lineBytes, &cmd); err != nil {
				break
			}
			if cmd.Date.IsZero() {
				err = fmt.Errorf("%s: missing date", identifier.Command)
				break
			}
			err = ledger.AddSplit(Split{Date: cmd.Date, Security: cmd.Security, Numerator: cmd.Numerator, Denominator: cmd.Denominator})

		default:
			err = fmt.Errorf("unknown command: %q", identifier.Command)
		}

		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	for a, id := range transfers {
		to, ok := ledger.Lookup(id)
		if !ok {
			a.Transfer = &Transfer{ID: id}
			continue
		}
		if to.Transfer == nil {
			// only one side references the other.
			ledger.Link(a, to)
			continue
		}
		a.Transfer = &Transfer{ID: id, Counterpart: to}
	}
	return ledger, nil
}

// ledgerLine is one encoded line, with the date used to order it.
type ledgerLine struct {
	date Date
	line []byte
}

// EncodeLedger writes the ledger in JSONL format: security and account
// declarations first, then activities and splits in chronological order.
func EncodeLedger(w io.Writer, ledger *MemoryLedger) error {
	var header [][]byte
	for _, ticker := range slices.Sorted(maps.Keys(ledger.securities)) {
		sec := ledger.securities[ticker]
		var o jsonObjectWriter
		o.Append("command", CmdDeclare).
			Append("ticker", sec.Ticker).
			Optional("name", sec.Name).
			Append("type", sec.Type.String()).
			Optional("currency", sec.Currency)
		b, err := o.MarshalJSON()
		if err != nil {
			return fmt.Errorf("failed to encode security %q: %w", ticker, err)
		}
		header = append(header, b)
	}
	for _, account := range ledger.Accounts() {
		var o jsonObjectWriter
		o.Append("command", CmdAccount).
			Append("name", account.Name).
			Optional("taxDeferred", account.TaxDeferred)
		b, err := o.MarshalJSON()
		if err != nil {
			return fmt.Errorf("failed to encode account %q: %w", account.Name, err)
		}
		header = append(header, b)
	}

	var lines []ledgerLine
	for a := range ledger.All() {
		b, err := encodeActivity(a)
		if err != nil {
			return err
		}
		lines = append(lines, ledgerLine{a.Date, b})
	}
	for _, ticker := range slices.Sorted(maps.Keys(ledger.splits)) {
		for _, s := range ledger.splits[ticker] {
			var o jsonObjectWriter
			o.Append("command", CmdSplit).
				Append("date", s.Date).
				Append("security", s.Security).
				Append("numerator", s.Numerator).
				Append("denominator", s.Denominator)
			b, err := o.MarshalJSON()
			if err != nil {
				return fmt.Errorf("failed to encode split of %q on %v: %w", s.Security, s.Date, err)
			}
			lines = append(lines, ledgerLine{s.Date, b})
		}
	}
	// The sort is stable: activities on the same day maintain their relative order.
	slices.SortStableFunc(lines, func(a, b ledgerLine) int { return a.date.Compare(b.date) })

	for _, b := range header {
		if _, err := w.Write(append(b, '\n')); err != nil {
			return fmt.Errorf("failed to write ledger: %w", err)
		}
	}
	for _, l := range lines {
		if _, err := w.Write(append(l.line, '\n')); err != nil {
			return fmt.Errorf("failed to write ledger: %w", err)
		}
	}
	return nil
}

func encodeActivity(a *Activity) ([]byte, error) {
	var transfer string
	if a.Transfer != nil {
		transfer = a.Transfer.ID
		if a.Transfer.Counterpart != nil {
			transfer = a.Transfer.Counterpart.ID
		}
		if transfer == "" {
			return nil, fmt.Errorf("failed to encode %s activity on %v: transfer without id", a.Type, a.Date)
		}
	}

	var o jsonObjectWriter
	o.Append("command", a.Type.String()).
		Append("date", a.Date).
		Optional("id", a.ID).
		Append("account", a.Account.Name).
		Append("security", a.Security).
		Append("units", a.Units.Decimal()).
		Append("amount", a.Amount.Decimal()).
		Optional("transfer", transfer)
	b, err := o.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s activity on %v: %w", a.Type, a.Date, err)
	}
	return b, nil
}

