package costbasis

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// DefaultQuotesPath reads quotes from a flat JSON object mapping tickers to prices.
const DefaultQuotesPath = `$["{ticker}"]`

// Quotes are the latest known unit prices, by ticker.
type Quotes map[string]Money

// Price returns the latest known price of a security.
func (q Quotes) Price(security Security) (Money, bool) {
	p, ok := q[security.Ticker]
	return p, ok
}

// DecodeQuotes reads a JSON document and extracts the price of each security
// using a JSONPath expression, where "{ticker}" is replaced by the security's
// ticker. Securities with no value at that path have no quote.
//
// A price can be a JSON number or a string holding a decimal number.
func DecodeQuotes(r io.Reader, expr string, securities []Security) (Quotes, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("could not decode quotes: %w", err)
	}

	quotes := make(Quotes)
	for _, sec := range securities {
		path := strings.ReplaceAll(expr, "{ticker}", sec.Ticker)
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			// unknown key: no quote.
			continue
		}
		// because jsonpath is never clear about whether it returns a list of 1
		// answer, or a single answer: keep the first one if any.
		if jlist, ok := jval.([]any); ok {
			if len(jlist) == 0 {
				continue
			}
			jval = jlist[0]
		}

		var price decimal.Decimal
		switch v := jval.(type) {
		case float64:
			price = decimal.NewFromFloat(v)
		case string:
			if price, err = decimal.NewFromString(v); err != nil {
				return nil, fmt.Errorf("invalid price for %q at %q: %w", sec.Ticker, path, err)
			}
		case nil:
			continue
		default:
			return nil, fmt.Errorf("invalid price for %q at %q: not a number: %v", sec.Ticker, path, jval)
		}
		quotes[sec.Ticker] = M(price, sec.Currency)
	}
	return quotes, nil
}
