package renderer

import (
	"errors"
	"strings"
	"testing"

	"github.com/etnz/costbasis"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// outline is the structure of a markdown document: its headings and the number
// of body rows of each table, in document order.
type outline struct {
	headings []string
	rows     []int
}

func parse(t *testing.T, src string) outline {
	t.Helper()
	source := []byte(src)
	doc := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(source))

	var o outline
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			o.headings = append(o.headings, plain(n, source))
			return ast.WalkSkipChildren, nil
		case *extast.Table:
			rows := 0
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if _, ok := c.(*extast.TableRow); ok {
					rows++
				}
			}
			o.rows = append(o.rows, rows)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	return o
}

// plain returns the text content of a node.
func plain(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
			continue
		}
		b.WriteString(plain(c, source))
	}
	return b.String()
}

func newLedger(t *testing.T) *costbasis.MemoryLedger {
	t.Helper()
	src := `{"command":"declare","ticker":"MSFT","name":"Microsoft","type":"equity","currency":"USD"}
{"command":"declare","ticker":"VFIAX","name":"Vanguard 500","type":"mutualfund","currency":"USD"}
{"command":"buy","date":"2019-01-01","account":"Ameritrade","security":"MSFT","units":10,"amount":100}
{"command":"buy","date":"2020-01-01","account":"Ameritrade","security":"MSFT","units":10,"amount":150}
{"command":"sell","date":"2020-06-01","account":"Ameritrade","security":"MSFT","units":15,"amount":300}
{"command":"buy","date":"2020-01-01","account":"Fidelity","security":"VFIAX","units":4,"amount":40}
{"command":"sell","date":"2020-07-01","account":"Fidelity","security":"VFIAX","units":6,"amount":60}
`
	ledger, err := costbasis.DecodeLedger(strings.NewReader(src))
	require.NoError(t, err)
	return ledger
}

func TestGainsMarkdown(t *testing.T) {
	calc := costbasis.NewCalculator(newLedger(t), costbasis.NewDate(2020, 12, 31))
	report := costbasis.NewGainsReport(calc, costbasis.CapitalGainsOptions{Year: 2020})

	got := GainsMarkdown(report)
	o := parse(t, got)
	require.Equal(t, []string{"Capital Gains Report for 2020", "Short Term", "Long Term", "Unknown"}, o.headings)
	// summary, then each section with its total row.
	require.Equal(t, []int{4, 3, 2, 2}, o.rows)
	require.Contains(t, got, "1 of the sales could not be matched")
	require.Contains(t, got, "various")
}

func TestGainsMarkdown_NoSales(t *testing.T) {
	calc := costbasis.NewCalculator(newLedger(t), costbasis.NewDate(2019, 12, 31))
	got := GainsMarkdown(costbasis.NewGainsReport(calc, costbasis.CapitalGainsOptions{}))

	o := parse(t, got)
	require.Equal(t, []string{"Capital Gains Report up to 2019-12-31"}, o.headings)
	require.Empty(t, o.rows)
	require.Contains(t, got, "No sales.")
}

func TestHoldingsMarkdown(t *testing.T) {
	calc := costbasis.NewCalculator(newLedger(t), costbasis.NewDate(2020, 12, 31))
	quotes := costbasis.Quotes{"MSFT": costbasis.M(20, "USD")}
	report := costbasis.NewHoldingsReport(calc, quotes, nil)

	t.Run("summary", func(t *testing.T) {
		o := parse(t, HoldingsMarkdown(report, false))
		require.Equal(t, []string{"Holdings on 2020-12-31", "Equity"}, o.headings)
		// one security and its total, then the grand total.
		require.Equal(t, []int{2, 2}, o.rows)
	})

	t.Run("lots", func(t *testing.T) {
		o := parse(t, HoldingsMarkdown(report, true))
		require.Equal(t, []string{"Holdings on 2020-12-31", "Equity", "Microsoft"}, o.headings)
		require.Equal(t, []int{2, 1, 2}, o.rows)
	})
}

func TestLotsMarkdown(t *testing.T) {
	calc := costbasis.NewCalculator(newLedger(t), costbasis.NewDate(2020, 3, 1))
	account := costbasis.Account{Name: "Ameritrade"}

	got := LotsMarkdown(account, calc.Cutoff(), calc.Holding(account).Holdings())
	o := parse(t, got)
	require.Equal(t, []string{"Open Lots of Ameritrade on 2020-03-01"}, o.headings)
	require.Equal(t, []int{2}, o.rows)
	require.Contains(t, got, "10.0000 USD")
	require.Contains(t, got, "15.0000 USD")
}

func TestPendingMarkdown(t *testing.T) {
	calc := costbasis.NewCalculator(newLedger(t), costbasis.NewDate(2020, 12, 31))
	problems := []error{errors.New("malformed transfer: something")}

	got := PendingMarkdown(calc.Cutoff(), calc.PendingSales(nil), problems)
	o := parse(t, got)
	require.Equal(t, []string{"Ledger Check on 2020-12-31", "Pending Sales", "Skipped Activities"}, o.headings)
	require.Equal(t, []int{1}, o.rows)
	require.Contains(t, got, "malformed transfer: something")

	got = PendingMarkdown(calc.Cutoff(), nil, nil)
	require.Contains(t, got, "No pending sales.")
}

func TestMarkdown_Currencies(t *testing.T) {
	src := `{"command":"declare","ticker":"MSFT","name":"Microsoft","type":"equity","currency":"USD"}
{"command":"declare","ticker":"SAP","name":"SAP","type":"equity","currency":"EUR"}
{"command":"buy","date":"2020-01-01","account":"Ameritrade","security":"MSFT","units":10,"amount":100}
{"command":"sell","date":"2020-03-01","account":"Ameritrade","security":"MSFT","units":5,"amount":80}
{"command":"buy","date":"2020-01-01","account":"Ameritrade","security":"SAP","units":10,"amount":200}
{"command":"sell","date":"2020-03-01","account":"Ameritrade","security":"SAP","units":5,"amount":150}
`
	ledger, err := costbasis.DecodeLedger(strings.NewReader(src))
	require.NoError(t, err)
	calc := costbasis.NewCalculator(ledger, costbasis.NewDate(2020, 12, 31))

	holdings := HoldingsMarkdown(costbasis.NewHoldingsReport(calc, costbasis.Quotes{"MSFT": costbasis.M(12, "USD")}, nil), false)
	eurCost, usdCost := costbasis.M(100, "EUR").String(), costbasis.M(50, "USD").String()
	require.Contains(t, holdings, eurCost+", "+usdCost)

	gains := GainsMarkdown(costbasis.NewGainsReport(calc, costbasis.CapitalGainsOptions{Year: 2020}))
	require.Contains(t, gains, "+"+costbasis.M(50, "EUR").String()+", +"+costbasis.M(30, "USD").String())
}
