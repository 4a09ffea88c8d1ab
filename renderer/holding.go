package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/costbasis"
	md "github.com/nao1215/markdown"
)

// HoldingsMarkdown renders the open positions by security type. With lots, the
// open lots of each security are listed too.
func HoldingsMarkdown(r *costbasis.HoldingsReport, lots bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Holdings on %s", r.Date))
	if len(r.Types) == 0 {
		doc.PlainText("No holdings.")
		return doc.String()
	}

	for _, th := range r.Types {
		doc.H2(typeTitle(th.Type))
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Security", "Units", "Cost Basis", "Price", "Market Value", "Unrealized Gain"},
			Rows:   [][]string{},
		}
		for _, sh := range th.Securities {
			price, value, gain := "n/a", "n/a", "n/a"
			if sh.Priced {
				price, value, gain = sh.Price.String(), sh.MarketValue.String(), sh.UnrealizedGain.SignedString()
			}
			table.Rows = append(table.Rows, []string{
				sh.Security.String(),
				sh.Units.String(),
				sh.CostBasis.String(),
				price,
				value,
				gain,
			})
		}
		table.Rows = append(table.Rows, []string{
			md.Bold("Total"), "",
			md.Bold(th.CostBasis.String()), "",
			md.Bold(th.MarketValue.String()),
			md.Bold(th.UnrealizedGain.SignedString()),
		})
		doc.Table(table)

		if !lots {
			continue
		}
		for _, sh := range th.Securities {
			doc.H3(sh.Security.String())
			doc.Table(lotsTable(sh.Lots))
		}
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Cost Basis"), md.Bold(r.CostBasis.String())},
		Rows: [][]string{
			{"Market Value", r.MarketValue.String()},
			{"Unrealized Gain", r.UnrealizedGain.SignedString()},
		},
	})
	return doc.String()
}

// LotsMarkdown renders the open lots of an account.
func LotsMarkdown(account costbasis.Account, on costbasis.Date, lots []costbasis.Lot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Open Lots of %s on %s", account.Name, on))
	if len(lots) == 0 {
		doc.PlainText("No open lots.")
		return doc.String()
	}
	doc.Table(lotsTable(lots))
	return doc.String()
}

func lotsTable(lots []costbasis.Lot) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Security", "Account", "Acquired", "Units", "Cost Basis per Unit", "Cost Basis"},
		Rows:   [][]string{},
	}
	for _, l := range lots {
		table.Rows = append(table.Rows, []string{
			l.Security.Ticker,
			l.Account.Name,
			l.DatePurchased.String(),
			l.UnitsRemaining.String(),
			perUnit(l.CostBasisPerUnit),
			l.TotalCostBasis().String(),
		})
	}
	return table
}

func typeTitle(t costbasis.SecurityType) string {
	switch t {
	case costbasis.ETF:
		return "ETF"
	case costbasis.Reit:
		return "REIT"
	case costbasis.MutualFund:
		return "Mutual Fund"
	default:
		s := t.String()
		return strings.ToUpper(s[:1]) + s[1:]
	}
}
