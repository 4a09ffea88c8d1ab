package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/costbasis"
	md "github.com/nao1215/markdown"
)

// GainsMarkdown renders the realized gains, one section per holding period.
// Empty sections are omitted.
func GainsMarkdown(r *costbasis.GainsReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title("Capital Gains Report", r.Options.Year, r.Date))

	total := r.Total()
	if len(total) == 0 {
		doc.PlainText("No sales.")
		return doc.String()
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Holding Period", "Proceeds", "Cost Basis", "Gain"},
		Rows: [][]string{
			{"Short Term", r.ShortTerm.Proceeds().String(), r.ShortTerm.CostBasis().String(), r.ShortTerm.Gain().SignedString()},
			{"Long Term", r.LongTerm.Proceeds().String(), r.LongTerm.CostBasis().String(), r.LongTerm.Gain().SignedString()},
			{"Unknown", r.Unknown.Proceeds().String(), r.Unknown.CostBasis().String(), r.Unknown.Gain().SignedString()},
			{md.Bold("Total"), md.Bold(total.Proceeds().String()), md.Bold(total.CostBasis().String()), md.Bold(total.Gain().SignedString())},
		},
	})
	if r.Options.IgnoreTaxDeferred {
		doc.PlainText("Sales in tax-deferred accounts are excluded.")
	}

	salesSection(doc, "Short Term", r.ShortTerm)
	salesSection(doc, "Long Term", r.LongTerm)
	salesSection(doc, "Unknown", r.Unknown)

	if r.Pending > 0 {
		doc.PlainText(fmt.Sprintf("%s %d of the sales could not be matched against any purchase: their cost basis is unknown. Run `cgt pending` for details.", md.Bold("Warning:"), r.Pending))
	}
	return doc.String()
}

func salesSection(doc *md.Markdown, name string, sales costbasis.Sales) {
	if len(sales) == 0 {
		return
	}
	doc.H2(name)
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Security", "Account", "Acquired", "Sold", "Units", "Proceeds", "Cost Basis", "Gain"},
		Rows:   [][]string{},
	}
	for _, s := range sales {
		table.Rows = append(table.Rows, []string{
			s.Security.Ticker,
			s.Account.Name,
			acquired(s),
			s.DateSold.String(),
			s.UnitsSold.String(),
			s.Proceeds().String(),
			s.TotalCostBasis().String(),
			s.Gain().SignedString(),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"), "", "", "",
		sales.Units().String(),
		sales.Proceeds().String(),
		sales.CostBasis().String(),
		sales.Gain().SignedString(),
	})
	doc.Table(table)
}
