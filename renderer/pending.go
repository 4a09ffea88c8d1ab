package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/costbasis"
	md "github.com/nao1215/markdown"
)

// PendingMarkdown renders the sales that could not be matched against any lot
// and the activities that could not be processed.
func PendingMarkdown(on costbasis.Date, pending []costbasis.Sale, problems []error) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Ledger Check on %s", on))
	if len(pending) == 0 && len(problems) == 0 {
		doc.PlainText("No pending sales.")
		return doc.String()
	}

	if len(pending) > 0 {
		doc.H2("Pending Sales")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Security", "Account", "Sold", "Missing Units", "Price per Unit"},
			Rows:   [][]string{},
		}
		for _, s := range pending {
			table.Rows = append(table.Rows, []string{
				s.Security.Ticker,
				s.Account.Name,
				s.DateSold.String(),
				s.UnitsSold.String(),
				perUnit(s.SalePricePerUnit),
			})
		}
		doc.Table(table)
		doc.PlainText("More units were sold than were ever bought in these accounts. A purchase is probably missing, or recorded after the sale.")
	}

	if len(problems) > 0 {
		doc.H2("Skipped Activities")
		var lines []string
		for _, err := range problems {
			lines = append(lines, err.Error())
		}
		doc.OrderedList(lines...)
	}
	return doc.String()
}
