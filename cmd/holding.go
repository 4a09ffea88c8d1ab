package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/costbasis"
	"github.com/etnz/costbasis/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	cutoff  string
	account string
	taxable bool
	lots    bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "open positions and unrealized gains" }
func (*holdingsCmd) Usage() string {
	return `cgt holdings [-d <date>] [-a <account>] [-taxable] [-lots]

  Displays the open positions by security type, with their cost basis and,
  when the quotes file has a price, their market value.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cutoff, "d", "", "Date for the holdings report. Defaults to today.")
	f.StringVar(&c.account, "a", "", "Only report this account. All accounts by default.")
	f.BoolVar(&c.taxable, "taxable", false, "Only report taxable accounts.")
	f.BoolVar(&c.lots, "lots", false, "List the open lots of each security.")
}

// filter returns the account filter selected by the flags, nil for all accounts.
func (c *holdingsCmd) filter() func(costbasis.Account) bool {
	if c.account == "" && !c.taxable {
		return nil
	}
	return func(a costbasis.Account) bool {
		if c.account != "" && a.Name != c.account {
			return false
		}
		return !c.taxable || !a.TaxDeferred
	}
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseCutoff(c.cutoff)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, err := AppConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, err := DecodeLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	quotes, err := DecodeQuotes(cfg, ledger.Securities())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading quotes: %v\n", err)
		return subcommands.ExitFailure
	}

	calc := costbasis.NewCalculator(ledger, on)
	report := costbasis.NewHoldingsReport(calc, quotes, c.filter())
	printMarkdown(renderer.HoldingsMarkdown(report, c.lots))
	return subcommands.ExitSuccess
}
