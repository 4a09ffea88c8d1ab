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

type lotsCmd struct {
	cutoff  string
	account string
}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "open lots of an account" }
func (*lotsCmd) Usage() string {
	return `cgt lots -a <account> [-d <date>]

  Lists the open lots of an account, oldest first within each security.
`
}

func (c *lotsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cutoff, "d", "", "Date of the lots. Defaults to today.")
	f.StringVar(&c.account, "a", "", "Account to list (required)")
}

func (c *lotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(os.Stderr, "-a is required")
		return subcommands.ExitUsageError
	}
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

	account := ledger.Account(c.account)
	calc := costbasis.NewCalculator(ledger, on)
	printMarkdown(renderer.LotsMarkdown(account, on, calc.Holding(account).Holdings()))
	return subcommands.ExitSuccess
}
