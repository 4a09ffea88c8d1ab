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

type pendingCmd struct {
	cutoff string
}

func (*pendingCmd) Name() string     { return "pending" }
func (*pendingCmd) Synopsis() string { return "check the ledger for oversold securities" }
func (*pendingCmd) Usage() string {
	return `cgt pending [-d <date>]

  Lists the sales that could not be matched against any lot, and the transfers
  that were skipped. Exits with a failure status if there are any.
`
}

func (c *pendingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cutoff, "d", "", "Ignore activities after this date. Defaults to today.")
}

func (c *pendingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	calc := costbasis.NewCalculator(ledger, on)
	pending, problems := calc.PendingSales(nil), calc.Problems()
	printMarkdown(renderer.PendingMarkdown(on, pending, problems))
	if len(pending) > 0 || len(problems) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
