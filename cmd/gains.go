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

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	year           int
	cutoff         string
	consolidate    bool
	ignoreDeferred bool
	longTermDays   int
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "realized capital gains, short and long term" }
func (*gainsCmd) Usage() string {
	return `cgt gains [-y <year>] [-d <date>] [-consolidate] [-ignore-deferred] [-long-term <days>]

  Matches every sale against the oldest lots of the same account (first in,
  first out) and reports the realized gains, split by holding period.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", 0, "Only report sales of this year. All years by default.")
	f.StringVar(&c.cutoff, "d", "", "Ignore activities after this date. Defaults to today.")
	f.BoolVar(&c.consolidate, "consolidate", false, "Merge the sales of a security made on the same day at the same price, whatever their acquisition date.")
	f.BoolVar(&c.ignoreDeferred, "ignore-deferred", false, "Ignore sales in tax deferred accounts.")
	f.IntVar(&c.longTermDays, "long-term", 0, "Holding days above which a gain is long term. Defaults to the configuration.")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseCutoff(c.cutoff)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.longTermDays < 0 {
		fmt.Fprintf(os.Stderr, "-long-term must be positive: %d\n", c.longTermDays)
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

	opts := costbasis.CapitalGainsOptions{
		Year:                  c.year,
		IgnoreTaxDeferred:     c.ignoreDeferred || cfg.IgnoreTaxDeferred,
		ConsolidateOnDateSold: c.consolidate,
		LongTermDays:          cfg.LongTermDays,
	}
	if c.longTermDays > 0 {
		opts.LongTermDays = c.longTermDays
	}

	calc := costbasis.NewCalculator(ledger, on)
	printMarkdown(renderer.GainsMarkdown(costbasis.NewGainsReport(calc, opts)))
	return subcommands.ExitSuccess
}
