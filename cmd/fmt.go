package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/costbasis"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	outputFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `cgt fmt [-o <file>]

  Validates and formats the ledger file. This command reads all the ledger
  commands, validates them, and writes them back in a canonical JSONL format:
  declarations first, then activities and splits sorted by date.
  By default, the ledger is formatted in-place.

Usage Examples:
# Rewrites the default ledger file.
$ cgt fmt

# Writes the formatted ledger to stdout.
$ cgt fmt -o -
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "Output file, '-' for stdout. Defaults to the ledger file itself.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := AppConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, err := DecodeLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	if err := costbasis.EncodeLedger(&buf, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting ledger %q: %v\n", cfg.LedgerFile, err)
		return subcommands.ExitFailure
	}

	output := p.outputFile
	if output == "" {
		output = cfg.LedgerFile
	}
	if output == "-" {
		if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted ledger %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %s.\n", output)
	return subcommands.ExitSuccess
}
