// Package cmd implements the cgt command line application, reporting the
// capital gains of an investment ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/costbasis"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&gainsCmd{}, "reports")
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&lotsCmd{}, "reports")
	c.Register(&pendingCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", ".cgt.toml", "Path to the TOML configuration file")
var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file (JSONL format). Overrides the configuration.")
var quotesFile = flag.String("quotes-file", "", "Path to the quotes file (JSON format). Overrides the configuration.")

// AppConfig returns the configuration of the application, flags included.
func AppConfig() (Config, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return cfg, err
	}
	return cfg.override(*ledgerFile, *quotesFile), nil
}

// DecodeLedger reads the ledger file of the configuration.
func DecodeLedger(cfg Config) (*costbasis.MemoryLedger, error) {
	f, err := os.Open(cfg.LedgerFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ledger, err := costbasis.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.LedgerFile, err)
	}
	return ledger, nil
}

// DecodeQuotes reads the quotes of securities from the quotes file of the configuration.
func DecodeQuotes(cfg Config, securities []costbasis.Security) (costbasis.Quotes, error) {
	f, err := os.Open(cfg.QuotesFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, quotes file %q does not exist, market values are not available", cfg.QuotesFile)
		return costbasis.Quotes{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return costbasis.DecodeQuotes(f, cfg.QuotesPath, securities)
}

// parseCutoff parses a cutoff date flag.
func parseCutoff(s string) (costbasis.Date, error) {
	if s == "" {
		return costbasis.Today(), nil
	}
	return costbasis.ParseDate(s)
}

// printMarkdown renders md for the terminal, falling back to the raw markdown.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
