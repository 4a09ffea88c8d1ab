package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/costbasis"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the defaults of the cgt application.
//
// It is read from a TOML file like:
//
//	ledger_file = "ledger.jsonl"
//	quotes_file = "quotes.json"
//	quotes_path = '$.quotes["{ticker}"].last'
//	long_term_days = 365
//	ignore_tax_deferred = true
type Config struct {
	LedgerFile        string `koanf:"ledger_file"`
	QuotesFile        string `koanf:"quotes_file"`
	QuotesPath        string `koanf:"quotes_path"` // JSONPath to a price, "{ticker}" is replaced by each ticker.
	LongTermDays      int    `koanf:"long_term_days"`
	IgnoreTaxDeferred bool   `koanf:"ignore_tax_deferred"`
}

// DefaultConfig returns the configuration used when there is no config file.
func DefaultConfig() Config {
	return Config{
		LedgerFile:   "ledger.jsonl",
		QuotesFile:   "quotes.json",
		QuotesPath:   costbasis.DefaultQuotesPath,
		LongTermDays: costbasis.DefaultLongTermDays,
	}
}

// LoadConfig reads the TOML file at path on top of the default configuration.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return cfg, fmt.Errorf("error loading config %s: %w", path, err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("error reading config %s: %w", path, err)
	}
	if cfg.LongTermDays <= 0 {
		return cfg, fmt.Errorf("config %s: long_term_days must be positive, got %d", path, cfg.LongTermDays)
	}
	return cfg, nil
}

// override replaces the file locations by the ones given on the command line, if any.
func (c Config) override(ledgerFile, quotesFile string) Config {
	if ledgerFile != "" {
		c.LedgerFile = ledgerFile
	}
	if quotesFile != "" {
		c.QuotesFile = quotesFile
	}
	return c
}
