package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/require"
)

// createTempLedger creates a ledger file in a temporary directory.
func createTempLedger(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "ledger.jsonl")
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write ledger: %v", err)
	}
	return name
}

// useLedger points the global flags to this ledger file, without config nor quotes.
func useLedger(t *testing.T, name string) {
	t.Helper()
	oldLedger, oldQuotes, oldConfig := ledgerFile, quotesFile, configFile
	dir := t.TempDir()
	none, quotes := filepath.Join(dir, "none.toml"), filepath.Join(dir, "quotes.json")
	ledgerFile, quotesFile, configFile = &name, &quotes, &none
	t.Cleanup(func() { ledgerFile, quotesFile, configFile = oldLedger, oldQuotes, oldConfig })
}

func execute(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	require.NoError(t, f.Parse(args))
	return cmd.Execute(context.Background(), f)
}

func TestFmtCmd(t *testing.T) {
	original := `{"command":"declare","ticker":"MSFT","type":"equity","currency":"USD"}
{"command":"sell","date":"2003-01-01","account":"A","security":"MSFT","units":5,"amount":50}

{"command":"buy","date":"2000-01-01","account":"A","security":"MSFT","units":10,"amount":10}
`
	want := `{"command":"declare","ticker":"MSFT","type":"equity","currency":"USD"}
{"command":"buy","date":"2000-01-01","account":"A","security":"MSFT","units":10,"amount":10}
{"command":"sell","date":"2003-01-01","account":"A","security":"MSFT","units":5,"amount":50}
`

	t.Run("in place", func(t *testing.T) {
		name := createTempLedger(t, original)
		useLedger(t, name)

		require.Equal(t, subcommands.ExitSuccess, execute(t, &fmtCmd{}))
		got, err := os.ReadFile(name)
		require.NoError(t, err)
		require.Equal(t, want, string(got))
	})

	t.Run("output file", func(t *testing.T) {
		name := createTempLedger(t, original)
		useLedger(t, name)
		output := filepath.Join(t.TempDir(), "out.jsonl")

		require.Equal(t, subcommands.ExitSuccess, execute(t, &fmtCmd{}, "-o", output))
		got, err := os.ReadFile(output)
		require.NoError(t, err)
		require.Equal(t, want, string(got))

		// the ledger itself is left untouched.
		unchanged, err := os.ReadFile(name)
		require.NoError(t, err)
		require.Equal(t, original, string(unchanged))
	})

	t.Run("invalid ledger", func(t *testing.T) {
		name := createTempLedger(t, `{"command":"buy","date":"2000-01-01","account":"A","security":"MSFT","units":10,"amount":10}`)
		useLedger(t, name)
		require.Equal(t, subcommands.ExitFailure, execute(t, &fmtCmd{}))
	})
}

func TestPendingCmd(t *testing.T) {
	tests := []struct {
		name   string
		ledger string
		want   subcommands.ExitStatus
	}{
		{
			name: "clean",
			ledger: `{"command":"declare","ticker":"MSFT","type":"equity","currency":"USD"}
{"command":"buy","date":"2000-01-01","account":"A","security":"MSFT","units":10,"amount":10}
{"command":"sell","date":"2003-01-01","account":"A","security":"MSFT","units":10,"amount":50}
`,
			want: subcommands.ExitSuccess,
		},
		{
			name: "oversold",
			ledger: `{"command":"declare","ticker":"MSFT","type":"equity","currency":"USD"}
{"command":"buy","date":"2000-01-01","account":"A","security":"MSFT","units":10,"amount":10}
{"command":"sell","date":"2003-01-01","account":"A","security":"MSFT","units":15,"amount":75}
`,
			want: subcommands.ExitFailure,
		},
		{
			name: "skipped transfer",
			ledger: `{"command":"declare","ticker":"MSFT","type":"equity","currency":"USD"}
{"command":"buy","date":"2000-01-01","account":"A","security":"MSFT","units":10,"amount":10}
{"command":"remove","date":"2003-01-01","account":"A","security":"MSFT","units":10,"amount":0,"transfer":"nowhere"}
`,
			want: subcommands.ExitFailure,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useLedger(t, createTempLedger(t, tt.ledger))
			require.Equal(t, tt.want, execute(t, &pendingCmd{}, "-d", "2010-01-01"))
		})
	}
}

func TestReportCmds(t *testing.T) {
	useLedger(t, createTempLedger(t, `{"command":"declare","ticker":"MSFT","type":"equity","currency":"USD"}
{"command":"account","name":"IRA","taxDeferred":true}
{"command":"buy","date":"2000-01-01","account":"A","security":"MSFT","units":10,"amount":10}
{"command":"buy","date":"2000-01-01","account":"IRA","security":"MSFT","units":10,"amount":10}
{"command":"sell","date":"2003-01-01","account":"A","security":"MSFT","units":5,"amount":50}
`))

	require.Equal(t, subcommands.ExitSuccess, execute(t, &gainsCmd{}, "-d", "2010-01-01", "-y", "2003"))
	require.Equal(t, subcommands.ExitSuccess, execute(t, &holdingsCmd{}, "-d", "2010-01-01", "-taxable", "-lots"))
	require.Equal(t, subcommands.ExitSuccess, execute(t, &lotsCmd{}, "-a", "IRA"))

	require.Equal(t, subcommands.ExitUsageError, execute(t, &lotsCmd{}), "-a is required")
	require.Equal(t, subcommands.ExitUsageError, execute(t, &gainsCmd{}, "-d", "not a date"))
	require.Equal(t, subcommands.ExitUsageError, execute(t, &gainsCmd{}, "-long-term", "-1"))
}

func TestReportCmds_MissingLedger(t *testing.T) {
	useLedger(t, filepath.Join(t.TempDir(), "missing.jsonl"))
	require.Equal(t, subcommands.ExitFailure, execute(t, &gainsCmd{}))
	require.Equal(t, subcommands.ExitFailure, execute(t, &holdingsCmd{}))
}
