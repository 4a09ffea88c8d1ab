package cmd

import (
	"flag"
	"testing"

	"github.com/etnz/costbasis"
	"github.com/etnz/costbasis/docs"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/require"
)

func TestCompletion(t *testing.T) {
	top := flag.NewFlagSet("cgt", flag.ContinueOnError)
	top.String("ledger-file", "", "")
	commander := subcommands.NewCommander(top, "cgt")
	Register(commander)

	c := Completion(commander)
	require.Contains(t, c.Flags, "ledger-file")
	for _, name := range []string{"gains", "holdings", "lots", "pending", "fmt", "topic"} {
		require.Contains(t, c.Sub, name)
	}

	gains := c.Sub["gains"]
	require.NotNil(t, gains.Flags["y"], "-y takes a value")
	p, ok := gains.Flags["consolidate"]
	require.True(t, ok)
	require.Nil(t, p, "-consolidate is a boolean flag")

	topics, err := docs.GetAllTopics()
	require.NoError(t, err)
	require.ElementsMatch(t, topics, c.Sub["topic"].Args.Predict(""))
}

func TestHoldingsFilter(t *testing.T) {
	ira := costbasis.Account{Name: "IRA", TaxDeferred: true}
	broker := costbasis.Account{Name: "Broker"}

	require.Nil(t, (&holdingsCmd{}).filter())

	taxable := (&holdingsCmd{taxable: true}).filter()
	require.True(t, taxable(broker))
	require.False(t, taxable(ira))

	one := (&holdingsCmd{account: "IRA"}).filter()
	require.True(t, one(ira))
	require.False(t, one(broker))

	none := (&holdingsCmd{account: "IRA", taxable: true}).filter()
	require.False(t, none(ira))
	require.False(t, none(broker))
}

func TestTopicList(t *testing.T) {
	list, err := topicList()
	require.NoError(t, err)
	require.Contains(t, list, "- `fifo`: First In, First Out\n")
	require.NotContains(t, list, "readme")

	require.Equal(t, subcommands.ExitSuccess, execute(t, &topicCmd{}, "-l"))
	require.Equal(t, subcommands.ExitSuccess, execute(t, &topicCmd{}, "splits", "transfers"))
	require.Equal(t, subcommands.ExitFailure, execute(t, &topicCmd{}, "nope"))
}
