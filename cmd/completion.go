package cmd

import (
	"flag"

	"github.com/etnz/costbasis/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the commander's commands and flags.
//
// A main package calls Completion(c).Complete(name) before parsing the flags:
// it exits when the shell is asking for completions.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: make(map[string]complete.Predictor),
	}
	c.VisitAll(func(f *flag.Flag) {
		root.Flags[f.Name] = predictFlag(f)
	})
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = predictFlag(f)
		})
		if cmd.Name() == "topic" {
			if topics, err := docs.GetAllTopics(); err == nil {
				sub.Args = predict.Set(topics)
			}
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

// predictFlag returns the values to suggest for a flag. Boolean flags take no value.
func predictFlag(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return nil
	}
	switch f.Name {
	case "ledger-file", "o":
		return predict.Files("*.jsonl")
	case "quotes-file":
		return predict.Files("*.json")
	case "config":
		return predict.Files("*.toml")
	}
	return predict.Something
}
