package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/costbasis/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	cmd.Completion(commander).Complete(commander.Name())

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
