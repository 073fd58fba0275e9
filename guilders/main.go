package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/alinalihassan/guilders/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Load .env for local setups; absence is fine.
	_ = godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion registers shell completion and returns immediately unless the
// process was invoked by the shell's completion hook.
func completion() {
	subs := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		subs[c.Name()] = &complete.Command{}
	}
	root := &complete.Command{
		Sub: subs,
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
		},
	}
	root.Complete("guilders")
}
