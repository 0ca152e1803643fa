package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/finlens/earnings/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs (and exits) before normal flag parsing.
	cmp := &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.csv"),
			"names-file":  predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"report": {Flags: map[string]complete.Predictor{"json": nil}},
			"assist": {},
			"topic":  {},
		},
	}
	cmp.Complete("ern")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
