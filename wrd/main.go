package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/Anshit2723/weekly-report-dashboard/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// shell completion: exits early when invoked by the completion machinery.
	categories := predict.Set{"Live", "Pipeline", "SOW", "Closed", "Archive"}
	statuses := predict.Set{"Not Started", "On Track", "Delayed", "Critical", "Completed"}
	completion := &complete.Command{
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
			"user":     predict.Something,
			"currency": predict.Set{"EUR", "USD", "GBP"},
		},
		Sub: map[string]*complete.Command{
			"init":        {Flags: map[string]complete.Predictor{"source": predict.Files("*.xlsx"), "seed": predict.Nothing}},
			"list":        {Flags: map[string]complete.Predictor{"c": categories, "status": statuses, "owner": predict.Something, "q": predict.Something}},
			"create":      {Flags: map[string]complete.Predictor{"c": categories, "status": statuses}},
			"set":         {Flags: map[string]complete.Predictor{"c": categories, "status": statuses}},
			"delete":      {},
			"archive":     {},
			"deliverable": {},
			"summary":     {},
			"history":     {},
			"alerts":      {},
			"watch":       {},
			"export":      {Flags: map[string]complete.Predictor{"c": categories, "o": predict.Files("*.xlsx")}},
			"backup":      {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
			"restore":     {Flags: map[string]complete.Predictor{"force": predict.Nothing}},
			"query":       {},
			"reconcile":   {},
			"clear":       {Flags: map[string]complete.Predictor{"force": predict.Nothing}},
			"topic":       {},
		},
	}
	completion.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
