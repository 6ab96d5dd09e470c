package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearCmd struct {
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "erase all persisted data" }
func (*clearCmd) Usage() string {
	return `wrd clear -force

  Erases both the project collection and the audit log. Irreversible.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Confirm erasing all persisted data")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(os.Stderr, "Error: clear erases all system data; re-run with -force to confirm.")
		return subcommands.ExitUsageError
	}
	if err := OpenStore().ClearData(); err != nil {
		return fail("Error clearing data: %v", err)
	}
	fmt.Println("All data cleared.")
	return subcommands.ExitSuccess
}
