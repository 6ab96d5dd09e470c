package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	dashboard "github.com/Anshit2723/weekly-report-dashboard"
	"github.com/google/subcommands"
)

type restoreCmd struct {
	force bool
}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "overwrite the store from a JSON snapshot" }
func (*restoreCmd) Usage() string {
	return `wrd restore -force <file>

  Parses the snapshot and overwrites the persisted projects (and audit log,
  when the snapshot carries one) wholesale. A snapshot that fails to parse
  leaves prior state untouched. -force is required: this cannot be undone.
`
}

func (c *restoreCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Confirm overwriting all persisted data")
}

func (c *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one snapshot file is required.")
		return subcommands.ExitUsageError
	}
	if !c.force {
		fmt.Fprintln(os.Stderr, "Error: restore overwrites all system data; re-run with -force to confirm.")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		return fail("Error opening %q: %v", f.Arg(0), err)
	}
	defer file.Close()

	backup, err := dashboard.ReadBackup(file)
	if err != nil {
		return fail("Integrity check failed: %v", err)
	}
	if err := OpenStore().RestoreBackup(backup); err != nil {
		return fail("Error restoring backup: %v", err)
	}
	fmt.Printf("Restored %d projects from %s.\n", len(backup.Projects), f.Arg(0))
	return subcommands.ExitSuccess
}
