package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	dashboard "github.com/Anshit2723/weekly-report-dashboard"
	"github.com/google/subcommands"
)

type archiveCmd struct{}

func (*archiveCmd) Name() string     { return "archive" }
func (*archiveCmd) Synopsis() string { return "move a project to the Archive category" }
func (*archiveCmd) Usage() string {
	return `wrd archive <id-or-code>

  Sets the project's category to Archive, removing it from the active views.
  The record and its history are kept; this is the reversible alternative to
  'delete'.
`
}

func (c *archiveCmd) SetFlags(f *flag.FlagSet) {}

func (c *archiveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one project id or proposal code is required.")
		return subcommands.ExitUsageError
	}

	store := OpenStore()
	p, ok, err := findProject(store, f.Arg(0))
	if err != nil {
		return fail("Error loading projects: %v", err)
	}
	if !ok {
		return fail("Error: no project matches %q", f.Arg(0))
	}
	if p.Category == dashboard.Archive {
		fmt.Printf("Project %q is already archived.\n", p.Name)
		return subcommands.ExitSuccess
	}
	p.Category = dashboard.Archive
	if err := store.UpdateProject(p, *userName); err != nil {
		return fail("Error archiving project: %v", err)
	}
	fmt.Printf("Archived project %q (%s).\n", p.Name, p.ProposalCode)
	return subcommands.ExitSuccess
}
