package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a project permanently" }
func (*deleteCmd) Usage() string {
	return `wrd delete <id-or-code>

  Removes the project and records a DELETE audit entry keyed by its proposal
  code. Prefer 'archive' unless the record really must go.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := store.DeleteProject(p.ID, *userName); err != nil {
		return fail("Error deleting project: %v", err)
	}
	fmt.Printf("Deleted project %q (%s).\n", p.Name, p.ProposalCode)
	return subcommands.ExitSuccess
}
