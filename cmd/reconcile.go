package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type reconcileCmd struct{}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "re-link deliverables across duplicate proposal codes" }
func (*reconcileCmd) Usage() string {
	return `wrd reconcile

  Proposal codes are not unique, and ingestion attaches deliverables to the
  first project matching the code. After codes are edited by hand, this pass
  moves deliverables stranded on later duplicates back onto the first project
  with the same join key, and records one RECONCILE audit entry. A consistent
  store is a silent no-op.
`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {}

func (c *reconcileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	moved, err := OpenStore().Reconcile(*userName)
	if err != nil {
		return fail("Error reconciling: %v", err)
	}
	if moved == 0 {
		fmt.Println("Nothing to reconcile.")
	} else {
		fmt.Printf("Relinked %d deliverables.\n", moved)
	}
	return subcommands.ExitSuccess
}
