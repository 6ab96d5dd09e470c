package cmd

import (
	"context"
	"flag"

	"github.com/Anshit2723/weekly-report-dashboard/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	limit int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the audit log, most recent first" }
func (*historyCmd) Usage() string {
	return `wrd history [-n <count>]

  Shows the append-only audit trail of every create, update, delete, seed and
  reconcile that touched the project collection.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 50, "Maximum number of entries to show (0 for all)")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	entries, err := store.AuditLogs()
	if err != nil {
		return fail("Error loading audit log: %v", err)
	}
	if c.limit > 0 && len(entries) > c.limit {
		entries = entries[:c.limit]
	}
	printMarkdown(renderer.HistoryMarkdown(entries))
	return subcommands.ExitSuccess
}
