package cmd

import (
	"context"
	"flag"
	"time"

	dashboard "github.com/Anshit2723/weekly-report-dashboard"
	"github.com/Anshit2723/weekly-report-dashboard/renderer"
	"github.com/google/subcommands"
)

type alertsCmd struct{}

func (*alertsCmd) Name() string     { return "alerts" }
func (*alertsCmd) Synopsis() string { return "evaluate notification conditions once" }
func (*alertsCmd) Usage() string {
	return `wrd alerts

  Checks Live and SOW projects for breached deadlines, deadlines within the
  next week, and Critical status. Read-only; use 'watch' to poll continuously.
`
}

func (c *alertsCmd) SetFlags(f *flag.FlagSet) {}

func (c *alertsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	projects, err := store.Projects()
	if err != nil {
		return fail("Error loading projects: %v", err)
	}
	alerts := dashboard.CheckAlerts(projects, time.Now())
	printMarkdown(renderer.AlertsMarkdown(alerts))
	return subcommands.ExitSuccess
}
