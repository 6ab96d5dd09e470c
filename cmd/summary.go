package cmd

import (
	"context"
	"flag"
	"time"

	dashboard "github.com/Anshit2723/weekly-report-dashboard"
	"github.com/Anshit2723/weekly-report-dashboard/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the KPI summary of the portfolio" }
func (*summaryCmd) Usage() string {
	return `wrd summary

  Shows category counts, live velocity, attention items, budget totals and
  the status and owner distributions.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	projects, err := store.Projects()
	if err != nil {
		return fail("Error loading projects: %v", err)
	}
	s := dashboard.NewSummary(projects, *displayCurrency, time.Now())
	printMarkdown(renderer.SummaryMarkdown(s))
	return subcommands.ExitSuccess
}
