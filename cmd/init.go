package cmd

import (
	"context"
	"flag"
	"fmt"

	dashboard "github.com/Anshit2723/weekly-report-dashboard"
	"github.com/google/subcommands"
)

type initCmd struct {
	source string
	seed   bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "initialize the dashboard from the sample report workbook" }
func (*initCmd) Usage() string {
	return `wrd init [-source <path-or-url>] [-seed]

  Parses the sample report workbook (sheets matching Live, Pipeline/Upcoming/
  Yet to Start, Closed and Deliverables) and replaces the persisted dashboard
  state with the result. The operation is all-or-nothing: a fetch or parse
  failure leaves prior state untouched.

  With -seed, an empty store is populated with two demo projects instead of
  reading a workbook.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.source, "source", "Sample Report.xlsx.xlsx", "Path or http(s) URL of the seed workbook")
	f.BoolVar(&c.seed, "seed", false, "Seed demo data into an empty store instead of importing")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()

	if c.seed {
		if err := store.SeedInitialData(); err != nil {
			return fail("Error seeding demo data: %v", err)
		}
		fmt.Println("Seeded demo data (no-op if the store already held projects).")
		return subcommands.ExitSuccess
	}

	result, err := dashboard.InitializeFromSampleReport(store, c.source, *userName)
	if err != nil {
		return fail("Error: could not load sample report: %v", err)
	}
	fmt.Printf("Loaded %d projects with %d deliverables from %s.\n", result.Projects, result.Deliverables, c.source)
	if result.Dropped > 0 {
		fmt.Printf("Warning: %d deliverable rows matched no project and were dropped.\n", result.Dropped)
	}
	return subcommands.ExitSuccess
}
