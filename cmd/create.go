package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	dashboard "github.com/Anshit2723/weekly-report-dashboard"
	"github.com/google/subcommands"
)

type createCmd struct {
	code     string
	name     string
	client   string
	owner    string
	category string
	status   string
	start    string
	delivery string
	budget   string
	notes    string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new project" }
func (*createCmd) Usage() string {
	return `wrd create -code <proposal-code> -name <name> [flags]

  Creates a project and records a CREATE audit entry. No uniqueness check is
  performed on the proposal code; duplicates will collide on deliverable
  linking (first match wins).
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "Proposal code (required)")
	f.StringVar(&c.name, "name", "", "Project name (required)")
	f.StringVar(&c.client, "client", "Unknown", "Client name")
	f.StringVar(&c.owner, "owner", "Unassigned", "Owner name")
	f.StringVar(&c.category, "c", "Pipeline", "Category (Live, Pipeline, SOW, Closed, Archive)")
	f.StringVar(&c.status, "status", "Not Started", "Initial status")
	f.StringVar(&c.start, "start", "", "Start date (loose format, stored as-is)")
	f.StringVar(&c.delivery, "delivery", "", "Expected delivery date (loose format, stored as-is)")
	f.StringVar(&c.budget, "budget", "0", "Budget amount (bare number)")
	f.StringVar(&c.notes, "notes", "", "Free-form notes")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" || c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -code and -name flags are required.")
		return subcommands.ExitUsageError
	}
	category, err := dashboard.ParseCategory(c.category)
	if err != nil {
		return fail("Error: %v", err)
	}
	status, err := dashboard.ParseStatus(c.status)
	if err != nil {
		return fail("Error: %v", err)
	}
	budget, err := dashboard.ParseBudget(c.budget)
	if err != nil {
		return fail("Error: %v", err)
	}

	p := dashboard.Project{
		ID:                   dashboard.NewID(),
		ProposalCode:         c.code,
		Name:                 c.name,
		Client:               c.client,
		Owner:                c.owner,
		StartDate:            c.start,
		ExpectedDeliveryDate: c.delivery,
		Status:               status,
		Budget:               budget,
		Category:             category,
		Notes:                c.notes,
		Deliverables:         []dashboard.Deliverable{},
	}

	store := OpenStore()
	if err := store.CreateProject(p, *userName); err != nil {
		return fail("Error creating project: %v", err)
	}
	fmt.Printf("Created project %q (%s).\n", p.Name, p.ProposalCode)
	return subcommands.ExitSuccess
}
