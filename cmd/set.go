package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	dashboard "github.com/Anshit2723/weekly-report-dashboard"
	"github.com/google/subcommands"
)

type setCmd struct {
	name     string
	client   string
	owner    string
	category string
	status   string
	progress string
	start    string
	delivery string
	actual   string
	budget   string
	notes    string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "update fields of an existing project" }
func (*setCmd) Usage() string {
	return `wrd set <id-or-code> [flags]

  Updates the given fields of the project identified by internal id or
  proposal code. Omitted flags leave their field untouched. An update that
  changes nothing is a silent no-op: no audit entry, no timestamp change.
  Otherwise an UPDATE entry records every field change as old -> new.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Project name")
	f.StringVar(&c.client, "client", "", "Client name")
	f.StringVar(&c.owner, "owner", "", "Owner name")
	f.StringVar(&c.category, "c", "", "Category (Live, Pipeline, SOW, Closed, Archive)")
	f.StringVar(&c.status, "status", "", "Status (Not Started, On Track, Delayed, Critical, Completed)")
	f.StringVar(&c.progress, "progress", "", "Progress percentage, 0-100 (not range checked)")
	f.StringVar(&c.start, "start", "", "Start date")
	f.StringVar(&c.delivery, "delivery", "", "Expected delivery date")
	f.StringVar(&c.actual, "actual", "", "Actual delivery date")
	f.StringVar(&c.budget, "budget", "", "Budget amount (bare number)")
	f.StringVar(&c.notes, "notes", "", "Free-form notes")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.name != "" {
		p.Name = c.name
	}
	if c.client != "" {
		p.Client = c.client
	}
	if c.owner != "" {
		p.Owner = c.owner
	}
	if c.category != "" {
		category, err := dashboard.ParseCategory(c.category)
		if err != nil {
			return fail("Error: %v", err)
		}
		p.Category = category
	}
	if c.status != "" {
		status, err := dashboard.ParseStatus(c.status)
		if err != nil {
			return fail("Error: %v", err)
		}
		p.Status = status
	}
	if c.progress != "" {
		progress, err := strconv.Atoi(c.progress)
		if err != nil {
			return fail("Error: invalid progress %q: %v", c.progress, err)
		}
		p.Progress = progress
	}
	if c.start != "" {
		p.StartDate = c.start
	}
	if c.delivery != "" {
		p.ExpectedDeliveryDate = c.delivery
	}
	if c.actual != "" {
		p.ActualDeliveryDate = c.actual
	}
	if c.budget != "" {
		budget, err := dashboard.ParseBudget(c.budget)
		if err != nil {
			return fail("Error: %v", err)
		}
		p.Budget = budget
	}
	if c.notes != "" {
		p.Notes = c.notes
	}

	if err := store.UpdateProject(p, *userName); err != nil {
		return fail("Error updating project: %v", err)
	}
	fmt.Printf("Updated project %q (%s).\n", p.Name, p.ProposalCode)
	return subcommands.ExitSuccess
}
