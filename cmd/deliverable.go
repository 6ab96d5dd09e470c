package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	dashboard "github.com/Anshit2723/weekly-report-dashboard"
	"github.com/google/subcommands"
)

type deliverableCmd struct {
	add    string
	due    string
	status string
	item   string
	remove string
}

func (*deliverableCmd) Name() string     { return "deliverable" }
func (*deliverableCmd) Synopsis() string { return "manage the deliverables of a project" }
func (*deliverableCmd) Usage() string {
	return `wrd deliverable <id-or-code> [-add <name> [-due <date>]] [-item <name> -status <status>] [-rm <name>]

  Adds, updates or removes deliverables on the given project. Deliverables
  exist only inside their owning project; every change is an UPDATE on the
  project itself.

Usage Examples:
# Add a deliverable to project P-1.
$ wrd deliverable P-1 -add "Design document" -due 30/04/2024

# Mark it done.
$ wrd deliverable P-1 -item "Design document" -status Done
`
}

func (c *deliverableCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Name of a deliverable to add")
	f.StringVar(&c.due, "due", "", "Due date for -add (loose format, stored as-is)")
	f.StringVar(&c.item, "item", "", "Name of an existing deliverable to update")
	f.StringVar(&c.status, "status", "", "New status for -item (Pending, In Progress, Done)")
	f.StringVar(&c.remove, "rm", "", "Name of a deliverable to remove")
}

func (c *deliverableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one project id or proposal code is required.")
		return subcommands.ExitUsageError
	}
	if c.add == "" && c.item == "" && c.remove == "" {
		fmt.Fprintln(os.Stderr, "Error: one of -add, -item or -rm is required.")
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

	if c.add != "" {
		p.Deliverables = append(p.Deliverables, dashboard.Deliverable{
			ID:      dashboard.NewID(),
			Name:    c.add,
			Status:  dashboard.Pending,
			DueDate: c.due,
		})
	}

	if c.item != "" {
		if c.status == "" {
			fmt.Fprintln(os.Stderr, "Error: -item requires -status.")
			return subcommands.ExitUsageError
		}
		status, err := dashboard.ParseDeliverableStatus(c.status)
		if err != nil {
			return fail("Error: %v", err)
		}
		found := false
		for i := range p.Deliverables {
			if p.Deliverables[i].Name == c.item {
				p.Deliverables[i].Status = status
				found = true
				break
			}
		}
		if !found {
			return fail("Error: project %q has no deliverable %q", p.Name, c.item)
		}
	}

	if c.remove != "" {
		kept := p.Deliverables[:0]
		found := false
		for _, d := range p.Deliverables {
			if d.Name == c.remove && !found {
				found = true
				continue
			}
			kept = append(kept, d)
		}
		if !found {
			return fail("Error: project %q has no deliverable %q", p.Name, c.remove)
		}
		p.Deliverables = kept
	}

	if err := store.UpdateProject(p, *userName); err != nil {
		return fail("Error updating project: %v", err)
	}
	fmt.Printf("Updated deliverables of %q (%d total).\n", p.Name, len(p.Deliverables))
	return subcommands.ExitSuccess
}
