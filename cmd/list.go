package cmd

import (
	"context"
	"flag"
	"strings"

	dashboard "github.com/Anshit2723/weekly-report-dashboard"
	"github.com/Anshit2723/weekly-report-dashboard/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	category string
	status   string
	owner    string
	search   string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list projects, optionally filtered" }
func (*listCmd) Usage() string {
	return `wrd list [-c <category>] [-status <status>] [-owner <owner>] [-q <text>]

  Displays the project table. Filters combine: category and status match
  exactly, owner and the free-text query match case-insensitive substrings
  (the query searches name, client and proposal code).
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Category filter (Live, Pipeline, SOW, Closed, Archive)")
	f.StringVar(&c.status, "status", "", "Status filter (Not Started, On Track, Delayed, Critical, Completed)")
	f.StringVar(&c.owner, "owner", "", "Owner substring filter")
	f.StringVar(&c.search, "q", "", "Free-text filter on name, client and code")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	projects, err := store.Projects()
	if err != nil {
		return fail("Error loading projects: %v", err)
	}

	var category dashboard.Category
	if c.category != "" {
		category, err = dashboard.ParseCategory(c.category)
		if err != nil {
			return fail("Error: %v", err)
		}
	}
	var status dashboard.Status
	if c.status != "" {
		status, err = dashboard.ParseStatus(c.status)
		if err != nil {
			return fail("Error: %v", err)
		}
	}

	var filtered []dashboard.Project
	for _, p := range projects {
		if category != "" && p.Category != category {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		if c.owner != "" && !strings.Contains(strings.ToLower(p.Owner), strings.ToLower(c.owner)) {
			continue
		}
		if c.search != "" && !matchesQuery(p, c.search) {
			continue
		}
		filtered = append(filtered, p)
	}

	title := "Projects"
	if category != "" {
		title = string(category) + " Projects"
	}
	printMarkdown(renderer.ProjectsMarkdown(title, filtered))
	return subcommands.ExitSuccess
}

func matchesQuery(p dashboard.Project, q string) bool {
	q = strings.ToLower(q)
	for _, field := range []string{p.Name, p.Client, p.ProposalCode} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
