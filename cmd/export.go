package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	dashboard "github.com/Anshit2723/weekly-report-dashboard"
	"github.com/google/subcommands"
)

type exportCmd struct {
	category string
	output   string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export projects to an xlsx file" }
func (*exportCmd) Usage() string {
	return `wrd export [-c <category>] [-o <file>]

  Writes a spreadsheet with one sheet holding a flat projection of every
  project field. With -c only that category is exported and the conventional
  filename for the category is used unless -o overrides it.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Category to export (default: everything)")
	f.StringVar(&c.output, "o", "", "Output file (default derived from the category)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	projects, err := store.Projects()
	if err != nil {
		return fail("Error loading projects: %v", err)
	}

	sheetName := "All Projects"
	filename := "Projects_Export.xlsx"
	if c.category != "" {
		category, err := dashboard.ParseCategory(c.category)
		if err != nil {
			return fail("Error: %v", err)
		}
		var filtered []dashboard.Project
		for _, p := range projects {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		projects = filtered
		sheetName = fmt.Sprintf("%s Projects", category)
		filename = dashboard.ExportFilename(category)
	}
	if c.output != "" {
		filename = c.output
	}

	file, err := os.Create(filename)
	if err != nil {
		return fail("Error creating %q: %v", filename, err)
	}
	defer file.Close()

	if err := dashboard.ExportProjects(file, sheetName, projects); err != nil {
		return fail("Error exporting projects: %v", err)
	}
	fmt.Printf("Exported %d projects to %s.\n", len(projects), filename)
	return subcommands.ExitSuccess
}
