// Package cmd implements the CLI application to manage the project dashboard.
package cmd

import (
	"flag"
	"fmt"
	"os"

	dashboard "github.com/Anshit2723/weekly-report-dashboard"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists every subcommand the binary registers.
var Commands = []subcommands.Command{
	&initCmd{},
	&listCmd{},
	&createCmd{},
	&setCmd{},
	&deleteCmd{},
	&archiveCmd{},
	&deliverableCmd{},
	&summaryCmd{},
	&historyCmd{},
	&alertsCmd{},
	&watchCmd{},
	&exportCmd{},
	&backupCmd{},
	&restoreCmd{},
	&queryCmd{},
	&reconcileCmd{},
	&clearCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", ".dashboard", "Path to the folder holding the persisted dashboard state")
var userName = flag.String("user", dashboard.DefaultUser, "User name recorded in audit entries")
var displayCurrency = flag.String("currency", "EUR", "3-letter currency code used to display budgets")

// OpenStore is the central function to open the dashboard store.
func OpenStore() *dashboard.Store {
	return dashboard.NewStore(dashboard.NewDirBackend(*dataDir))
}

// findProject resolves a project by internal id or, failing that, by proposal
// code (first match). It returns ok=false when nothing matches.
func findProject(store *dashboard.Store, key string) (dashboard.Project, bool, error) {
	projects, err := store.Projects()
	if err != nil {
		return dashboard.Project{}, false, err
	}
	for _, p := range projects {
		if p.ID == key {
			return p, true, nil
		}
	}
	for _, p := range projects {
		if dashboard.JoinKey(p.ProposalCode) == dashboard.JoinKey(key) {
			return p, true, nil
		}
	}
	return dashboard.Project{}, false, nil
}

// printMarkdown renders markdown to the terminal. If the renderer cannot be
// built the raw markdown is printed instead.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error to stderr and returns the failure exit status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
