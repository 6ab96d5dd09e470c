package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a jsonpath expression over the persisted state" }
func (*queryCmd) Usage() string {
	return `wrd query <jsonpath>

  Evaluates the expression against the document {"projects": [...],
  "audit": [...]} and prints the result as JSON.

Usage Examples:
# Names of all delayed projects.
$ wrd query '$.projects[?(@.status=="Delayed")].name'

# Proposal codes touched by delete entries.
$ wrd query '$.audit[?(@.action=="DELETE")].entityId'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one jsonpath expression is required.")
		return subcommands.ExitUsageError
	}

	store := OpenStore()
	projects, err := store.Projects()
	if err != nil {
		return fail("Error loading projects: %v", err)
	}
	audit, err := store.AuditLogs()
	if err != nil {
		return fail("Error loading audit log: %v", err)
	}

	// jsonpath operates on generic JSON values, so round-trip the state.
	raw, err := json.Marshal(map[string]any{"projects": projects, "audit": audit})
	if err != nil {
		return fail("Error encoding state: %v", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fail("Error decoding state: %v", err)
	}

	result, err := jsonpath.Get(f.Arg(0), doc)
	if err != nil {
		return fail("Error evaluating %q: %v", f.Arg(0), err)
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fail("Error encoding result: %v", err)
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
