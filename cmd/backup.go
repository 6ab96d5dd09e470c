package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	dashboard "github.com/Anshit2723/weekly-report-dashboard"
	"github.com/google/subcommands"
)

type backupCmd struct {
	output string
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "write a full JSON snapshot of the store" }
func (*backupCmd) Usage() string {
	return `wrd backup [-o <file>]

  Writes projects, audit log, timestamp and format version as one indented
  JSON document. The default filename carries the current date.
`
}

func (c *backupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (default Nexus_Backup_<date>.json)")
}

func (c *backupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filename := c.output
	if filename == "" {
		filename = dashboard.BackupFilename(time.Now())
	}

	file, err := os.Create(filename)
	if err != nil {
		return fail("Error creating %q: %v", filename, err)
	}
	defer file.Close()

	if err := dashboard.WriteBackup(file, OpenStore()); err != nil {
		return fail("Error writing backup: %v", err)
	}
	fmt.Printf("Backup written to %s.\n", filename)
	return subcommands.ExitSuccess
}
