package cmd

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	dashboard "github.com/Anshit2723/weekly-report-dashboard"
	"github.com/Anshit2723/weekly-report-dashboard/renderer"
	"github.com/fsnotify/fsnotify"
	"github.com/google/subcommands"
)

type watchCmd struct {
	interval time.Duration
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "poll notification conditions until interrupted" }
func (*watchCmd) Usage() string {
	return `wrd watch [-i <interval>]

  Re-evaluates the alert conditions on a fixed interval and whenever the data
  directory changes. Read-only: nothing is mutated. Stop with Ctrl-C.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.interval, "i", 30*time.Second, "Polling interval")
}

func (c *watchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()

	check := func() {
		projects, err := store.Projects()
		if err != nil {
			log.Printf("could not load projects: %v", err)
			return
		}
		printMarkdown(renderer.AlertsMarkdown(dashboard.CheckAlerts(projects, time.Now())))
	}

	// change events are best-effort: a missing data dir only disables them.
	var events chan fsnotify.Event
	watcher, err := fsnotify.NewWatcher()
	if err == nil {
		defer watcher.Close()
		if err := watcher.Add(*dataDir); err != nil {
			log.Printf("warning: not watching %q: %v", *dataDir, err)
		} else {
			events = make(chan fsnotify.Event)
			go func() {
				for ev := range watcher.Events {
					if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
						events <- ev
					}
				}
			}()
		}
	} else {
		log.Printf("warning: file watching unavailable: %v", err)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	check()
	for {
		select {
		case <-ticker.C:
			check()
		case <-events:
			check()
		case <-interrupt:
			return subcommands.ExitSuccess
		}
	}
}
