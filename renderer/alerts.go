package renderer

import (
	dashboard "github.com/Anshit2723/weekly-report-dashboard"
)

// AlertsMarkdown renders the current notification set.
func AlertsMarkdown(alerts []dashboard.Alert) string {
	b := newBuilder()
	b.Printf("# System Alerts (%d active)\n\n", len(alerts))

	if len(alerts) == 0 {
		b.Printf("Systems nominal.\n")
		return b.String()
	}

	rows := make([][]string, len(alerts))
	for i, a := range alerts {
		rows[i] = []string{string(a.Level), a.Title, a.Message}
	}
	b.Table([]string{"Level", "Alert", "Detail"}, rows)
	return b.String()
}
