package renderer

import (
	"fmt"

	dashboard "github.com/Anshit2723/weekly-report-dashboard"
)

// SummaryMarkdown renders the KPI summary.
func SummaryMarkdown(s *dashboard.Summary) string {
	b := newBuilder()

	b.Printf("# Portfolio Summary (%s)\n\n", s.Date.Format("2006-01-02"))
	b.Printf("%d projects tracked.\n\n", s.Total)

	b.Table(
		[]string{"Live", "Pipeline", "SOW", "Closed", "Archived"},
		[][]string{{
			fmt.Sprint(s.Live), fmt.Sprint(s.Pipeline), fmt.Sprint(s.SOW),
			fmt.Sprint(s.Closed), fmt.Sprint(s.Archived),
		}},
	)

	b.Printf("## Velocity\n\n")
	b.Printf("- Live average progress: **%d%%**\n", s.AvgProgress)
	b.Printf("- Needs attention (delayed or critical): **%d**\n", s.Attention)
	b.Printf("- Live budget: **%s** of %s total\n\n", s.LiveBudget.Format(s.Currency), s.TotalBudget.Format(s.Currency))

	if len(s.StatusCounts) > 0 {
		b.Printf("## Status Distribution\n\n")
		rows := make([][]string, len(s.StatusCounts))
		for i, sc := range s.StatusCounts {
			rows[i] = []string{string(sc.Status), fmt.Sprint(sc.Count)}
		}
		b.Table([]string{"Status", "Projects"}, rows)
	}

	if len(s.TopOwners) > 0 {
		b.Printf("## Top Owners\n\n")
		rows := make([][]string, len(s.TopOwners))
		for i, oc := range s.TopOwners {
			rows[i] = []string{oc.Owner, fmt.Sprint(oc.Count)}
		}
		b.Table([]string{"Owner", "Projects"}, rows)
	}

	return b.String()
}
