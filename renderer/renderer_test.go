package renderer

import (
	"strings"
	"testing"
	"time"

	dashboard "github.com/Anshit2723/weekly-report-dashboard"
)

func TestSummaryMarkdown(t *testing.T) {
	projects := []dashboard.Project{
		{Name: "Alpha", Owner: "Sarah Chen", Category: dashboard.Live, Status: dashboard.OnTrack, Progress: 60, Budget: dashboard.B(1000)},
		{Name: "Beta", Owner: "Sarah Chen", Category: dashboard.Live, Status: dashboard.Delayed, Progress: 40},
		{Name: "Gamma", Owner: "Mike Ross", Category: dashboard.Pipeline, Status: dashboard.NotStarted},
	}
	s := dashboard.NewSummary(projects, "EUR", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	got := SummaryMarkdown(s)

	for _, want := range []string{
		"Portfolio Summary (2024-06-01)",
		"3 projects tracked",
		"Live average progress: **50%**",
		"Needs attention (delayed or critical): **1**",
		"| On Track | 1 |",
		"| Sarah Chen | 2 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestProjectsMarkdownEmpty(t *testing.T) {
	got := ProjectsMarkdown("Live Projects", nil)
	if !strings.Contains(got, "No projects.") {
		t.Errorf("ProjectsMarkdown() = %q, want empty notice", got)
	}
}

func TestProjectsMarkdownTable(t *testing.T) {
	projects := []dashboard.Project{
		{
			ProposalCode: "P-1", Name: "Alpha", Client: "Acme", Owner: "Sarah Chen",
			Status: dashboard.OnTrack, Progress: 65, ExpectedDeliveryDate: "30/04/2024",
			Category: dashboard.Live, Deliverables: []dashboard.Deliverable{{Name: "Design"}},
		},
	}
	got := ProjectsMarkdown("Live Projects", projects)
	if !strings.Contains(got, "| P-1 | Alpha | Acme | Sarah Chen | On Track | 65% | 30/04/2024 | Live | 1 |") {
		t.Errorf("ProjectsMarkdown() table row missing in:\n%s", got)
	}
}

func TestHistoryMarkdown(t *testing.T) {
	entries := []dashboard.AuditEntry{
		{Timestamp: "2024-06-01T10:00:00Z", User: "Admin User", Action: dashboard.ActionCreate, EntityID: "P-1", Details: "Created new project: Alpha"},
	}
	got := HistoryMarkdown(entries)
	if !strings.Contains(got, "| 2024-06-01T10:00:00Z | Admin User | CREATE | P-1 | Created new project: Alpha |") {
		t.Errorf("HistoryMarkdown() row missing in:\n%s", got)
	}
}

func TestAlertsMarkdown(t *testing.T) {
	alerts := []dashboard.Alert{
		{Level: dashboard.Urgent, Title: "DEADLINE BREACHED", Message: "Alpha is 3 days overdue."},
	}
	got := AlertsMarkdown(alerts)
	if !strings.Contains(got, "(1 active)") || !strings.Contains(got, "DEADLINE BREACHED") {
		t.Errorf("AlertsMarkdown() unexpected output:\n%s", got)
	}
	if empty := AlertsMarkdown(nil); !strings.Contains(empty, "Systems nominal.") {
		t.Errorf("AlertsMarkdown(nil) = %q", empty)
	}
}
