package renderer

import (
	"fmt"

	dashboard "github.com/Anshit2723/weekly-report-dashboard"
)

// ProjectsMarkdown renders a project list as a table under the given title.
func ProjectsMarkdown(title string, projects []dashboard.Project) string {
	b := newBuilder()
	b.Printf("# %s\n\n", title)

	if len(projects) == 0 {
		b.Printf("No projects.\n")
		return b.String()
	}

	rows := make([][]string, len(projects))
	for i, p := range projects {
		delivery := p.ExpectedDeliveryDate
		if delivery == "" {
			delivery = "-"
		}
		rows[i] = []string{
			p.ProposalCode, p.Name, p.Client, p.Owner,
			string(p.Status), fmt.Sprintf("%d%%", p.Progress),
			delivery, string(p.Category), fmt.Sprint(len(p.Deliverables)),
		}
	}
	b.Table([]string{"Code", "Name", "Client", "Owner", "Status", "Progress", "Delivery", "Category", "Deliverables"}, rows)
	return b.String()
}

// ProjectMarkdown renders a single project in detail, deliverables included.
func ProjectMarkdown(p dashboard.Project, currency string) string {
	b := newBuilder()
	b.Printf("# %s (%s)\n\n", p.Name, p.ProposalCode)
	b.Printf("- Client: %s\n", p.Client)
	b.Printf("- Owner: %s\n", p.Owner)
	b.Printf("- Status: %s, %d%% complete\n", p.Status, p.Progress)
	b.Printf("- Category: %s\n", p.Category)
	if !p.Budget.IsZero() {
		b.Printf("- Budget: %s\n", p.Budget.Format(currency))
	}
	if p.StartDate != "" {
		b.Printf("- Start: %s\n", p.StartDate)
	}
	if p.ExpectedDeliveryDate != "" {
		b.Printf("- Expected delivery: %s\n", p.ExpectedDeliveryDate)
	}
	if p.ActualDeliveryDate != "" {
		b.Printf("- Actual delivery: %s\n", p.ActualDeliveryDate)
	}
	if p.Notes != "" {
		b.Printf("- Notes: %s\n", p.Notes)
	}
	b.Printf("\n")

	if len(p.Deliverables) > 0 {
		b.Printf("## Deliverables\n\n")
		rows := make([][]string, len(p.Deliverables))
		for i, d := range p.Deliverables {
			due := d.DueDate
			if due == "" {
				due = "-"
			}
			rows[i] = []string{d.Name, string(d.Status), due}
		}
		b.Table([]string{"Name", "Status", "Due"}, rows)
	}
	return b.String()
}
