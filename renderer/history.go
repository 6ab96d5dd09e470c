package renderer

import (
	dashboard "github.com/Anshit2723/weekly-report-dashboard"
)

// HistoryMarkdown renders the audit log, most recent entry first.
func HistoryMarkdown(entries []dashboard.AuditEntry) string {
	b := newBuilder()
	b.Printf("# Audit History\n\n")

	if len(entries) == 0 {
		b.Printf("No recorded activity.\n")
		return b.String()
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Timestamp, e.User, string(e.Action), e.EntityID, e.Details}
	}
	b.Table([]string{"Timestamp", "User", "Action", "Entity", "Details"}, rows)
	return b.String()
}
