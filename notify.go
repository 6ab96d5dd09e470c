package dashboard

import (
	"fmt"
	"sort"
	"time"
)

// AlertLevel ranks an alert.
type AlertLevel string

const (
	Urgent  AlertLevel = "urgent"
	Warning AlertLevel = "warning"
)

// Alert is one notification raised by the read-only polling pass. Alerts are
// recomputed from scratch on every check; nothing is stored.
type Alert struct {
	ID          string
	Level       AlertLevel
	Title       string
	Message     string
	ProjectID   string
	ProjectName string
}

// dueSoonWindow is the look-ahead, in days, for imminent deadlines.
const dueSoonWindow = 7

// CheckAlerts evaluates the notification conditions over Live and SOW
// projects: breached deadlines, deadlines within the look-ahead window and
// Critical status. Urgent alerts sort first.
func CheckAlerts(projects []Project, today time.Time) []Alert {
	var alerts []Alert

	for _, p := range projects {
		if p.Category != Live && p.Category != SOW {
			continue
		}

		if end, ok := ParseLooseDate(p.ExpectedDeliveryDate); ok && p.Status != Completed {
			daysLeft := daysUntil(end, today)
			switch {
			case daysLeft < 0:
				alerts = append(alerts, Alert{
					ID:          "overdue-" + p.ID,
					Level:       Urgent,
					Title:       "DEADLINE BREACHED",
					Message:     fmt.Sprintf("%s is %d days overdue.", p.Name, -daysLeft),
					ProjectID:   p.ID,
					ProjectName: p.Name,
				})
			case daysLeft <= dueSoonWindow:
				alerts = append(alerts, Alert{
					ID:          "due-soon-" + p.ID,
					Level:       Warning,
					Title:       "IMMINENT DEADLINE",
					Message:     fmt.Sprintf("%s due in %d days.", p.Name, daysLeft),
					ProjectID:   p.ID,
					ProjectName: p.Name,
				})
			}
		}

		if p.Status == Critical {
			alerts = append(alerts, Alert{
				ID:          "crit-" + p.ID,
				Level:       Urgent,
				Title:       "CRITICAL STATUS",
				Message:     fmt.Sprintf("%s requires immediate intervention.", p.Name),
				ProjectID:   p.ID,
				ProjectName: p.Name,
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Level == Urgent && alerts[j].Level != Urgent
	})
	return alerts
}
