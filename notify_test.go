package dashboard

import (
	"testing"
	"time"
)

func TestCheckAlerts(t *testing.T) {
	today := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	overdue := testProject("P-1", "Overdue")
	overdue.ExpectedDeliveryDate = "2024-03-10"

	dueSoon := testProject("P-2", "DueSoon")
	dueSoon.ExpectedDeliveryDate = "2024-03-20"

	critical := testProject("P-3", "Critical")
	critical.Status = Critical
	critical.ExpectedDeliveryDate = "2024-06-01"

	comfortable := testProject("P-4", "Comfortable")
	comfortable.ExpectedDeliveryDate = "2024-06-01"

	finished := testProject("P-5", "Finished")
	finished.Status = Completed
	finished.ExpectedDeliveryDate = "2024-03-01"

	pipeline := testProject("P-6", "Prospect")
	pipeline.Category = Pipeline
	pipeline.ExpectedDeliveryDate = "2024-03-01"

	alerts := CheckAlerts([]Project{overdue, dueSoon, critical, comfortable, finished, pipeline}, today)

	if len(alerts) != 3 {
		t.Fatalf("got %d alerts, want 3: %+v", len(alerts), alerts)
	}

	// urgent alerts first
	if alerts[0].Level != Urgent || alerts[1].Level != Urgent || alerts[2].Level != Warning {
		t.Errorf("alert levels: %s, %s, %s", alerts[0].Level, alerts[1].Level, alerts[2].Level)
	}

	byID := map[string]Alert{}
	for _, a := range alerts {
		byID[a.ID] = a
	}
	if a, ok := byID["overdue-"+overdue.ID]; !ok {
		t.Error("missing overdue alert")
	} else if a.Message != "Overdue is 5 days overdue." {
		t.Errorf("overdue message = %q", a.Message)
	}
	if a, ok := byID["due-soon-"+dueSoon.ID]; !ok {
		t.Error("missing due-soon alert")
	} else if a.Message != "DueSoon due in 5 days." {
		t.Errorf("due-soon message = %q", a.Message)
	}
	if _, ok := byID["crit-"+critical.ID]; !ok {
		t.Error("missing critical alert")
	}
}

func TestCheckAlertsDueTodayIsWarning(t *testing.T) {
	today := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	p := testProject("P-1", "Today")
	p.ExpectedDeliveryDate = "2024-03-15"

	alerts := CheckAlerts([]Project{p}, today)
	if len(alerts) != 1 || alerts[0].Level != Warning {
		t.Fatalf("alerts = %+v, want one warning", alerts)
	}
	if alerts[0].Message != "Today due in 0 days." {
		t.Errorf("message = %q", alerts[0].Message)
	}
}

func TestCheckAlertsSOWCounts(t *testing.T) {
	today := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	p := testProject("P-1", "Signed")
	p.Category = SOW
	p.ExpectedDeliveryDate = "2024-03-01"

	alerts := CheckAlerts([]Project{p}, today)
	if len(alerts) != 1 || alerts[0].Level != Urgent {
		t.Fatalf("alerts = %+v, want one urgent", alerts)
	}
}

func TestCheckAlertsNoDateNoDeadlineAlert(t *testing.T) {
	today := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	p := testProject("P-1", "Dateless")
	p.ExpectedDeliveryDate = ""

	if alerts := CheckAlerts([]Project{p}, today); len(alerts) != 0 {
		t.Errorf("alerts = %+v, want none", alerts)
	}
}
