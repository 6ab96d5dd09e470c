package dashboard

import "testing"

func TestDiffProjects(t *testing.T) {
	base := testProject("P-1", "Alpha")

	t.Run("identical", func(t *testing.T) {
		if changes := DiffProjects(base, base); len(changes) != 0 {
			t.Errorf("identical projects diff: %v", changes)
		}
	})

	t.Run("ignores id and lastUpdated", func(t *testing.T) {
		other := base
		other.ID = NewID()
		other.LastUpdated = "2030-01-01T00:00:00Z"
		if changes := DiffProjects(base, other); len(changes) != 0 {
			t.Errorf("id/lastUpdated registered as changes: %v", changes)
		}
	})

	t.Run("field changes", func(t *testing.T) {
		other := base
		other.Name = "Beta"
		other.Progress = 80
		other.Budget = B(2000)
		changes := DiffProjects(base, other)
		if len(changes) != 3 {
			t.Fatalf("got %d changes, want 3: %v", len(changes), changes)
		}
		want := []string{
			"name: Alpha -> Beta",
			"progress: 50 -> 80",
			"budget: 1000 -> 2000",
		}
		for i, w := range want {
			if changes[i].String() != w {
				t.Errorf("changes[%d] = %q, want %q", i, changes[i].String(), w)
			}
		}
	})

	t.Run("budget by value not representation", func(t *testing.T) {
		a, b := base, base
		a.Budget, _ = ParseBudget("1000")
		b.Budget, _ = ParseBudget("1000.00")
		if changes := DiffProjects(a, b); len(changes) != 0 {
			t.Errorf("equal budgets diffed: %v", changes)
		}
	})

	t.Run("deliverables", func(t *testing.T) {
		other := base
		other.Deliverables = []Deliverable{{ID: "d1", Name: "Doc", Status: Pending}}
		changes := DiffProjects(base, other)
		if len(changes) != 1 {
			t.Fatalf("got %d changes, want 1: %v", len(changes), changes)
		}
		if changes[0].String() != "deliverables: 0 deliverables -> 1 deliverables" {
			t.Errorf("deliverables change = %q", changes[0].String())
		}
	})
}
