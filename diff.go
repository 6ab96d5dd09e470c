package dashboard

import "fmt"

// FieldChange records one field-level difference between two versions of a
// project.
type FieldChange struct {
	Field string
	Old   string
	New   string
}

func (c FieldChange) String() string {
	return fmt.Sprintf("%s: %s -> %s", c.Field, c.Old, c.New)
}

// DiffProjects compares two versions of a project field by field and returns
// the list of changes, in schema order. An empty result means the update is a
// no-op.
//
// The comparison is explicit over the fixed schema rather than a serialized
// structural equality, so representation details (key order, number
// formatting) can never register as a change.
func DiffProjects(old, new Project) []FieldChange {
	var changes []FieldChange
	str := func(field, o, n string) {
		if o != n {
			changes = append(changes, FieldChange{Field: field, Old: o, New: n})
		}
	}

	str("proposalCode", old.ProposalCode, new.ProposalCode)
	str("name", old.Name, new.Name)
	str("client", old.Client, new.Client)
	str("owner", old.Owner, new.Owner)
	str("startDate", old.StartDate, new.StartDate)
	str("expectedDeliveryDate", old.ExpectedDeliveryDate, new.ExpectedDeliveryDate)
	str("actualDeliveryDate", old.ActualDeliveryDate, new.ActualDeliveryDate)
	str("status", string(old.Status), string(new.Status))
	if old.Progress != new.Progress {
		changes = append(changes, FieldChange{
			Field: "progress",
			Old:   fmt.Sprintf("%d", old.Progress),
			New:   fmt.Sprintf("%d", new.Progress),
		})
	}
	if !old.Budget.Equal(new.Budget) {
		changes = append(changes, FieldChange{Field: "budget", Old: old.Budget.String(), New: new.Budget.String()})
	}
	str("category", string(old.Category), string(new.Category))
	str("description", old.Description, new.Description)
	str("notes", old.Notes, new.Notes)
	if !equalDeliverables(old.Deliverables, new.Deliverables) {
		changes = append(changes, FieldChange{
			Field: "deliverables",
			Old:   fmt.Sprintf("%d deliverables", len(old.Deliverables)),
			New:   fmt.Sprintf("%d deliverables", len(new.Deliverables)),
		})
	}
	return changes
}

func equalDeliverables(a, b []Deliverable) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
