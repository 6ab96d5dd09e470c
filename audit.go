package dashboard

import "fmt"

// Action describes the kind of mutation recorded by an audit entry.
type Action string

const (
	ActionCreate    Action = "CREATE"
	ActionUpdate    Action = "UPDATE"
	ActionDelete    Action = "DELETE"
	ActionSeed      Action = "SEED"
	ActionReconcile Action = "RECONCILE"
)

// ParseAction parses a string into an Action.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionCreate, ActionUpdate, ActionDelete, ActionSeed, ActionReconcile:
		return Action(s), nil
	default:
		return "", fmt.Errorf("unknown audit action: %q", s)
	}
}

// EntityProject is the only entity type currently audited.
const EntityProject = "PROJECT"

// AuditEntry is an immutable record of a single mutation to the project
// collection. Entries are append-only: nothing mutates or removes them short
// of a full store wipe.
//
// EntityID holds the proposal code of the affected project, not its internal
// id, so the history stays readable after a delete.
type AuditEntry struct {
	ID         string `json:"id"`
	Timestamp  string `json:"timestamp"`
	User       string `json:"user"`
	Action     Action `json:"action"`
	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId"`
	Details    string `json:"details"`
}
