package dashboard

import (
	"fmt"

	"github.com/google/uuid"
)

// Status describes the health of a project as reported in the weekly report.
type Status string

const (
	NotStarted Status = "Not Started"
	OnTrack    Status = "On Track"
	Delayed    Status = "Delayed"
	Critical   Status = "Critical"
	Completed  Status = "Completed"
)

// ParseStatus parses a string into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case NotStarted, OnTrack, Delayed, Critical, Completed:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status: %q", s)
	}
}

// Category is the lifecycle bucket a project belongs to. It determines which
// view surfaces the project and is the only workflow state in the system.
type Category string

const (
	Live     Category = "Live"
	Pipeline Category = "Pipeline"
	SOW      Category = "SOW"
	Closed   Category = "Closed"
	Archive  Category = "Archive"
)

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Live, Pipeline, SOW, Closed, Archive:
		return Category(s), nil
	default:
		return "", fmt.Errorf("unknown category: %q", s)
	}
}

// DeliverableStatus describes the state of a single deliverable.
type DeliverableStatus string

const (
	Pending    DeliverableStatus = "Pending"
	InProgress DeliverableStatus = "In Progress"
	Done       DeliverableStatus = "Done"
)

// ParseDeliverableStatus parses a string into a DeliverableStatus.
func ParseDeliverableStatus(s string) (DeliverableStatus, error) {
	switch DeliverableStatus(s) {
	case Pending, InProgress, Done:
		return DeliverableStatus(s), nil
	default:
		return "", fmt.Errorf("unknown deliverable status: %q", s)
	}
}

// Deliverable is a sub-task of a project. It has no identity outside the
// deliverables list of its owning project.
type Deliverable struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Status  DeliverableStatus `json:"status"`
	DueDate string            `json:"dueDate"`
}

// Project is a tracked engagement.
//
// The internal ID is generated at creation and never changes. The proposal
// code is the human-assigned business key; it is the join key for audit
// entries and deliverable linking and is not guaranteed unique.
//
// Date fields are loose strings on purpose: spreadsheet authors mix ISO and
// DD/MM/YYYY and the system never validates them beyond best-effort parsing.
type Project struct {
	ID                   string        `json:"id"`
	ProposalCode         string        `json:"proposalCode"`
	Name                 string        `json:"name"`
	Client               string        `json:"client"`
	Owner                string        `json:"owner"`
	StartDate            string        `json:"startDate"`
	ExpectedDeliveryDate string        `json:"expectedDeliveryDate"`
	ActualDeliveryDate   string        `json:"actualDeliveryDate"`
	Status               Status        `json:"status"`
	Progress             int           `json:"progress"`
	Budget               Budget        `json:"budget"`
	Category             Category      `json:"category"`
	Description          string        `json:"description,omitempty"`
	Notes                string        `json:"notes,omitempty"`
	Deliverables         []Deliverable `json:"deliverables"`
	LastUpdated          string        `json:"lastUpdated"`
}

// NewID returns a fresh opaque identifier for projects, deliverables and
// audit entries.
func NewID() string { return uuid.NewString() }
