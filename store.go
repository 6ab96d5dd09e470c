package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Storage keys for the two collections.
const (
	keyProjects = "projects"
	keyAudit    = "audit"
)

// DefaultUser is the audit attribution used when the caller provides none.
const DefaultUser = "Admin User"

// Store is the only sanctioned mutation path for the project collection.
//
// It wraps a Backend holding two JSON-encoded arrays (projects and audit log)
// and appends exactly one immutable audit entry per successful mutation.
// It is built for a single synchronous writer; there is no locking.
type Store struct {
	backend Backend
	now     func() time.Time // injectable clock for tests
}

// NewStore builds a store over the given backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend, now: time.Now}
}

// Projects returns all projects in stored (insertion) order, or an empty
// slice when the store was never initialized.
func (s *Store) Projects() ([]Project, error) {
	data, ok, err := s.backend.Get(keyProjects)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Project{}, nil
	}
	var projects []Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("could not decode projects: %w", err)
	}
	return projects, nil
}

func (s *Store) saveProjects(projects []Project) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("could not encode projects: %w", err)
	}
	return s.backend.Put(keyProjects, data)
}

// CreateProject stamps lastUpdated, prepends the project and records a CREATE
// entry. No uniqueness check is performed on id or proposal code; that is the
// caller's responsibility.
func (s *Store) CreateProject(p Project, user string) error {
	projects, err := s.Projects()
	if err != nil {
		return err
	}
	p.LastUpdated = s.now().UTC().Format(time.RFC3339)
	if err := s.saveProjects(append([]Project{p}, projects...)); err != nil {
		return err
	}
	return s.addAuditLog(AuditEntry{
		User:       user,
		Action:     ActionCreate,
		EntityType: EntityProject,
		EntityID:   p.ProposalCode,
		Details:    fmt.Sprintf("Created new project: %s", p.Name),
	})
}

// UpdateProject replaces the stored project with the same id.
//
// A missing id is a silent no-op, and so is an update that changes no field:
// neither produces an audit entry or a timestamp change.
func (s *Store) UpdateProject(p Project, user string) error {
	projects, err := s.Projects()
	if err != nil {
		return err
	}
	index := -1
	for i := range projects {
		if projects[i].ID == p.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil
	}

	changes := DiffProjects(projects[index], p)
	if len(changes) == 0 {
		return nil
	}

	p.LastUpdated = s.now().UTC().Format(time.RFC3339)
	projects[index] = p
	if err := s.saveProjects(projects); err != nil {
		return err
	}

	lines := make([]string, len(changes))
	for i, c := range changes {
		lines[i] = c.String()
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(lines); err != nil {
		return fmt.Errorf("could not encode change list: %w", err)
	}
	details := bytes.TrimRight(buf.Bytes(), "\n")
	return s.addAuditLog(AuditEntry{
		User:       user,
		Action:     ActionUpdate,
		EntityType: EntityProject,
		EntityID:   p.ProposalCode,
		Details:    string(details),
	})
}

// DeleteProject removes the project with the given id. A missing id is a
// silent no-op.
func (s *Store) DeleteProject(id string, user string) error {
	projects, err := s.Projects()
	if err != nil {
		return err
	}
	index := -1
	for i := range projects {
		if projects[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil
	}
	deleted := projects[index]
	if err := s.saveProjects(append(projects[:index], projects[index+1:]...)); err != nil {
		return err
	}
	return s.addAuditLog(AuditEntry{
		User:       user,
		Action:     ActionDelete,
		EntityType: EntityProject,
		EntityID:   deleted.ProposalCode,
		Details:    "Project deleted permanently",
	})
}

// AuditLogs returns the audit log, most recent entry first.
func (s *Store) AuditLogs() ([]AuditEntry, error) {
	data, ok, err := s.backend.Get(keyAudit)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []AuditEntry{}, nil
	}
	var entries []AuditEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("could not decode audit log: %w", err)
	}
	return entries, nil
}

// addAuditLog stamps the entry and prepends it to the log. It is called only
// by the mutation operations, never from outside the store.
func (s *Store) addAuditLog(entry AuditEntry) error {
	entries, err := s.AuditLogs()
	if err != nil {
		return err
	}
	entry.ID = NewID()
	entry.Timestamp = s.now().UTC().Format(time.RFC3339)
	data, err := json.Marshal(append([]AuditEntry{entry}, entries...))
	if err != nil {
		return fmt.Errorf("could not encode audit log: %w", err)
	}
	return s.backend.Put(keyAudit, data)
}

// ClearData erases both collections. Irreversible.
func (s *Store) ClearData() error {
	if err := s.backend.Delete(keyProjects); err != nil {
		return err
	}
	return s.backend.Delete(keyAudit)
}

// ResetFromImport replaces the whole project collection and resets the audit
// log to empty, then records a single SEED entry describing the import.
// This is the ingestion commit: callers must only invoke it once the entire
// workbook has been parsed successfully.
func (s *Store) ResetFromImport(projects []Project, user, description string) error {
	if err := s.saveProjects(projects); err != nil {
		return err
	}
	if err := s.backend.Put(keyAudit, []byte("[]")); err != nil {
		return err
	}
	return s.addAuditLog(AuditEntry{
		User:       user,
		Action:     ActionSeed,
		EntityType: EntityProject,
		EntityID:   "BATCH",
		Details:    description,
	})
}

// RestoreBackup overwrites the persisted projects (and audit log, when the
// backup carries one) wholesale.
func (s *Store) RestoreBackup(b Backup) error {
	if err := s.saveProjects(b.Projects); err != nil {
		return err
	}
	if b.Audit == nil {
		return nil
	}
	data, err := json.Marshal(b.Audit)
	if err != nil {
		return fmt.Errorf("could not encode audit log: %w", err)
	}
	return s.backend.Put(keyAudit, data)
}

// SeedInitialData populates an empty store with two demo projects and a SEED
// entry. A store that already holds projects is left untouched.
func (s *Store) SeedInitialData() error {
	projects, err := s.Projects()
	if err != nil {
		return err
	}
	if len(projects) > 0 {
		return nil
	}
	stamp := s.now().UTC().Format(time.RFC3339)
	demo := []Project{
		{
			ID:                   NewID(),
			ProposalCode:         "P-2024-001",
			Name:                 "Enterprise Dashboard Revamp",
			Client:               "Acme Corp",
			Owner:                "Sarah Chen",
			StartDate:            "2024-01-15",
			ExpectedDeliveryDate: "2024-04-30",
			Status:               OnTrack,
			Progress:             65,
			Budget:               B(150000),
			Category:             Live,
			Deliverables:         []Deliverable{},
			LastUpdated:          stamp,
		},
		{
			ID:                   NewID(),
			ProposalCode:         "P-2024-002",
			Name:                 "Mobile App Migration",
			Client:               "Globex Inc",
			Owner:                "Mike Ross",
			StartDate:            "2024-02-01",
			ExpectedDeliveryDate: "2024-05-15",
			Status:               Delayed,
			Progress:             40,
			Budget:               B(85000),
			Category:             Live,
			Deliverables:         []Deliverable{},
			LastUpdated:          stamp,
		},
	}
	if err := s.saveProjects(demo); err != nil {
		return err
	}
	return s.addAuditLog(AuditEntry{
		User:       "System",
		Action:     ActionSeed,
		EntityType: EntityProject,
		EntityID:   "BATCH",
		Details:    "Initial dummy data seed",
	})
}

// Reconcile re-runs deliverable linkage over the stored projects: when several
// projects share a join key (case-insensitive, trimmed proposal code), the
// deliverables of the later duplicates are moved onto the first occurrence.
// One RECONCILE entry is recorded when anything moved; an already-consistent
// store is a silent no-op.
func (s *Store) Reconcile(user string) (moved int, err error) {
	projects, err := s.Projects()
	if err != nil {
		return 0, err
	}
	first := make(map[string]int)
	var notes []string
	for i := range projects {
		key := JoinKey(projects[i].ProposalCode)
		j, seen := first[key]
		if !seen {
			first[key] = i
			continue
		}
		if len(projects[i].Deliverables) == 0 {
			continue
		}
		moved += len(projects[i].Deliverables)
		projects[j].Deliverables = append(projects[j].Deliverables, projects[i].Deliverables...)
		projects[i].Deliverables = nil
		notes = append(notes, fmt.Sprintf("%s: moved to %q", projects[i].ProposalCode, projects[j].Name))
	}
	if moved == 0 {
		return 0, nil
	}
	if err := s.saveProjects(projects); err != nil {
		return 0, err
	}
	err = s.addAuditLog(AuditEntry{
		User:       user,
		Action:     ActionReconcile,
		EntityType: EntityProject,
		EntityID:   "BATCH",
		Details:    fmt.Sprintf("Relinked %d deliverables (%s)", moved, strings.Join(notes, "; ")),
	})
	return moved, err
}

// JoinKey normalizes a proposal code for linkage comparisons.
func JoinKey(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
