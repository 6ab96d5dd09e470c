package dashboard

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// BackupVersion is written into every snapshot. Restore does not check it;
// the format is consumer-tolerant like everything else in this system.
const BackupVersion = "1.0"

// Backup is the full JSON snapshot of both collections.
type Backup struct {
	Projects  []Project    `json:"projects"`
	Audit     []AuditEntry `json:"audit,omitempty"`
	Timestamp string       `json:"timestamp"`
	Version   string       `json:"version"`
}

// WriteBackup snapshots the store into w as indented JSON.
func WriteBackup(w io.Writer, store *Store) error {
	projects, err := store.Projects()
	if err != nil {
		return err
	}
	audit, err := store.AuditLogs()
	if err != nil {
		return err
	}
	b := Backup{
		Projects:  projects,
		Audit:     audit,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   BackupVersion,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("could not encode backup: %w", err)
	}
	return nil
}

// ReadBackup parses a snapshot. Beyond JSON well-formedness there is no
// schema validation; a malformed document surfaces as this single error and
// the store stays untouched.
func ReadBackup(r io.Reader) (Backup, error) {
	var b Backup
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return Backup{}, fmt.Errorf("could not parse backup: %w", err)
	}
	return b, nil
}

// BackupFilename derives the conventional dated snapshot filename.
func BackupFilename(on time.Time) string {
	return fmt.Sprintf("Nexus_Backup_%s.json", on.UTC().Format(ISODateFormat))
}
