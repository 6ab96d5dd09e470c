package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// This file maps a heterogeneous workbook onto the canonical project schema.
// Spreadsheet authors do not share a schema: sheet names, headers, date and
// status spellings all vary, so everything here is a best-effort heuristic.
// Malformed rows degrade to defaults; they never raise.

// pipelineFragments are the sheet-name vocabularies that classify a sheet as
// a pipeline set. All qualifying sheets are merged.
var pipelineFragments = []string{"yet to", "upcoming", "pipeline"}

// Candidate header substrings per canonical field, in priority order. The
// first header whose value is non-empty wins. Two fields may well pick the
// same source header; the heuristic accepts that ambiguity.
var (
	codeKeys            = []string{"proposal", "code", "id", "sr", "no"}
	nameKeys            = []string{"project", "name", "title"}
	clientKeys          = []string{"client", "customer", "agency", "organization"}
	ownerKeys           = []string{"owner", "lead", "manager", "responsible", "assigned"}
	startKeys           = []string{"start", "kickoff", "begin"}
	deliveryKeys        = []string{"end", "delivery", "deadline", "due", "target"}
	statusKeys          = []string{"status", "state", "stage"}
	progressKeys        = []string{"progress", "%", "completion", "percent"}
	notesKeys           = []string{"notes", "comments", "remarks"}
	deliverableKeys     = []string{"deliverable", "name", "item", "task", "milestone"}
	deliverableDueKeys  = []string{"due", "date", "deadline", "target"}
	deliverableCodeKeys = []string{"proposal", "project", "code", "reference", "id"}
)

// statusKeywords maps raw status text onto the canonical statuses. Matching
// short-circuits on the first group, so precedence is the slice order.
var statusKeywords = []struct {
	status Status
	words  []string
}{
	{OnTrack, []string{"track", "live", "ongoing", "active"}},
	{Delayed, []string{"delay", "late", "behind"}},
	{Critical, []string{"critical", "risk", "blocked"}},
	{Completed, []string{"complete", "done", "closed", "finish"}},
}

// findValue returns the first non-empty cell whose header contains one of the
// candidate substrings (case-insensitive). Candidates are tried in priority
// order; headers in sheet order.
func findValue(row Row, keys []string) any {
	for _, key := range keys {
		for _, header := range row.Headers() {
			if !strings.Contains(strings.ToLower(header), strings.ToLower(key)) {
				continue
			}
			v := row.Value(header)
			if v == nil || v == "" {
				continue
			}
			return v
		}
	}
	return nil
}

// mapDate converts a spreadsheet date cell to the localized DD/MM/YYYY form.
// Numeric cells are interpreted as spreadsheet serials; native dates are
// formatted directly; anything else passes through as its string form.
func mapDate(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case time.Time:
		return v.Format(LooseDateFormat)
	case float64:
		if v == 0 {
			return ""
		}
		return serialDate(v).Format(LooseDateFormat)
	default:
		return fmt.Sprint(val)
	}
}

// mapProgress normalizes a progress cell to an integer percentage. Numbers at
// or below 1 are fractions and scale by 100; a string may carry a trailing
// '%'. Unparseable values default to 0.
func mapProgress(val any) int {
	switch v := val.(type) {
	case float64:
		if v <= 1 {
			return int(math.Round(v * 100))
		}
		return int(math.Round(v))
	case string:
		num, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "%")), 64)
		if err != nil {
			return 0
		}
		if num <= 1 {
			return int(math.Round(num * 100))
		}
		return int(math.Round(num))
	default:
		return 0
	}
}

// mapStatus pattern-matches raw status text against the keyword groups.
func mapStatus(val any) Status {
	s := strings.ToLower(strings.TrimSpace(fmt.Sprint(val)))
	if val == nil {
		s = ""
	}
	for _, group := range statusKeywords {
		for _, word := range group.words {
			if strings.Contains(s, word) {
				return group.status
			}
		}
	}
	return NotStarted
}

// mapDeliverableStatus is the deliverable flavor of mapStatus.
func mapDeliverableStatus(val any) DeliverableStatus {
	s := "pending"
	if val != nil {
		s = strings.ToLower(fmt.Sprint(val))
	}
	status := Pending
	for _, word := range []string{"progress", "ongoing", "wip"} {
		if strings.Contains(s, word) {
			status = InProgress
		}
	}
	for _, word := range []string{"done", "complete", "finish"} {
		if strings.Contains(s, word) {
			status = Done
		}
	}
	return status
}

// stringOr renders a value as a string, or the fallback when absent.
func stringOr(val any, fallback string) string {
	if val == nil {
		return fallback
	}
	s := fmt.Sprint(val)
	if s == "" {
		return fallback
	}
	return s
}

// mapRowToProject infers a Project from one arbitrary row.
func mapRowToProject(row Row, category Category) Project {
	return Project{
		ID:                   NewID(),
		ProposalCode:         stringOr(findValue(row, codeKeys), fmt.Sprintf("GEN-%d", time.Now().UnixMilli())),
		Name:                 stringOr(findValue(row, nameKeys), "Untitled Project"),
		Client:               stringOr(findValue(row, clientKeys), "Unknown"),
		Owner:                stringOr(findValue(row, ownerKeys), "Unassigned"),
		StartDate:            mapDate(findValue(row, startKeys)),
		ExpectedDeliveryDate: mapDate(findValue(row, deliveryKeys)),
		Status:               mapStatus(findValue(row, statusKeys)),
		Progress:             mapProgress(findValue(row, progressKeys)),
		Category:             category,
		Notes:                stringOr(findValue(row, notesKeys), ""),
		Deliverables:         []Deliverable{},
		LastUpdated:          time.Now().UTC().Format(time.RFC3339),
	}
}

// mapRowToDeliverable infers a deliverable plus the proposal code it claims
// to belong to.
func mapRowToDeliverable(row Row) (Deliverable, string) {
	return Deliverable{
		ID:      NewID(),
		Name:    stringOr(findValue(row, deliverableKeys), "Unnamed Deliverable"),
		Status:  mapDeliverableStatus(findValue(row, statusKeys[:2])),
		DueDate: mapDate(findValue(row, deliverableDueKeys)),
	}, stringOr(findValue(row, deliverableCodeKeys), "")
}

// ImportResult summarizes one ingestion run.
type ImportResult struct {
	Projects     int // projects mapped across all classified sheets
	Deliverables int // deliverables linked to a project
	Dropped      int // deliverable rows whose code matched no project
}

// Ingest classifies the workbook's sheets, maps every row and links
// deliverables to projects by proposal code. It is pure: nothing is persisted.
//
// Sheet classification is by case-insensitive substring on the sheet name:
// the first "live" sheet, every pipeline-vocabulary sheet merged, the first
// "closed" sheet, the first "deliverable" sheet. Anything else is ignored.
func Ingest(wb *Workbook) ([]Project, ImportResult) {
	var projects []Project

	if sheet := wb.Sheet("live"); sheet != nil {
		for _, row := range sheet.Rows {
			projects = append(projects, mapRowToProject(row, Live))
		}
	}

	for i := range wb.Sheets {
		name := strings.ToLower(wb.Sheets[i].Name)
		for _, fragment := range pipelineFragments {
			if strings.Contains(name, fragment) {
				for _, row := range wb.Sheets[i].Rows {
					projects = append(projects, mapRowToProject(row, Pipeline))
				}
				break
			}
		}
	}

	if sheet := wb.Sheet("closed"); sheet != nil {
		for _, row := range sheet.Rows {
			projects = append(projects, mapRowToProject(row, Closed))
		}
	}

	result := ImportResult{Projects: len(projects)}

	if sheet := wb.Sheet("deliverable"); sheet != nil {
		for _, row := range sheet.Rows {
			deliverable, code := mapRowToDeliverable(row)
			linked := false
			for i := range projects {
				// first match wins on colliding codes
				if JoinKey(projects[i].ProposalCode) == JoinKey(code) {
					projects[i].Deliverables = append(projects[i].Deliverables, deliverable)
					result.Deliverables++
					linked = true
					break
				}
			}
			if !linked {
				result.Dropped++
			}
		}
	}

	return projects, result
}

// InitializeFromSampleReport fetches the seed workbook, maps it and commits
// the result, replacing any prior state. It is all-or-nothing: a fetch or
// parse failure returns before anything is written, leaving the persisted
// collections untouched.
func InitializeFromSampleReport(store *Store, source, user string) (ImportResult, error) {
	wb, err := FetchWorkbook(source)
	if err != nil {
		return ImportResult{}, err
	}
	projects, result := Ingest(wb)
	description := fmt.Sprintf("Imported %d projects and %d deliverables from sample report", result.Projects, result.Deliverables)
	if err := store.ResetFromImport(projects, user, description); err != nil {
		return ImportResult{}, err
	}
	return result, nil
}
