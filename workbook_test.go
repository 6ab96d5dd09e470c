package dashboard

import "testing"

func TestNewRow(t *testing.T) {
	row := NewRow(
		[]string{"A", "", "C"},
		[]any{"one", "two", "three", "orphan"},
	)
	// empty headers and headerless values are dropped
	if got := row.Headers(); len(got) != 2 || got[0] != "A" || got[1] != "C" {
		t.Errorf("Headers() = %v", got)
	}
	if row.Value("A") != "one" || row.Value("C") != "three" {
		t.Errorf("values: A=%v C=%v", row.Value("A"), row.Value("C"))
	}
	if row.Value("") != nil {
		t.Error("empty header must not be addressable")
	}

	// a short value slice leaves the trailing headers out
	row = NewRow([]string{"A", "B"}, []any{"only"})
	if got := row.Headers(); len(got) != 1 {
		t.Errorf("Headers() = %v, want just A", got)
	}
}

func TestLooseCell(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{"", nil},
		{"45000", 45000.0},
		{"0.75", 0.75},
		{"P-42", "P-42"},
		{"30/04/2024", "30/04/2024"},
	}
	for _, tt := range tests {
		if got := looseCell(tt.raw); got != tt.want {
			t.Errorf("looseCell(%q) = %v (%T), want %v", tt.raw, got, got, tt.want)
		}
	}
}

func TestWorkbookSheet(t *testing.T) {
	wb := &Workbook{Sheets: []Sheet{
		{Name: "Instructions"},
		{Name: "Live Projects"},
		{Name: "Closed Projects"},
	}}
	if got := wb.Sheet("LIVE"); got == nil || got.Name != "Live Projects" {
		t.Errorf("Sheet(LIVE) = %+v", got)
	}
	if got := wb.Sheet("closed"); got == nil || got.Name != "Closed Projects" {
		t.Errorf("Sheet(closed) = %+v", got)
	}
	if got := wb.Sheet("pipeline"); got != nil {
		t.Errorf("Sheet(pipeline) = %+v, want nil", got)
	}
}
