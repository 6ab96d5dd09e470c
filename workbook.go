package dashboard

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// A Workbook is an in-memory view of a spreadsheet document: named sheets of
// header-keyed rows. Cell values are kept loosely typed (string, float64 or
// time.Time) because the mapper's normalization rules depend on the raw kind.
type Workbook struct {
	Sheets []Sheet
}

// Sheet is one named table of rows.
type Sheet struct {
	Name string
	Rows []Row
}

// Row is a single spreadsheet row. Header order is preserved: column
// inference picks the first matching header, and "first" means sheet order,
// not map iteration order.
type Row struct {
	headers []string
	cells   map[string]any
}

// NewRow builds a row from parallel header/value slices. Extra values without
// a header are dropped; empty headers are skipped, as spreadsheet readers do.
func NewRow(headers []string, values []any) Row {
	r := Row{cells: make(map[string]any)}
	for i, h := range headers {
		if h == "" || i >= len(values) {
			continue
		}
		r.headers = append(r.headers, h)
		r.cells[h] = values[i]
	}
	return r
}

// Headers returns the row's headers in sheet order.
func (r Row) Headers() []string { return r.headers }

// Value returns the cell under the exact header.
func (r Row) Value(header string) any { return r.cells[header] }

// Sheet returns the first sheet whose name contains the given fragment,
// case-insensitively, or nil.
func (w *Workbook) Sheet(fragment string) *Sheet {
	for i := range w.Sheets {
		if strings.Contains(strings.ToLower(w.Sheets[i].Name), strings.ToLower(fragment)) {
			return &w.Sheets[i]
		}
	}
	return nil
}

// ReadWorkbook decodes an xlsx document. The first row of each sheet is taken
// as the header row; cells that parse as numbers are kept numeric so that
// date serials and percentages survive with their raw kind, everything else
// stays a string. Sheets without a header row come back empty.
func ReadWorkbook(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook: %w", err)
	}
	defer f.Close()

	wb := &Workbook{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("could not read sheet %q: %w", name, err)
		}
		sheet := Sheet{Name: name}
		if len(rows) > 1 {
			headers := rows[0]
			for _, raw := range rows[1:] {
				values := make([]any, len(raw))
				empty := true
				for i, cell := range raw {
					values[i] = looseCell(cell)
					if cell != "" {
						empty = false
					}
				}
				if empty {
					continue
				}
				sheet.Rows = append(sheet.Rows, NewRow(headers, values))
			}
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}
	return wb, nil
}

// looseCell mirrors how spreadsheet readers type raw cells: numeric content
// is a number (which is also how date serials arrive), everything else text.
func looseCell(raw string) any {
	if raw == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	return raw
}

// FetchWorkbook loads a workbook from a local path or an http(s) URL. The
// network path is the single one-time fetch this system performs; responses
// are cached on disk with a daily key like every other remote read.
func FetchWorkbook(source string) (*Workbook, error) {
	data, err := fetch(source)
	if err != nil {
		return nil, fmt.Errorf("could not fetch workbook %q: %w", source, err)
	}
	wb, err := ReadWorkbook(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not parse workbook %q: %w", source, err)
	}
	return wb, nil
}
