package dashboard

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// exportHeaders is the flat projection of the project schema, one column per
// field. Deliverables are flattened to a count and a readable list.
var exportHeaders = []string{
	"Proposal Code", "Name", "Client", "Owner",
	"Start Date", "Expected Delivery", "Actual Delivery",
	"Status", "Progress", "Budget", "Category",
	"Deliverables", "Deliverable Details", "Notes", "Last Updated",
}

// ExportProjects writes an xlsx document with a single sheet holding a flat
// projection of the given projects. The caller picks the sheet name from the
// category being exported.
func ExportProjects(w io.Writer, sheetName string, projects []Project) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("could not name sheet %q: %w", sheetName, err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &exportHeaders); err != nil {
		return fmt.Errorf("could not write header row: %w", err)
	}

	for i, p := range projects {
		details := make([]string, len(p.Deliverables))
		for j, d := range p.Deliverables {
			details[j] = fmt.Sprintf("%s (%s)", d.Name, d.Status)
		}
		row := []any{
			p.ProposalCode, p.Name, p.Client, p.Owner,
			p.StartDate, p.ExpectedDeliveryDate, p.ActualDeliveryDate,
			string(p.Status), p.Progress, p.Budget.String(), string(p.Category),
			len(p.Deliverables), strings.Join(details, ", "), p.Notes, p.LastUpdated,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("could not write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("could not write workbook: %w", err)
	}
	return nil
}

// ExportFilename derives the conventional export filename for a category.
func ExportFilename(category Category) string {
	switch category {
	case Live:
		return "Live_Projects_Export.xlsx"
	case Pipeline:
		return "Pipeline_Export.xlsx"
	case Archive:
		return "Archive_Export.xlsx"
	default:
		return fmt.Sprintf("%s_Export.xlsx", category)
	}
}
