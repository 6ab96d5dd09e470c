package dashboard

import (
	"math"
	"time"
)

// Date strings in this system are never canonical: spreadsheet imports write
// DD/MM/YYYY while the UI and seed data write ISO. Parsing is therefore
// best-effort and read-only; stored values are never rewritten.

// LooseDateFormat is the localized day-first format produced by ingestion.
const LooseDateFormat = "02/01/2006"

// ISODateFormat is the format used by seed data and manual edits.
const ISODateFormat = "2006-01-02"

// excelEpochOffset is the number of days between the spreadsheet epoch
// (1899-12-30) and the Unix epoch.
const excelEpochOffset = 25569

// ParseLooseDate attempts to interpret a stored date string. It reports
// false for empty or unparseable values; callers treat those as "no date".
func ParseLooseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{ISODateFormat, time.RFC3339, LooseDateFormat, "2/1/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// serialDate converts a spreadsheet serial number (days since 1899-12-30)
// to its calendar date.
func serialDate(serial float64) time.Time {
	secs := int64(math.Round((serial - excelEpochOffset) * 86400))
	return time.Unix(secs, 0).UTC()
}

// daysUntil returns the number of whole days from today until t.
// Negative values mean t is in the past.
func daysUntil(t, today time.Time) int {
	a := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b).Hours() / 24)
}
