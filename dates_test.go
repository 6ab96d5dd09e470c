package dashboard

import (
	"testing"
	"time"
)

func TestParseLooseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-04-30", "2024-04-30", true},
		{"30/04/2024", "2024-04-30", true},
		{"2/1/2024", "2024-01-02", true},
		{"2024-04-30T10:00:00Z", "2024-04-30", true},
		{"", "", false},
		{"soon", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseLooseDate(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseLooseDate(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got.Format(ISODateFormat) != tt.want {
			t.Errorf("ParseLooseDate(%q) = %s, want %s", tt.in, got.Format(ISODateFormat), tt.want)
		}
	}
}

func TestSerialDate(t *testing.T) {
	tests := []struct {
		serial float64
		want   string
	}{
		{45000, "2023-03-15"},
		{25569, "1970-01-01"},
		{44927, "2023-01-01"},
	}
	for _, tt := range tests {
		if got := serialDate(tt.serial).Format(ISODateFormat); got != tt.want {
			t.Errorf("serialDate(%v) = %s, want %s", tt.serial, got, tt.want)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	today := time.Date(2024, 3, 15, 23, 30, 0, 0, time.UTC)
	tests := []struct {
		date string
		want int
	}{
		{"2024-03-20", 5},
		{"2024-03-15", 0},
		{"2024-03-10", -5},
	}
	for _, tt := range tests {
		d, ok := ParseLooseDate(tt.date)
		if !ok {
			t.Fatalf("fixture date %q did not parse", tt.date)
		}
		if got := daysUntil(d, today); got != tt.want {
			t.Errorf("daysUntil(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}
