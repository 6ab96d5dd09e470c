package dashboard

import "testing"

func TestParseBudget(t *testing.T) {
	tests := []struct {
		in      string
		want    Budget
		wantErr bool
	}{
		{"150000", B(150000), false},
		{"85000.50", B(85000.50), false},
		{"0", B(0), false},
		{"-5", Budget{}, true},
		{"12,000", Budget{}, true},
		{"lots", Budget{}, true},
	}
	for _, tt := range tests {
		got, err := ParseBudget(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBudget(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && !got.Equal(tt.want) {
			t.Errorf("ParseBudget(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestBudgetFormat(t *testing.T) {
	if got := B(150000).Format("USD"); got != "$150,000.00" {
		t.Errorf("Format(USD) = %q", got)
	}
	if got := B(0).Format("USD"); got != "$0.00" {
		t.Errorf("Format(USD) zero = %q", got)
	}
}

func TestBudgetJSON(t *testing.T) {
	// Budgets persist as bare numbers but tolerate quoted values and null
	// coming back from hand-edited files.
	b := B(150000)
	data, err := b.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "150000" {
		t.Errorf("marshal = %s, want bare number", data)
	}

	tests := []struct {
		in   string
		want Budget
	}{
		{"150000", B(150000)},
		{`"85000.5"`, B(85000.5)},
		{"null", B(0)},
	}
	for _, tt := range tests {
		var got Budget
		if err := got.UnmarshalJSON([]byte(tt.in)); err != nil {
			t.Errorf("unmarshal %s: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("unmarshal %s = %s, want %s", tt.in, got, tt.want)
		}
	}

	var bad Budget
	if err := bad.UnmarshalJSON([]byte(`"lots"`)); err == nil {
		t.Error("unmarshal of a non-number must fail")
	}
}
