package dashboard

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Budget is a non-negative monetary amount attached to a project.
//
// The value is kept exact; the display currency is applied only at formatting
// time so budgets persist as plain numbers.
type Budget struct {
	value decimal.Decimal
}

// B creates a Budget from a numeric constant.
func B[T float32 | float64 | int | int32 | int64](v T) Budget {
	return Budget{value: decimal.NewFromFloat(float64(v))}
}

// ParseBudget parses a decimal string into a Budget. A trailing currency
// symbol or thousands separators are not tolerated: the storage format is a
// bare number.
func ParseBudget(s string) (Budget, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Budget{}, fmt.Errorf("invalid budget %q: %w", s, err)
	}
	if d.IsNegative() {
		return Budget{}, fmt.Errorf("budget cannot be negative: %q", s)
	}
	return Budget{value: d}, nil
}

func (b Budget) IsZero() bool        { return b.value.IsZero() }
func (b Budget) Equal(o Budget) bool { return b.value.Equal(o.value) }
func (b Budget) Add(o Budget) Budget { return Budget{value: b.value.Add(o.value)} }

// String returns the bare numeric representation, the same form used in
// storage.
func (b Budget) String() string { return b.value.String() }

// Format renders the budget in the given display currency.
func (b Budget) Format(currency string) string {
	// the Money constructor is the only way to get a never-nil currency
	cur := money.New(0, currency).Currency()
	dec := b.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// MarshalJSON persists the budget as a plain JSON number.
func (b Budget) MarshalJSON() ([]byte, error) {
	return []byte(b.value.String()), nil
}

// UnmarshalJSON accepts a JSON number, a quoted number, or null.
func (b *Budget) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		b.value = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid budget value %s: %w", data, err)
	}
	b.value = d
	return nil
}
