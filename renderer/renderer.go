// Package renderer turns report structs into markdown strings for terminal
// display.
package renderer

import (
	"fmt"
	"strings"
)

// builder accumulates markdown output.
type builder struct {
	*strings.Builder
}

func newBuilder() *builder {
	return &builder{Builder: &strings.Builder{}}
}

// Printf formats according to a format specifier and writes to the builder.
func (b *builder) Printf(format string, args ...any) {
	fmt.Fprintf(b, format, args...)
}

// Table writes a markdown table with left-aligned columns.
func (b *builder) Table(header []string, rows [][]string) {
	b.Printf("| %s |\n", strings.Join(header, " | "))
	seps := make([]string, len(header))
	for i := range seps {
		seps[i] = ":---"
	}
	b.Printf("|%s|\n", strings.Join(seps, "|"))
	for _, row := range rows {
		b.Printf("| %s |\n", strings.Join(row, " | "))
	}
	b.Printf("\n")
}
