package output

import (
	"context"
	"io"

	"github.com/ccollicutt/eyecatcher/pkg/summary"
)

// Formatter renders a summary report in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Top limits output to the Top most frequent entries. Zero means all.
	Top int
}

// Limit returns the first Top entries, or all of them when Top is zero.
func (o FormatOptions) Limit(entries []summary.Entry) []summary.Entry {
	if o.Top > 0 && o.Top < len(entries) {
		return entries[:o.Top]
	}
	return entries
}

// entries returns the report entries limited by the options.
func (o FormatOptions) entries(report *Report) []summary.Entry {
	return o.Limit(report.Entries)
}
