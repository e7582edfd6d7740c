package output

import (
	"bufio"
	"context"
	"io"
	"strconv"
)

// TextFormatter writes one "<eyecatcher> <count>" line per entry.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return FormatText
}

// Format renders the report entries as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range f.opts.entries(report) {
		bw.WriteString(e.Text)
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(e.Count))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
