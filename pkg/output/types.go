// Package output provides formatting for eyecatcher summaries.
package output

import (
	"time"

	"github.com/ccollicutt/eyecatcher/pkg/summary"
)

// Report is the complete summarizer output.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Entries holds the distinct eyecatchers, most frequent first.
	Entries []summary.Entry `json:"entries"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// Unique is the number of distinct eyecatcher lines.
	Unique int `json:"unique"`

	// Total is the number of non-empty lines counted.
	Total int `json:"total"`

	// LinesRead is the number of lines read, empty ones included.
	LinesRead int `json:"lines_read"`
}

// Metadata provides context about the run.
type Metadata struct {
	// Source is the eyecatchers file that was summarized.
	Source string `json:"source"`

	// GeneratedAt is when the report was built.
	GeneratedAt time.Time `json:"generated_at"`
}

// NewReport creates a Report from a populated counter.
func NewReport(c *summary.Counter, source string) *Report {
	return &Report{
		Summary: Summary{
			Unique:    c.Unique(),
			Total:     c.Total(),
			LinesRead: c.Lines(),
		},
		Entries: c.Entries(),
		Metadata: Metadata{
			Source:      source,
			GeneratedAt: time.Now().UTC(),
		},
	}
}
