package eyecatcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ccollicutt/eyecatcher/pkg/dump"
)

// Result summarizes an extraction pass.
type Result struct {
	// Records is the number of records scanned.
	Records int

	// Runs is the number of printable runs considered.
	Runs int

	// Lines is the number of eyecatcher lines written.
	Lines int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMarker sets the marker that qualifies a run (default DefaultMarker).
func WithMarker(m Marker) Option {
	return func(e *Extractor) {
		e.marker = m
	}
}

// WithMinRun sets the minimum printable run length (default 4).
func WithMinRun(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.minRun = n
		}
	}
}

// WithLineFunc registers fn to be called with every eyecatcher line, without
// its trailing newline, after it has been written.
func WithLineFunc(fn func(line string)) Option {
	return func(e *Extractor) {
		e.onLine = fn
	}
}

// Extractor writes the eyecatcher lines found in records to a writer.
// Output is buffered; call Flush when done.
type Extractor struct {
	w      *bufio.Writer
	marker Marker
	minRun int
	onLine func(string)

	result Result
	err    error
}

// NewExtractor creates an Extractor writing to w.
func NewExtractor(w io.Writer, opts ...Option) *Extractor {
	e := &Extractor{
		w:      bufio.NewWriterSize(w, 64*1024),
		marker: DefaultMarker,
		minRun: DefaultMinRun,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Record scans one record and writes every printable run containing the
// marker as its own line. A run with several markers is written once.
func (e *Extractor) Record(rec []byte) error {
	if e.err != nil {
		return e.err
	}
	e.result.Records++

	Runs(rec, e.minRun, func(_ int, run []byte) {
		if e.err != nil {
			return
		}
		e.result.Runs++
		if !e.marker.Match(run) {
			return
		}
		line := Text(run)
		if _, err := e.w.WriteString(line); err != nil {
			e.err = fmt.Errorf("writing eyecatcher: %w", err)
			return
		}
		if err := e.w.WriteByte('\n'); err != nil {
			e.err = fmt.Errorf("writing eyecatcher: %w", err)
			return
		}
		e.result.Lines++
		if e.onLine != nil {
			e.onLine(line)
		}
	})
	return e.err
}

// Flush writes any buffered output to the underlying writer.
func (e *Extractor) Flush() error {
	if e.err != nil {
		return e.err
	}
	if err := e.w.Flush(); err != nil {
		e.err = fmt.Errorf("flushing eyecatchers: %w", err)
	}
	return e.err
}

// Result returns the counters accumulated so far.
func (e *Extractor) Result() Result {
	return e.result
}

// Extract scans every record of src and writes eyecatcher lines to w.
// Output already written when an error occurs is flushed on a best-effort
// basis and left in place.
func Extract(ctx context.Context, src dump.RecordSource, w io.Writer, opts ...Option) (Result, error) {
	e := NewExtractor(w, opts...)
	for {
		rec, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			_ = e.Flush()
			return e.Result(), err
		}
		if err := e.Record(rec); err != nil {
			return e.Result(), err
		}
	}
	if err := e.Flush(); err != nil {
		return e.Result(), err
	}
	return e.Result(), nil
}
