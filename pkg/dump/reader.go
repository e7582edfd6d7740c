package dump

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
)

// maxEmptyReads bounds consecutive (0, nil) reads before giving up.
const maxEmptyReads = 100

// RecordReader implements RecordSource on top of an io.Reader.
//
// It holds at most one chunk plus the unterminated tail of the current
// record, independent of the size of the source.
type RecordReader struct {
	r         io.Reader
	chunkSize int
	delim     byte

	// buf[pos:] holds bytes not yet returned; buf[pos:scanned] is known to
	// contain no delimiter.
	buf     []byte
	pos     int
	scanned int
	eof     bool

	stats Stats
}

// Option configures a RecordReader.
type Option func(*RecordReader)

// WithDelimiter sets the record delimiter (default NUL).
func WithDelimiter(b byte) Option {
	return func(rr *RecordReader) {
		rr.delim = b
	}
}

// NewRecordReader creates a RecordReader that reads r in chunks of chunkSize
// bytes. A chunkSize <= 0 selects DefaultChunkSize.
func NewRecordReader(r io.Reader, chunkSize int, opts ...Option) *RecordReader {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	rr := &RecordReader{
		r:         r,
		chunkSize: chunkSize,
		delim:     DefaultDelimiter,
	}
	for _, opt := range opts {
		opt(rr)
	}
	return rr
}

// Next returns the next record.
//
// Records between adjacent delimiters are returned as empty slices. The bytes
// after the last delimiter are returned as a final record only when
// non-empty. Returns io.EOF once the source is exhausted.
func (rr *RecordReader) Next(ctx context.Context) ([]byte, error) {
	for {
		if i := bytes.IndexByte(rr.buf[rr.scanned:], rr.delim); i >= 0 {
			end := rr.scanned + i
			rec := rr.buf[rr.pos:end]
			rr.pos = end + 1
			rr.scanned = rr.pos
			rr.stats.Records++
			return rec, nil
		}
		rr.scanned = len(rr.buf)

		if rr.eof {
			if rr.pos < len(rr.buf) {
				rec := rr.buf[rr.pos:]
				rr.pos = len(rr.buf)
				rr.scanned = rr.pos
				rr.stats.Records++
				return rec, nil
			}
			return nil, io.EOF
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := rr.fill(); err != nil {
			return nil, err
		}
	}
}

// fill drops the bytes already returned and appends one chunk from the source.
func (rr *RecordReader) fill() error {
	if rr.pos > 0 {
		n := copy(rr.buf, rr.buf[rr.pos:])
		rr.buf = rr.buf[:n]
		rr.scanned -= rr.pos
		rr.pos = 0
	}

	rr.buf = slices.Grow(rr.buf, rr.chunkSize)
	start := len(rr.buf)
	var (
		n   int
		err error
	)
	for empty := 0; n == 0 && err == nil; empty++ {
		if empty == maxEmptyReads {
			return fmt.Errorf("reading chunk: %w", io.ErrNoProgress)
		}
		n, err = rr.r.Read(rr.buf[start : start+rr.chunkSize])
	}
	rr.buf = rr.buf[:start+n]
	if n > 0 {
		rr.stats.Chunks++
		rr.stats.BytesRead += int64(n)
	}

	switch {
	case errors.Is(err, io.EOF):
		rr.eof = true
	case err != nil:
		return fmt.Errorf("reading chunk: %w", err)
	}
	return nil
}

// Stats returns the counters accumulated so far.
func (rr *RecordReader) Stats() Stats {
	return rr.stats
}

// ChunkSize returns the effective read size.
func (rr *RecordReader) ChunkSize() int {
	return rr.chunkSize
}

// FileReader is a RecordReader bound to an open dump file.
type FileReader struct {
	*RecordReader

	// Path is the file being read.
	Path string

	f *os.File
}

// Open opens the dump file at path for record iteration.
// The caller must Close the returned reader.
func Open(path string, chunkSize int, opts ...Option) (*FileReader, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening dump file %s: %w", path, err)
	}
	return &FileReader{
		RecordReader: NewRecordReader(f, chunkSize, opts...),
		Path:         path,
		f:            f,
	}, nil
}

// Close releases the underlying file.
func (fr *FileReader) Close() error {
	if fr.f == nil {
		return nil
	}
	err := fr.f.Close()
	fr.f = nil
	return err
}
