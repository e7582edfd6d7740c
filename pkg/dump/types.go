// Package dump provides streaming access to the records of binary dump files.
//
// A record is the run of bytes between two delimiter bytes (NUL by default).
// Records are reassembled across read boundaries, so the chunk size used to
// read the underlying file never changes which records are produced.
package dump

import "context"

// DefaultChunkSize is the number of bytes requested from the source per read.
const DefaultChunkSize = 8 * 1024 * 1024

// DefaultDelimiter separates records in a dump.
const DefaultDelimiter byte = 0x00

// RecordSource provides an iterator over dump records.
// Implementations must be safe for sequential access (not concurrent).
type RecordSource interface {
	// Next returns the next record, delimiter excluded.
	// Returns io.EOF when no more records are available.
	// The returned slice is only valid until the following call to Next.
	Next(ctx context.Context) ([]byte, error)
}

// Stats describes the work done by a RecordReader so far.
type Stats struct {
	// BytesRead is the total number of bytes consumed from the source.
	BytesRead int64

	// Chunks is the number of non-empty reads from the source.
	Chunks int

	// Records is the number of records returned by Next.
	Records int
}
