// Package summary counts duplicate eyecatcher lines and ranks them by
// frequency.
package summary

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const readBufferSize = 64 * 1024

// LineReader reads the text lines of a stream. Input is decoded as UTF-8
// with invalid sequences replaced by U+FFFD, and "\n", "\r\n" and a lone
// "\r" all end a line. Line endings are not part of the returned text.
//
// Lines have no length limit. Each byte is examined a bounded number of
// times, so reading is linear in the input size however long a line is.
type LineReader struct {
	r *bufio.Reader

	// buf holds the current "\n"-terminated segment; lines are views into it.
	buf   []byte
	lines [][]byte
	err   error
}

// NewLineReader returns a LineReader over r.
func NewLineReader(r io.Reader) *LineReader {
	dec := transform.NewReader(r, unicode.UTF8.NewDecoder())
	return &LineReader{r: bufio.NewReaderSize(dec, readBufferSize)}
}

// Next returns the next line, or io.EOF when the input is exhausted.
func (lr *LineReader) Next() (string, error) {
	for len(lr.lines) == 0 {
		if lr.err != nil {
			return "", lr.err
		}
		lr.readSegment()
	}
	line := lr.lines[0]
	lr.lines = lr.lines[1:]
	return string(line), nil
}

// readSegment reads up to and including the next "\n" and splits the
// segment on the carriage returns it contains.
func (lr *LineReader) readSegment() {
	lr.buf = lr.buf[:0]
	for {
		frag, err := lr.r.ReadSlice('\n')
		lr.buf = append(lr.buf, frag...)
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil {
			lr.err = err
			if !errors.Is(err, io.EOF) || len(lr.buf) == 0 {
				return
			}
		}
		break
	}

	body := bytes.TrimSuffix(lr.buf, []byte{'\n'})
	body = bytes.TrimSuffix(body, []byte{'\r'})
	lr.lines = bytes.Split(body, []byte{'\r'})
}
