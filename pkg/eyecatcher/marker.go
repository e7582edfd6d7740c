// Package eyecatcher finds eyecatcher strings in dump records.
//
// An eyecatcher is a maximal run of printable ASCII that contains a marker:
// a literal prefix (">BIP" for IBM ACE dumps) followed by a fixed number of
// word characters. The whole run is reported, not just the marker.
package eyecatcher

import (
	"bytes"
	"errors"
	"fmt"
)

// Default marker definition.
const (
	DefaultPrefix = ">BIP"
	DefaultWidth  = 4
	DefaultMinRun = 4
)

// ErrInvalidMarker is returned when a marker definition cannot match anything.
var ErrInvalidMarker = errors.New("invalid marker")

// Marker matches a literal prefix followed by Width word characters
// ([0-9A-Za-z_]).
type Marker struct {
	prefix []byte
	width  int
}

// DefaultMarker matches ">BIP" followed by four digits or word characters.
var DefaultMarker = Marker{prefix: []byte(DefaultPrefix), width: DefaultWidth}

// NewMarker creates a Marker. The prefix must be non-empty printable ASCII and
// width must be at least 1.
func NewMarker(prefix string, width int) (Marker, error) {
	if prefix == "" {
		return Marker{}, fmt.Errorf("%w: prefix is required", ErrInvalidMarker)
	}
	for i := 0; i < len(prefix); i++ {
		if prefix[i] < 0x20 || prefix[i] > 0x7e {
			return Marker{}, fmt.Errorf("%w: prefix %q contains non-printable byte 0x%02x", ErrInvalidMarker, prefix, prefix[i])
		}
	}
	if width < 1 {
		return Marker{}, fmt.Errorf("%w: width must be >= 1, got %d", ErrInvalidMarker, width)
	}
	return Marker{prefix: []byte(prefix), width: width}, nil
}

// Prefix returns the literal the marker starts with.
func (m Marker) Prefix() string { return string(m.prefix) }

// Width returns the number of word characters required after the prefix.
func (m Marker) Width() int { return m.width }

// String renders the marker in pattern form, e.g. ">BIP\w{4}".
func (m Marker) String() string {
	return fmt.Sprintf(`%s\w{%d}`, m.prefix, m.width)
}

// Index returns the offset of the first marker occurrence in b, or -1.
// Digits are word characters, so a digits-only suffix is covered by the same
// test.
func (m Marker) Index(b []byte) int {
	if len(m.prefix) == 0 {
		return -1
	}
	for off := 0; off < len(b); {
		i := bytes.Index(b[off:], m.prefix)
		if i < 0 {
			return -1
		}
		start := off + i
		tail := b[start+len(m.prefix):]
		if len(tail) >= m.width && allWord(tail[:m.width]) {
			return start
		}
		off = start + 1
	}
	return -1
}

// Match reports whether b contains the marker at least once.
func (m Marker) Match(b []byte) bool {
	return m.Index(b) >= 0
}

func allWord(b []byte) bool {
	for _, c := range b {
		if !isWord(c) {
			return false
		}
	}
	return true
}

func isWord(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'A' && c <= 'Z' ||
		c >= 'a' && c <= 'z' ||
		c == '_'
}
