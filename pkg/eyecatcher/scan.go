package eyecatcher

import (
	"strings"
	"unicode/utf8"
)

// IsPrintable reports whether c can be part of a printable run: visible ASCII
// and space (0x20-0x7E) or ASCII whitespace (\t \n \v \f \r).
func IsPrintable(c byte) bool {
	return c >= 0x20 && c <= 0x7e || c >= '\t' && c <= '\r'
}

// Runs calls fn for every maximal run of printable bytes in rec that is at
// least minRun bytes long, left to right. off is the position of the run in
// rec. run aliases rec.
func Runs(rec []byte, minRun int, fn func(off int, run []byte)) {
	if minRun < 1 {
		minRun = 1
	}

	start := -1
	for i, c := range rec {
		if IsPrintable(c) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && i-start >= minRun {
			fn(start, rec[start:i])
		}
		start = -1
	}
	if start >= 0 && len(rec)-start >= minRun {
		fn(start, rec[start:])
	}
}

// Text converts run bytes to a string, replacing any byte outside ASCII with
// utf8.RuneError.
func Text(run []byte) string {
	var sb strings.Builder
	sb.Grow(len(run))
	for _, c := range run {
		if c < utf8.RuneSelf {
			sb.WriteByte(c)
			continue
		}
		sb.WriteRune(utf8.RuneError)
	}
	return sb.String()
}
