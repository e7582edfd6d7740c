package summary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
)

// Entry is one distinct line and the number of times it occurred.
type Entry struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// Counter counts lines, remembering the order in which distinct lines were
// first seen.
type Counter struct {
	index   map[string]int
	entries []Entry
	total   int
	lines   int
}

// NewCounter creates an empty Counter.
func NewCounter() *Counter {
	return &Counter{index: make(map[string]int)}
}

// Add counts one line. Empty lines are ignored; Add reports whether the
// line was counted.
func (c *Counter) Add(line string) bool {
	c.lines++
	if line == "" {
		return false
	}
	c.total++
	if i, ok := c.index[line]; ok {
		c.entries[i].Count++
		return true
	}
	c.index[line] = len(c.entries)
	c.entries = append(c.entries, Entry{Text: line, Count: 1})
	return true
}

// Unique returns the number of distinct lines counted.
func (c *Counter) Unique() int {
	return len(c.entries)
}

// Total returns the number of non-empty lines counted.
func (c *Counter) Total() int {
	return c.total
}

// Lines returns the number of lines seen, empty ones included.
func (c *Counter) Lines() int {
	return c.lines
}

// Entries returns the counted lines ordered by count descending. Lines with
// equal counts keep the order in which they were first seen.
func (c *Counter) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// Count reads every line of r into a new Counter.
func Count(ctx context.Context, r io.Reader) (*Counter, error) {
	c := NewCounter()
	lr := NewLineReader(r)
	for {
		line, err := lr.Next()
		if errors.Is(err, io.EOF) {
			return c, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading lines: %w", err)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		c.Add(line)
	}
}

// CountFile counts the lines of the file at path.
func CountFile(ctx context.Context, path string) (*Counter, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening eyecatchers file %s: %w", path, err)
	}
	defer f.Close()

	c, err := Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return c, nil
}
