package dump

import (
	"fmt"
	"path/filepath"
	"sort"
)

// ExpandGlobs expands a list of dump paths and glob patterns into a
// deduplicated, sorted list of paths. Patterns that match nothing are kept as
// literal paths so the caller reports them as missing files.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			result = append(result, path)
		}
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			add(pattern)
			continue
		}
		for _, match := range matches {
			add(match)
		}
	}

	sort.Strings(result)
	return result, nil
}
