package diff

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ParsePatterns splits a comma-separated glob pattern list, trimming each
// entry. Entries that are empty after trimming are dropped, so an empty
// input excludes nothing.
func ParsePatterns(s string) []string {
	var patterns []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// Exclude returns the files whose target path matches none of the glob
// patterns, preserving order. Files without a target path match as the
// empty string, so a pattern like "*" excludes them too.
func Exclude(files []*File, patterns []string) []*File {
	if len(patterns) == 0 {
		return files
	}

	var kept []*File
	for _, f := range files {
		path, _ := f.TargetPath()
		if !matchesAny(path, patterns) {
			kept = append(kept, f)
		}
	}
	return kept
}

func matchesAny(path string, patterns []string) bool {
	for _, p := range patterns {
		// A malformed pattern matches nothing.
		if ok, err := doublestar.Match(p, path); err == nil && ok {
			return true
		}
	}
	return false
}
