package compare

import (
	"sort"
	"strings"
)

// SplitLines splits a captured stdout blob on newlines. The empty element a
// trailing newline would produce is dropped; empty input yields no lines.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// SortLines returns the lines of a capture in ascending byte-wise order.
// Duplicate lines are kept; sorting never deduplicates.
func SortLines(s string) []string {
	lines := SplitLines(s)
	sort.Strings(lines)
	return lines
}
