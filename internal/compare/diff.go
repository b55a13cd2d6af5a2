package compare

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Unified renders a unified diff between two sorted line sets. Equal inputs
// produce an empty string: difflib emits the ---/+++ header only once there
// is at least one hunk.
func Unified(from, to []string, fromName, toName string, context int) (string, error) {
	ud := difflib.UnifiedDiff{
		A:        terminated(from),
		B:        terminated(to),
		FromFile: fromName,
		ToFile:   toName,
		Context:  context,
	}
	return difflib.GetUnifiedDiffString(ud)
}

// difflib expects newline-terminated lines; captures are stored bare.
func terminated(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l + "\n"
	}
	return out
}
