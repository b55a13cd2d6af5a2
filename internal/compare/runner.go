package compare

import (
	"github.com/searchcmp/searchcmp-cli/internal/executil"
)

// Runner abstracts tool execution so tests can substitute canned captures.
type Runner interface {
	Capture(bin string, args ...string) (executil.Result, error)
}

// ExecRunner runs tools on the live system.
type ExecRunner struct{}

func (ExecRunner) Capture(bin string, args ...string) (executil.Result, error) {
	return executil.Capture(bin, args...)
}
