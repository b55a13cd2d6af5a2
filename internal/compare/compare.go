package compare

import (
	"fmt"

	"github.com/searchcmp/searchcmp-cli/internal/config"
)

// Reporter receives progress events as the run advances. Events arrive in
// tool config order, then one OnSorting before post-processing.
type Reporter interface {
	OnToolStart(name string)
	OnSorting()
}

// Capture is one tool's finished result: its sorted output lines and the
// exit code it returned.
type Capture struct {
	Tool  config.Tool
	Lines []string
	Code  int
}

// Report is the outcome of a full run. Every configured tool has a Capture;
// Diff covers only the From/To pair.
type Report struct {
	Captures []Capture
	From     string
	To       string
	Diff     string
}

// InDiff reports whether the named tool is one side of the printed diff.
func (r *Report) InDiff(name string) bool {
	return name == r.From || name == r.To
}

type Comparer struct {
	cfg    config.Config
	runner Runner
	rep    Reporter
}

func New(cfg config.Config, runner Runner, rep Reporter) *Comparer {
	return &Comparer{cfg: cfg, runner: runner, rep: rep}
}

// Run executes every configured tool sequentially with the given search
// args, sorts each capture's lines, and diffs the configured pair. The
// search args are opaque: they are forwarded to the tools verbatim, after
// each tool's fixed args. Only a tool that fails to launch aborts the run.
func (c *Comparer) Run(args []string) (*Report, error) {
	from, to, err := c.cfg.ResolvePair()
	if err != nil {
		return nil, err
	}

	raw := make([]string, len(c.cfg.Tools))
	codes := make([]int, len(c.cfg.Tools))
	for i, t := range c.cfg.Tools {
		c.rep.OnToolStart(t.Name)
		res, err := c.runner.Capture(t.Bin, t.CommandLine(args)...)
		if err != nil {
			return nil, fmt.Errorf("tool %s: %w", t.Name, err)
		}
		raw[i] = res.Stdout
		codes[i] = res.Code
	}

	c.rep.OnSorting()
	caps := make([]Capture, len(c.cfg.Tools))
	var fromLines, toLines []string
	for i, t := range c.cfg.Tools {
		caps[i] = Capture{Tool: t, Lines: SortLines(raw[i]), Code: codes[i]}
		switch t.Name {
		case from.Name:
			fromLines = caps[i].Lines
		case to.Name:
			toLines = caps[i].Lines
		}
	}

	diff, err := Unified(fromLines, toLines, from.Name, to.Name, c.cfg.DiffContext())
	if err != nil {
		return nil, fmt.Errorf("diff %s vs %s: %w", from.Name, to.Name, err)
	}
	return &Report{Captures: caps, From: from.Name, To: to.Name, Diff: diff}, nil
}
