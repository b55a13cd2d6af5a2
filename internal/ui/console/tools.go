package console

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/kballard/go-shellquote"

	"github.com/searchcmp/searchcmp-cli/internal/config"
)

func (c *ConsoleUI) RunToolsImperative(cfg config.Config) error {
	fmt.Print(RenderTools(cfg))
	return nil
}

// RenderTools lists the configured tools in run order and marks which pair
// the diff covers. Tools outside the pair are still run and sorted, but only
// as a manual cross-reference.
func RenderTools(cfg config.Config) string {
	from, to, err := cfg.ResolvePair()
	if err != nil {
		return "invalid compare pair: " + err.Error() + "\n"
	}
	var b strings.Builder
	b.WriteString(text.Bold.Sprint("tools") + "\n")
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Tool", "Bin", "Fixed args", "Diff role"})
	for _, t := range cfg.Tools {
		role := "-"
		switch t.Name {
		case from.Name:
			role = "from"
		case to.Name:
			role = "to"
		}
		args := "-"
		if len(t.Args) > 0 {
			args = shellquote.Join(t.Args...)
		}
		tw.AppendRow(table.Row{t.Name, t.Bin, args, role})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")
	return b.String()
}
