package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/searchcmp/searchcmp-cli/internal/compare"
)

func (c *ConsoleUI) PrintSummary(rep *compare.Report) {
	fmt.Print(renderSummary(rep))
}

func renderSummary(rep *compare.Report) string {
	var b strings.Builder
	b.WriteString("\n" + text.Bold.Sprintf("captures (diff: %s vs %s)", rep.From, rep.To) + "\n")
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Tool", "Exit", "Lines", "In diff"})
	for _, cap := range rep.Captures {
		in := "-"
		if rep.InDiff(cap.Tool.Name) {
			in = "yes"
		}
		tw.AppendRow(table.Row{cap.Tool.Name, strconv.Itoa(cap.Code), strconv.Itoa(len(cap.Lines)), in})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")
	return b.String()
}
