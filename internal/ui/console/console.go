package console

import (
	"fmt"

	"github.com/searchcmp/searchcmp-cli/internal/logging"
)

// ConsoleUI prints run progress and results to stdout. It is the Reporter
// for a comparison run.
type ConsoleUI struct{}

func New() *ConsoleUI { return &ConsoleUI{} }

func (c *ConsoleUI) OnToolStart(name string) {
	logging.Info(fmt.Sprintf("Running %s...", name))
}

func (c *ConsoleUI) OnSorting() {
	logging.Info("Sorting...")
}

// PrintDiff writes the diff exactly as produced, one line at a time, with no
// decoration beyond what the unified format itself carries.
func (c *ConsoleUI) PrintDiff(diff string) {
	if diff == "" {
		return
	}
	fmt.Print(diff)
}
