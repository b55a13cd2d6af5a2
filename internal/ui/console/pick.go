package console

import (
	"fmt"

	survey "github.com/AlecAivazis/survey/v2"

	"github.com/searchcmp/searchcmp-cli/internal/config"
)

// PickPair asks the user which two tools to diff for this run.
func PickPair(cfg config.Config) (config.ComparePair, error) {
	names := make([]string, 0, len(cfg.Tools))
	for _, t := range cfg.Tools {
		names = append(names, t.Name)
	}
	var from string
	if err := survey.AskOne(&survey.Select{Message: "Diff from:", Options: names}, &from); err != nil {
		return config.ComparePair{}, err
	}
	rest := make([]string, 0, len(names)-1)
	for _, n := range names {
		if n != from {
			rest = append(rest, n)
		}
	}
	var to string
	if err := survey.AskOne(&survey.Select{Message: fmt.Sprintf("Diff %s against:", from), Options: rest}, &to); err != nil {
		return config.ComparePair{}, err
	}
	return config.ComparePair{From: from, To: to}, nil
}
