package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Tool describes one external search executable to run and compare.
type Tool struct {
	Name string   `yaml:"name" json:"name"`
	Bin  string   `yaml:"bin" json:"bin"`
	Args []string `yaml:"args" json:"args,omitempty"`
}

// ComparePair names the two tools whose sorted output is diffed.
// Empty fields fall back to the first two configured tools.
type ComparePair struct {
	From string `yaml:"from" json:"from,omitempty"`
	To   string `yaml:"to" json:"to,omitempty"`
}

type Config struct {
	Tools   []Tool      `yaml:"tools" json:"tools"`
	Compare ComparePair `yaml:"compare" json:"compare,omitempty"`
	Context int         `yaml:"context" json:"context,omitempty"`
}

// A tool entry may be a plain scalar ("ag", meaning name == bin with no
// extra args) or a full mapping.
func (t *Tool) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		t.Name = value.Value
		t.Bin = value.Value
		t.Args = nil
		return nil
	case yaml.MappingNode:
		var aux struct {
			Name string   `yaml:"name"`
			Bin  string   `yaml:"bin"`
			Args []string `yaml:"args"`
		}
		if err := value.Decode(&aux); err != nil {
			return err
		}
		t.Name = aux.Name
		t.Bin = aux.Bin
		if t.Bin == "" {
			t.Bin = aux.Name
		}
		t.Args = aux.Args
		return nil
	default:
		return fmt.Errorf("invalid tool node kind: %d", value.Kind)
	}
}

// CommandLine is the full argument vector for one invocation: the tool's
// fixed args followed by the user's search args, both verbatim.
func (t Tool) CommandLine(searchArgs []string) []string {
	out := make([]string, 0, len(t.Args)+len(searchArgs))
	out = append(out, t.Args...)
	out = append(out, searchArgs...)
	return out
}
