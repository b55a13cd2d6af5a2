package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var current Config

func Get() Config { return current }

// LoadFromFiles merges every YAML file into a single Config. Tool lists are
// concatenated in sorted file order; compare pair and context take the last
// non-empty value seen.
func LoadFromFiles(files []string) (Config, error) {
	combined := Config{}
	seen := map[string]string{}
	for _, f := range sortedYAML(files) {
		b, err := os.ReadFile(f)
		if err != nil {
			return Config{}, err
		}
		var part Config
		if err := yaml.Unmarshal(b, &part); err != nil {
			return Config{}, fmt.Errorf("%s: %w", f, err)
		}
		if err := checkToolDuplicatesWithFiles(seen, part, f); err != nil {
			return Config{}, err
		}
		combined.Tools = append(combined.Tools, part.Tools...)
		if part.Compare.From != "" {
			combined.Compare.From = part.Compare.From
		}
		if part.Compare.To != "" {
			combined.Compare.To = part.Compare.To
		}
		if part.Context != 0 {
			combined.Context = part.Context
		}
	}
	if err := Validate(combined); err != nil {
		return Config{}, err
	}
	current = combined
	return combined, nil
}

// Validate checks the structural rules the schema cannot express across
// entries: enough tools, unique names, and a resolvable compare pair.
func Validate(cfg Config) error {
	if len(cfg.Tools) < 2 {
		return fmt.Errorf("need at least two tools to compare, got %d", len(cfg.Tools))
	}
	names := map[string]struct{}{}
	for _, t := range cfg.Tools {
		if t.Name == "" {
			return fmt.Errorf("tool with empty name (bin: %q)", t.Bin)
		}
		if _, ok := names[t.Name]; ok {
			return fmt.Errorf("duplicate tool name: %s", t.Name)
		}
		names[t.Name] = struct{}{}
	}
	if _, _, err := cfg.ResolvePair(); err != nil {
		return err
	}
	return nil
}

// ResolvePair returns the from/to tools for the diff. Unset sides default to
// the first two tools in config order.
func (c Config) ResolvePair() (Tool, Tool, error) {
	if len(c.Tools) < 2 {
		return Tool{}, Tool{}, fmt.Errorf("need at least two tools to compare, got %d", len(c.Tools))
	}
	from := c.Tools[0]
	to := c.Tools[1]
	if c.Compare.From != "" {
		t, ok := c.toolByName(c.Compare.From)
		if !ok {
			return Tool{}, Tool{}, fmt.Errorf("compare.from names unknown tool: %s", c.Compare.From)
		}
		from = t
	}
	if c.Compare.To != "" {
		t, ok := c.toolByName(c.Compare.To)
		if !ok {
			return Tool{}, Tool{}, fmt.Errorf("compare.to names unknown tool: %s", c.Compare.To)
		}
		to = t
	}
	if from.Name == to.Name {
		return Tool{}, Tool{}, fmt.Errorf("compare pair must name two different tools, got %s twice", from.Name)
	}
	return from, to, nil
}

// DiffContext is the unified-diff context line count, defaulting to 3.
func (c Config) DiffContext() int {
	if c.Context > 0 {
		return c.Context
	}
	return 3
}

func (c Config) toolByName(name string) (Tool, bool) {
	for _, t := range c.Tools {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

func sortedYAML(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		lf := strings.ToLower(f)
		if strings.HasSuffix(lf, ".yaml") || strings.HasSuffix(lf, ".yml") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

func checkToolDuplicatesWithFiles(seen map[string]string, part Config, file string) error {
	local := map[string]struct{}{}
	for _, t := range part.Tools {
		if _, ok := local[t.Name]; ok {
			return fmt.Errorf("duplicate tool '%s' found in %s", t.Name, file)
		}
		local[t.Name] = struct{}{}
	}
	for _, t := range part.Tools {
		if prev, ok := seen[t.Name]; ok {
			return fmt.Errorf("duplicate tool '%s' found in %s and %s", t.Name, prev, file)
		}
	}
	for _, t := range part.Tools {
		seen[t.Name] = file
	}
	return nil
}
