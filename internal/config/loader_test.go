package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromFiles_MergeOK(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "a.yaml")
	f2 := filepath.Join(dir, "b.yaml")
	os.WriteFile(f1, []byte(`
tools:
  - name: ack
    bin: ack
    args: ["--smart-case"]
  - name: ag
    bin: ag
compare:
  from: ack
  to: ag
`), 0o644)
	os.WriteFile(f2, []byte(`
tools:
  - name: rg
    bin: rg
context: 5
`), 0o644)
	cfg, err := LoadFromFiles([]string{f2, f1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cfg.Tools) != 3 {
		t.Fatalf("want 3 tools, got %d", len(cfg.Tools))
	}
	// File order is sorted, so a.yaml's tools come first.
	if cfg.Tools[0].Name != "ack" || cfg.Tools[2].Name != "rg" {
		t.Fatalf("bad tool order: %+v", cfg.Tools)
	}
	if cfg.Compare.From != "ack" || cfg.Compare.To != "ag" {
		t.Fatalf("bad compare pair: %+v", cfg.Compare)
	}
	if cfg.DiffContext() != 5 {
		t.Fatalf("want context 5, got %d", cfg.DiffContext())
	}
}

func TestLoadFromFiles_DuplicateAcrossFiles_ErrorMentionsFiles(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "a.yaml")
	f2 := filepath.Join(dir, "b.yaml")
	os.WriteFile(f1, []byte(`
tools:
  - name: ag
    bin: ag
  - name: rg
    bin: rg
`), 0o644)
	os.WriteFile(f2, []byte(`
tools:
  - name: ag
    bin: ag
`), 0o644)
	_, err := LoadFromFiles([]string{f1, f2})
	if err == nil {
		t.Fatalf("expected duplicate error")
	}
	if !strings.Contains(err.Error(), "a.yaml") || !strings.Contains(err.Error(), "b.yaml") {
		t.Fatalf("error should mention both files: %v", err)
	}
}

func TestLoadFromFiles_ScalarToolShorthand(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "tools.yaml")
	os.WriteFile(f, []byte(`
tools:
  - ag
  - rg
`), 0o644)
	cfg, err := LoadFromFiles([]string{f})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Tools[0].Name != "ag" || cfg.Tools[0].Bin != "ag" || len(cfg.Tools[0].Args) != 0 {
		t.Fatalf("scalar shorthand not expanded: %+v", cfg.Tools[0])
	}
}

func TestLoadFromFiles_TooFewTools(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "tools.yaml")
	os.WriteFile(f, []byte(`
tools:
  - ag
`), 0o644)
	if _, err := LoadFromFiles([]string{f}); err == nil {
		t.Fatalf("expected error for a single tool")
	}
}

func TestResolvePair_DefaultsToFirstTwo(t *testing.T) {
	cfg := Config{Tools: []Tool{
		{Name: "ack", Bin: "ack"},
		{Name: "ag", Bin: "ag"},
		{Name: "rg", Bin: "rg"},
	}}
	from, to, err := cfg.ResolvePair()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if from.Name != "ack" || to.Name != "ag" {
		t.Fatalf("want ack/ag, got %s/%s", from.Name, to.Name)
	}
}

func TestResolvePair_UnknownName(t *testing.T) {
	cfg := Config{
		Tools:   []Tool{{Name: "ack", Bin: "ack"}, {Name: "ag", Bin: "ag"}},
		Compare: ComparePair{From: "ripgrep"},
	}
	if _, _, err := cfg.ResolvePair(); err == nil {
		t.Fatalf("expected error for unknown compare.from")
	}
}

func TestResolvePair_SameToolTwice(t *testing.T) {
	cfg := Config{
		Tools:   []Tool{{Name: "ack", Bin: "ack"}, {Name: "ag", Bin: "ag"}},
		Compare: ComparePair{From: "ag", To: "ag"},
	}
	if _, _, err := cfg.ResolvePair(); err == nil {
		t.Fatalf("expected error for a self-pair")
	}
}

func TestCommandLine_FixedArgsPrepended(t *testing.T) {
	tool := Tool{Name: "ack", Bin: "ack", Args: []string{"--smart-case"}}
	got := tool.CommandLine([]string{"foo", "-i"})
	want := []string{"--smart-case", "foo", "-i"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
