package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tidewl/tidewl/internal/platform"
)

func TestDefaultsFreeze(t *testing.T) {
	b, err := DefaultConfig().Freeze()
	if err != nil {
		t.Fatalf("freezing default config: %v", err)
	}
	if b.Modifier != platform.ModAlt {
		t.Fatalf("modifier = %v, want alt", b.Modifier)
	}
	if b.BorderWidth != 2 {
		t.Fatalf("border width = %d, want 2", b.BorderWidth)
	}
	if got := b.Programs[platform.KeysymReturn]; got != "kitty" {
		t.Fatalf("Return program = %q, want kitty", got)
	}
	if got := b.Actions[platform.KeysymEscape]; got != ActionTerminate {
		t.Fatalf("Escape action = %v, want terminate", got)
	}
	if got := b.Actions['q']; got != ActionCloseFocused {
		t.Fatalf("q action = %v, want close", got)
	}
	if got := b.Programs[platform.KeysymXF86AudioMute]; got == "" {
		t.Fatalf("XF86AudioMute has no program binding")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("loading missing config: %v", err)
	}
	if cfg.Modifier != "alt" {
		t.Fatalf("modifier = %q, want alt", cfg.Modifier)
	}
	if len(cfg.Programs) != len(DefaultConfig().Programs) {
		t.Fatalf("program table %d entries, want builtin table", len(cfg.Programs))
	}
}

func TestOverlayMergesTables(t *testing.T) {
	path := writeConfig(t, `
modifier: logo
border_width: 4
programs:
  Return: foot
actions:
  q: ""
`)

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if cfg.Modifier != "logo" {
		t.Fatalf("modifier = %q, want logo", cfg.Modifier)
	}
	if cfg.BorderWidth != 4 {
		t.Fatalf("border width = %d, want 4", cfg.BorderWidth)
	}
	// One binding replaced, the rest of the builtin table intact.
	if cfg.Programs["Return"] != "foot" {
		t.Fatalf("Return program = %q, want foot", cfg.Programs["Return"])
	}
	if cfg.Programs["F"] != "firefox" {
		t.Fatalf("F program = %q, want builtin firefox", cfg.Programs["F"])
	}
	// Empty value removes the builtin binding.
	if _, ok := cfg.Actions["q"]; ok {
		t.Fatalf("q action survived an empty override")
	}
	if cfg.Actions["Escape"] != "terminate" {
		t.Fatalf("Escape action = %q, want builtin terminate", cfg.Actions["Escape"])
	}
}

func TestMalformedYAMLErrors(t *testing.T) {
	path := writeConfig(t, "programs: [not, a, map")
	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("malformed config accepted")
	}
}

func TestFreezeRejectsUnknownModifier(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Modifier = "hyper"
	if _, err := cfg.Freeze(); err == nil {
		t.Fatalf("unknown modifier accepted")
	}
}

func TestFreezeRejectsUnknownKeysym(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Programs["NotAKey"] = "true"
	if _, err := cfg.Freeze(); err == nil {
		t.Fatalf("unknown keysym accepted")
	}
}

func TestFreezeRejectsUnknownAction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Actions["q"] = "explode"
	if _, err := cfg.Freeze(); err == nil {
		t.Fatalf("unknown action accepted")
	}
}

func TestActionNamesRoundTrip(t *testing.T) {
	for _, a := range []Action{ActionCycle, ActionCloseFocused, ActionTerminate} {
		parsed, err := ParseAction(a.String())
		if err != nil {
			t.Fatalf("parsing %q: %v", a.String(), err)
		}
		if parsed != a {
			t.Fatalf("round trip of %v gave %v", a, parsed)
		}
	}
}
