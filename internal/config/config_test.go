package config

import (
	"strings"
	"testing"

	"github.com/atomicstack/editor-menubar/internal/menu"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.File != "" || cfg.App.Floating || cfg.App.ShowFooter {
		t.Fatalf("unexpected defaults %#v", cfg.App)
	}
	if !cfg.App.Autosave {
		t.Fatalf("expected autosave to default on")
	}
	if cfg.App.Dropdowns != menu.PolicyExclusive {
		t.Fatalf("expected exclusive dropdowns, got %s", cfg.App.Dropdowns)
	}
	if cfg.Flags["dropdowns"] != "exclusive" {
		t.Fatalf("expected dropdowns flag to be recorded, got %q", cfg.Flags["dropdowns"])
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		envFile + "=env.txt",
		envFloating + "=true",
		envDropdowns + "=independent",
		envWidth + "=100",
	}
	cfg, err := LoadArgs([]string{"-file", "flag.txt", "-width", "60", "-trace"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.File != "flag.txt" {
		t.Fatalf("expected flag to win for file, got %q", cfg.App.File)
	}
	if cfg.App.Width != 60 {
		t.Fatalf("expected width 60, got %d", cfg.App.Width)
	}
	if !cfg.App.Floating {
		t.Fatalf("expected floating from environment")
	}
	if cfg.App.Dropdowns != menu.PolicyIndependent {
		t.Fatalf("expected independent dropdowns from environment, got %s", cfg.App.Dropdowns)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled")
	}
	if len(cfg.Args) != 5 {
		t.Fatalf("expected args to be kept, got %v", cfg.Args)
	}
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envWidth + "=wide", envShowFooter + "=maybe", "garbage"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.ShowFooter {
		t.Fatalf("expected fallbacks for malformed values, got %#v", cfg.App)
	}
}

func TestLoadArgsRejectsBadValues(t *testing.T) {
	cases := map[string][]string{
		"policy": {"-dropdowns", "sometimes"},
		"width":  {"-width", "-1"},
		"height": {"-height", "-3"},
		"flag":   {"-no-such-flag"},
	}
	for name, args := range cases {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("%s: expected error for %v", name, args)
		}
	}
}

func TestValidateRejectsUnknownPolicy(t *testing.T) {
	cfg := Config{}
	cfg.App.Dropdowns = menu.Policy(7)
	err := Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "Policy(7)") {
		t.Fatalf("expected unknown policy error, got %v", err)
	}
}
