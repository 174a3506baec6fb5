package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/editor-menubar/internal/doc"
	"github.com/atomicstack/editor-menubar/internal/menu"
)

func viewContains(f fixture, substr string) bool {
	for _, line := range f.lines() {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func TestPaletteRunsFilteredEntry(t *testing.T) {
	f := newFixture(t, "hello", menu.Options{}, Options{})
	f.key(tea.KeyCtrlP)
	f.expectMode(t, ModePalette)
	if !viewContains(f, "Commands") {
		t.Fatalf("expected palette header, got %q", f.h.View())
	}

	f.h.Type("info")
	if !viewContains(f, "Info Callout") || !viewContains(f, "Formats › Callouts") {
		t.Fatalf("expected info callout row with its path, got %q", f.h.View())
	}
	f.key(tea.KeyEnter)

	f.expectMode(t, ModeEditor)
	if !f.block(0).HasMarkup(doc.NodeCallout, doc.Attrs{"type": "info"}) {
		t.Fatalf("expected block to become an info callout, got %+v", f.block(0))
	}
}

func TestPaletteDisabledEntryStaysOpen(t *testing.T) {
	f := newFixture(t, "hello", menu.Options{}, Options{})
	before := f.host.Applied()
	f.key(tea.KeyCtrlP)
	f.h.Type("paragraph")
	f.key(tea.KeyEnter)
	f.expectMode(t, ModePalette)
	f.expectStatus(t, "Paragraph is not available here")
	if f.host.Applied() != before {
		t.Fatalf("expected no transaction for a disabled entry")
	}
}

func TestPaletteShowsShortcutsAndActiveMarks(t *testing.T) {
	f := newFixture(t, "hello", menu.Options{}, Options{})
	f.key(tea.KeyCtrlB)
	f.key(tea.KeyCtrlP)
	if !viewContains(f, "✓ Bold") {
		t.Fatalf("expected active bold entry, got %q", f.h.View())
	}
	if !viewContains(f, "ctrl+b") {
		t.Fatalf("expected bold shortcut in palette, got %q", f.h.View())
	}
}

func TestPaletteReportsNoMatches(t *testing.T) {
	f := newFixture(t, "hello", menu.Options{}, Options{})
	f.key(tea.KeyCtrlP)
	f.h.Type("zzzz")
	if !viewContains(f, `No matches for "zzzz"`) {
		t.Fatalf("expected no-match message, got %q", f.h.View())
	}
	f.key(tea.KeyEnter)
	f.expectMode(t, ModePalette)
}

func TestPaletteEscClosesWithoutRunning(t *testing.T) {
	f := newFixture(t, "hello", menu.Options{}, Options{})
	before := f.host.Applied()
	f.key(tea.KeyCtrlP)
	f.h.Type("bold")
	f.key(tea.KeyEsc)
	f.expectMode(t, ModeEditor)
	if f.host.Applied() != before {
		t.Fatalf("expected closing the palette not to dispatch")
	}
}

func TestPaletteQueryEditing(t *testing.T) {
	f := newFixture(t, "hello", menu.Options{}, Options{})
	f.key(tea.KeyCtrlP)
	f.h.Type("ital")
	f.key(tea.KeyBackspace)
	p := f.h.Model().palette
	if p.Filter != "ita" {
		t.Fatalf("expected filter %q, got %q", "ita", p.Filter)
	}
	f.h.Send(tea.KeyMsg{Type: tea.KeyCtrlW})
	if p.Filter != "" {
		t.Fatalf("expected ctrl+w to clear the word, got %q", p.Filter)
	}
}
