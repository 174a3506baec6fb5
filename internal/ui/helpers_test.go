package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/editor-menubar/internal/data/dispatcher"
	"github.com/atomicstack/editor-menubar/internal/doc"
	"github.com/atomicstack/editor-menubar/internal/logging"
	"github.com/atomicstack/editor-menubar/internal/menu"
)

type fixture struct {
	h    *Harness
	host *dispatcher.Dispatcher
	bar  *menu.Bar
}

func newFixture(t *testing.T, text string, barOpts menu.Options, opts Options) fixture {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "ui.log"))
	t.Cleanup(func() { logging.Configure("") })

	host := dispatcher.New(doc.NewState(doc.FromText(text)))
	if barOpts.Content == nil {
		barOpts.Content = menu.DefaultLayout()
	}
	bar, err := menu.NewBar(host, barOpts)
	if err != nil {
		t.Fatalf("build toolbar: %v", err)
	}
	t.Cleanup(bar.Destroy)
	if opts.Width == 0 {
		opts.Width = 60
	}
	if opts.Height == 0 {
		opts.Height = 20
	}
	return fixture{h: NewHarness(NewModel(host, bar, opts)), host: host, bar: bar}
}

func (f fixture) lines() []string {
	return strings.Split(ansi.Strip(f.h.View()), "\n")
}

func (f fixture) status() string {
	lines := f.lines()
	return lines[len(lines)-1]
}

func (f fixture) key(t tea.KeyType) {
	f.h.Key(t)
}

func (f fixture) block(i int) doc.Block {
	return f.host.State().Doc().Block(i)
}

func (f fixture) expectMode(t *testing.T, want Mode) {
	t.Helper()
	if got := f.h.Model().Mode(); got != want {
		t.Fatalf("expected mode %s, got %s", want, got)
	}
}

func (f fixture) expectStatus(t *testing.T, substr string) {
	t.Helper()
	if status := f.status(); !strings.Contains(status, substr) {
		t.Fatalf("expected status line to contain %q, got %q", substr, status)
	}
}
