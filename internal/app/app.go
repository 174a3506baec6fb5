package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/editor-menubar/internal/backend"
	"github.com/atomicstack/editor-menubar/internal/data/dispatcher"
	"github.com/atomicstack/editor-menubar/internal/doc"
	"github.com/atomicstack/editor-menubar/internal/logging/events"
	"github.com/atomicstack/editor-menubar/internal/menu"
	"github.com/atomicstack/editor-menubar/internal/ui"
)

const saveInterval = 500 * time.Millisecond

// sampleText is loaded when no file is given.
const sampleText = `# Welcome
Select some text and press ctrl+b, or f10 to reach the toolbar.
> [!warning] ctrl+p opens the command palette.
Editing happens in memory until a file is given with -file.`

// Config describes user-provided application options.
type Config struct {
	File       string
	Autosave   bool
	Floating   bool
	Dropdowns  menu.Policy
	Width      int
	Height     int
	ShowFooter bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	text, err := loadText(cfg.File)
	if err != nil {
		return err
	}
	host := dispatcher.New(doc.NewState(doc.FromText(text)))

	sink := &ui.ErrorSink{}
	bar, err := menu.NewBar(host, menu.Options{
		Content:  menu.DefaultLayout(),
		Floating: cfg.Floating,
		Policy:   cfg.Dropdowns,
		Reporter: sink,
	})
	if err != nil {
		return err
	}
	defer bar.Destroy()

	saver, stopSaver := startSaver(cfg, host, saveInterval)
	defer stopSaver()

	model := ui.NewModel(host, bar, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Errors:     sink,
		Saver:      saver,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	events.App.Stop(host.Applied())
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// startSaver creates the saver for cfg.File. ctrl+s saves whenever a file is
// given; every change is written only with Autosave. The returned function
// flushes and stops the saver.
func startSaver(cfg Config, host *dispatcher.Dispatcher, interval time.Duration) (*backend.Saver, func()) {
	if cfg.File == "" {
		return nil, func() {}
	}
	saver := backend.NewSaver(cfg.File, interval)
	saver.Prime(host.State())
	unsubscribe := func() {}
	if cfg.Autosave {
		unsubscribe = host.Subscribe(saver.Observe)
	}
	return saver, func() {
		unsubscribe()
		saver.Stop()
		saver.Wait()
	}
}

// loadText reads the document file. A missing file starts an empty document
// that is created on the first save.
func loadText(path string) (string, error) {
	if path == "" {
		return sampleText, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return string(data), nil
}
