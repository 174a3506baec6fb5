package command

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/editor-menubar/internal/logging/events"
)

// Source names where an activation came from.
type Source string

const (
	SourceToolbar  Source = "toolbar"
	SourcePalette  Source = "palette"
	SourceShortcut Source = "shortcut"
)

// Request encapsulates an activation of a toolbar element.
type Request struct {
	ID     string
	Label  string
	Source Source
}

// Activator activates toolbar elements by id.
type Activator interface {
	Activate(id string) bool
}

// ResultMsg reports the outcome of an activation back to the UI.
type ResultMsg struct {
	Request Request
	Ran     bool
	Applied int
}

// Bus routes activations to the toolbar while emitting trace logs.
type Bus struct {
	target  Activator
	applied func() int
}

// New creates a bus over target. applied reports the number of transactions
// dispatched so far and may be nil.
func New(target Activator, applied func() int) *Bus {
	return &Bus{target: target, applied: applied}
}

// Execute activates the requested element immediately, on the caller's
// goroutine, and returns a command carrying the result. Elements must only be
// touched from the Bubble Tea update loop, so nothing runs inside the command.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(string(req.Source), req.ID)
	if b == nil || b.target == nil || req.ID == "" {
		events.Command.Skip(req.Label, "no target")
		return nil
	}
	before := b.count()
	ran := b.target.Activate(req.ID)
	result := ResultMsg{Request: req, Ran: ran, Applied: b.count() - before}
	events.Command.Result(req.ID, ran)
	return func() tea.Msg { return result }
}

func (b *Bus) count() int {
	if b.applied == nil {
		return 0
	}
	return b.applied()
}
