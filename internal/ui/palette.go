package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/editor-menubar/internal/logging/events"
	"github.com/atomicstack/editor-menubar/internal/ui/command"
	uistate "github.com/atomicstack/editor-menubar/internal/ui/state"
)

// paletteEntries lists the toolbar items that can be run by id.
func (m *Model) paletteEntries() []uistate.Entry {
	entries := m.bar.Entries()
	out := make([]uistate.Entry, 0, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			continue
		}
		out = append(out, uistate.Entry{
			ID:       e.ID,
			Label:    e.Label,
			Path:     e.Path,
			Shortcut: m.keys.shortcutFor(e.ID),
			Disabled: e.Disabled,
			Active:   e.Active,
		})
	}
	return out
}

func (m *Model) openPalette() {
	m.palette = uistate.NewPalette(m.paletteEntries())
	m.palette.EnsureCursorVisible(m.maxPaletteRows())
	m.filterCursorDirty = true
	m.errMsg = ""
	m.setMode(ModePalette)
	events.Palette.Open(len(m.palette.Full))
}

func (m *Model) closePalette() {
	m.palette = nil
	m.setMode(ModeEditor)
}

// refreshPalette reloads entries after a state change, keeping the query.
func (m *Model) refreshPalette() {
	if m.palette == nil {
		return
	}
	m.palette.UpdateItems(m.paletteEntries())
	m.palette.EnsureCursorVisible(m.maxPaletteRows())
}

func (m *Model) handlePaletteKey(msg tea.KeyMsg) tea.Cmd {
	p := m.palette
	if p == nil {
		m.setMode(ModeEditor)
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Palette):
		m.closePalette()
		return nil
	case key.Matches(msg, m.keys.Choose):
		return m.choosePaletteEntry()
	case key.Matches(msg, m.keys.Up):
		p.MoveCursor(-1)
		p.EnsureCursorVisible(m.maxPaletteRows())
		return nil
	case key.Matches(msg, m.keys.Down):
		p.MoveCursor(1)
		p.EnsureCursorVisible(m.maxPaletteRows())
		return nil
	}
	switch msg.String() {
	case "pgup":
		p.MoveCursorPageUp(m.maxPaletteRows())
	case "pgdown":
		p.MoveCursorPageDown(m.maxPaletteRows())
	case "home":
		p.MoveCursorHome()
	case "end":
		p.MoveCursorEnd()
	default:
		m.handleTextInput(msg)
		return nil
	}
	p.EnsureCursorVisible(m.maxPaletteRows())
	return nil
}

func (m *Model) choosePaletteEntry() tea.Cmd {
	entry, ok := m.palette.Current()
	if !ok {
		return nil
	}
	if entry.Disabled {
		m.setInfo(entry.Label + " is not available here")
		return nil
	}
	events.Palette.Choose(entry.ID, entry.Label)
	m.closePalette()
	return m.bus.Execute(command.Request{ID: entry.ID, Label: entry.Label, Source: command.SourcePalette})
}
