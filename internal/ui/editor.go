package ui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/editor-menubar/internal/doc"
	"github.com/atomicstack/editor-menubar/internal/logging/events"
	"github.com/atomicstack/editor-menubar/internal/ui/command"
)

var motions = map[string]struct {
	dir    doc.Direction
	extend bool
}{
	"left":        {doc.Left, false},
	"right":       {doc.Right, false},
	"up":          {doc.Up, false},
	"down":        {doc.Down, false},
	"shift+left":  {doc.Left, true},
	"shift+right": {doc.Right, true},
	"shift+up":    {doc.Up, true},
	"shift+down":  {doc.Down, true},
}

// handleEditorKey routes a key press to the document. Any key pressed in the
// editor counts as interaction outside the toolbar and closes its dropdowns.
func (m *Model) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.FocusBar):
		m.focusToolbar()
		return nil
	case key.Matches(msg, m.keys.Palette):
		m.openPalette()
		return nil
	case key.Matches(msg, m.keys.Save):
		m.save()
		return nil
	}
	m.bar.CloseAll()
	m.errMsg = ""
	for _, s := range m.keys.shortcuts() {
		if key.Matches(msg, s.binding) {
			events.UI.Shortcut(msg.String(), s.id)
			return m.bus.Execute(command.Request{ID: s.id, Label: s.binding.Help().Desc, Source: command.SourceShortcut})
		}
	}
	if mv, ok := motions[msg.String()]; ok {
		m.run(doc.Move(mv.dir, mv.extend))
		return nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		return nil
	case tea.KeyBackspace, tea.KeyCtrlH:
		m.run(doc.DeleteBackward)
	case tea.KeyEnter:
		m.run(doc.SplitBlock)
	case tea.KeySpace:
		m.run(doc.InsertText(" "))
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		m.run(doc.InsertText(string(msg.Runes)))
	}
	return nil
}

// run applies an editing command against the live state.
func (m *Model) run(cmd doc.Command) bool {
	return cmd(m.host.State(), m.host.Dispatch, m.host)
}
