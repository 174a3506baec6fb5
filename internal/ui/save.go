package ui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/editor-menubar/internal/backend"
)

// waitForSave delivers the next write result from the saver.
func (m *Model) waitForSave() tea.Cmd {
	if m.saver == nil {
		return nil
	}
	ch := m.saver.Events()
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			return nil
		}
		return evt
	}
}

func (m *Model) save() {
	if m.saver == nil {
		m.setInfo("No file to save to (start with -file)")
		return
	}
	m.saver.Queue(m.host.State().Doc().Source() + "\n")
}

func (m *Model) handleSaveEvent(msg tea.Msg) tea.Cmd {
	evt, ok := msg.(backend.Event)
	if !ok {
		return nil
	}
	if evt.Err != nil {
		m.errMsg = evt.Err.Error()
	} else {
		m.setInfo("Saved " + filepath.Base(evt.Path))
	}
	return m.waitForSave()
}
