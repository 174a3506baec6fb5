package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/editor-menubar/internal/ui/command"
)

func (m *Model) handleResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.ResultMsg)
	if !ok {
		return nil
	}
	label := result.Request.Label
	if label == "" {
		label = result.Request.ID
	}
	// activating a disabled item reaches the node but dispatches nothing
	changed := result.Ran && result.Applied > 0
	if changed {
		m.errMsg = ""
		m.forceClearInfo()
	} else {
		m.setInfo(fmt.Sprintf("%s is not available here", label))
	}
	// a command run from the toolbar hands focus back to the document
	if changed && m.mode == ModeToolbar {
		m.leaveToolbar()
	}
	m.refreshPalette()
	return nil
}
