package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/editor-menubar/internal/logging/events"
	uistate "github.com/atomicstack/editor-menubar/internal/ui/state"
)

var queryMotions = map[string]uistate.Motion{
	"left":   uistate.MotionRuneBackward,
	"right":  uistate.MotionRuneForward,
	"alt+b":  uistate.MotionWordBackward,
	"alt+f":  uistate.MotionWordForward,
	"ctrl+a": uistate.MotionStart,
	"ctrl+e": uistate.MotionEnd,
}

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// handleTextInput edits the palette query. It reports whether the key was used.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	p := m.palette
	if p == nil {
		return false
	}
	before := p.FilterCursorPos()
	if motion, ok := queryMotions[msg.String()]; ok {
		if !p.Move(motion) {
			return false
		}
		m.noteFilterCursorChange(before)
		return true
	}
	edited := false
	switch msg.String() {
	case "ctrl+u":
		if p.Filter == "" {
			return false
		}
		p.SetFilter("", 0)
		edited = true
	case "ctrl+w":
		edited = p.DeleteWord()
	}
	if !edited {
		switch msg.Type {
		case tea.KeyBackspace, tea.KeyCtrlH:
			edited = p.Backspace()
		case tea.KeySpace:
			edited = p.Insert(" ")
		case tea.KeyRunes:
			if msg.Alt || len(msg.Runes) == 0 {
				return false
			}
			for _, r := range msg.Runes {
				if unicode.IsControl(r) {
					return false
				}
			}
			edited = p.Insert(string(msg.Runes))
		}
	}
	if !edited {
		return false
	}
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	p.EnsureCursorVisible(m.maxPaletteRows())
	events.Palette.Filter(p.Filter, len(p.Items))
	return true
}

func (m *Model) noteFilterCursorChange(before int) {
	if m.palette != nil && before != m.palette.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := render(styles.FilterPrompt, "» ")
	if m.palette == nil || m.palette.Filter == "" {
		placeholder := []rune("(type a command)")
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(placeholder[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(placeholder[1:]))
	}
	runes := []rune(m.palette.Filter)
	pos := m.palette.FilterCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune, after := " ", ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Copy().Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
