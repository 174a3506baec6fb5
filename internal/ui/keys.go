package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	FocusBar key.Binding
	Palette  key.Binding
	Quit     key.Binding
	Save     key.Binding

	Prev     key.Binding
	Next     key.Binding
	Activate key.Binding
	Back     key.Binding

	Choose key.Binding
	Up     key.Binding
	Down   key.Binding

	Bold      key.Binding
	Italic    key.Binding
	Underline key.Binding
	Undo      key.Binding
	Redo      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		FocusBar: key.NewBinding(key.WithKeys("f10", "ctrl+t"), key.WithHelp("f10", "toolbar")),
		Palette:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "commands")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),

		Prev:     key.NewBinding(key.WithKeys("left", "up", "shift+tab"), key.WithHelp("←/↑", "previous")),
		Next:     key.NewBinding(key.WithKeys("right", "down", "tab"), key.WithHelp("→/↓", "next")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "activate")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),

		Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Up:     key.NewBinding(key.WithKeys("up", "ctrl+k"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "ctrl+j"), key.WithHelp("↓", "down")),

		Bold:      key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bold")),
		Italic:    key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
		Underline: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "underline")),
		Undo:      key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
	}
}

// shortcuts maps editor key bindings to the toolbar element they activate.
func (k keyMap) shortcuts() []shortcut {
	return []shortcut{
		{binding: k.Bold, id: "mark:strong"},
		{binding: k.Italic, id: "mark:em"},
		{binding: k.Underline, id: "mark:underline"},
		{binding: k.Undo, id: "undo"},
		{binding: k.Redo, id: "redo"},
	}
}

type shortcut struct {
	binding key.Binding
	id      string
}

// shortcutFor returns the help key of the shortcut bound to id.
func (k keyMap) shortcutFor(id string) string {
	for _, s := range k.shortcuts() {
		if s.id == id {
			return s.binding.Help().Key
		}
	}
	return ""
}

// modeHelp adapts the key map to help.KeyMap for the active mode.
type modeHelp struct {
	keys keyMap
	mode Mode
}

func (h modeHelp) ShortHelp() []key.Binding {
	switch h.mode {
	case ModeToolbar:
		return []key.Binding{h.keys.Prev, h.keys.Next, h.keys.Activate, h.keys.Back}
	case ModePalette:
		return []key.Binding{h.keys.Up, h.keys.Down, h.keys.Choose, h.keys.Back}
	default:
		return []key.Binding{h.keys.FocusBar, h.keys.Palette, h.keys.Bold, h.keys.Italic, h.keys.Undo, h.keys.Quit}
	}
}

func (h modeHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.keys.FocusBar, h.keys.Palette, h.keys.Save, h.keys.Quit},
		{h.keys.Prev, h.keys.Next, h.keys.Activate, h.keys.Back},
		{h.keys.Bold, h.keys.Italic, h.keys.Underline, h.keys.Undo, h.keys.Redo},
	}
}
