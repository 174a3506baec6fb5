package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/editor-menubar/internal/logging/events"
	"github.com/atomicstack/editor-menubar/internal/menu"
	"github.com/atomicstack/editor-menubar/internal/ui/command"
)

// focusTarget is one stop of keyboard navigation across the toolbar.
type focusTarget struct {
	id    string
	label string
	// node receives the activation: the item itself, or a dropdown's toggle.
	node   *menu.Node
	toggle bool
}

// focusTargets lists the visible activatable stops in visual order. The
// contents of an open dropdown follow its toggle.
func (m *Model) focusTargets() []focusTarget {
	var out []focusTarget
	var walk func(n *menu.Node)
	walk = func(n *menu.Node) {
		if n.Hidden {
			return
		}
		switch n.Tag {
		case menu.TagItem:
			id, _ := n.Attr("id")
			label, ok := n.Attr("title")
			if !ok {
				label = n.Text
			}
			out = append(out, focusTarget{id: id, label: label, node: n})
			return
		case menu.TagDropdown, menu.TagSubmenu:
			id, _ := n.Attr("id")
			label, _ := n.Attr("label")
			for _, child := range n.Children {
				switch child.Tag {
				case menu.TagToggle:
					out = append(out, focusTarget{id: id, label: label, node: child, toggle: true})
				case menu.TagPanel:
					walk(child)
				}
			}
			return
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(m.bar.Node())
	return out
}

// focused returns the toolbar stop holding focus, if the toolbar has focus.
func (m *Model) focused() (focusTarget, bool) {
	if m.mode != ModeToolbar {
		return focusTarget{}, false
	}
	targets := m.focusTargets()
	if len(targets) == 0 {
		return focusTarget{}, false
	}
	m.focus = clamp(m.focus, 0, len(targets)-1)
	return targets[m.focus], true
}

func (m *Model) focusToolbar() {
	if len(m.focusTargets()) == 0 {
		m.setInfo("Toolbar has nothing to focus")
		return
	}
	m.focus = 0
	m.setMode(ModeToolbar)
	m.traceFocus()
}

func (m *Model) leaveToolbar() {
	m.bar.CloseAll()
	m.setMode(ModeEditor)
}

func (m *Model) moveFocus(delta int) {
	targets := m.focusTargets()
	n := len(targets)
	if n == 0 {
		m.leaveToolbar()
		return
	}
	m.focus = ((clamp(m.focus, 0, n-1)+delta)%n + n) % n
	m.traceFocus()
}

func (m *Model) traceFocus() {
	if target, ok := m.focused(); ok {
		events.UI.ToolbarCursor(m.focus, target.label)
	}
}

func (m *Model) handleToolbarKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Back):
		if m.bar.AnyOpen() {
			m.bar.CloseAll()
			m.focus = clamp(m.focus, 0, len(m.focusTargets())-1)
			return nil
		}
		m.leaveToolbar()
	case key.Matches(msg, m.keys.FocusBar):
		m.leaveToolbar()
	case key.Matches(msg, m.keys.Palette):
		m.bar.CloseAll()
		m.openPalette()
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Activate):
		return m.activateFocused()
	}
	return nil
}

func (m *Model) activateFocused() tea.Cmd {
	target, ok := m.focused()
	if !ok {
		return nil
	}
	if target.toggle || target.id == "" {
		// toggles and anonymous items are driven directly through their node
		before := m.host.Applied()
		ran := target.node.Activate()
		if target.toggle {
			return nil
		}
		return resultCmd(command.ResultMsg{
			Request: command.Request{Label: target.label, Source: command.SourceToolbar},
			Ran:     ran,
			Applied: m.host.Applied() - before,
		})
	}
	return m.bus.Execute(command.Request{ID: target.id, Label: target.label, Source: command.SourceToolbar})
}

func resultCmd(msg command.ResultMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
