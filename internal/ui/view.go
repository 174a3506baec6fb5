package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/editor-menubar/internal/format/table"
	"github.com/atomicstack/editor-menubar/internal/menu"
	"github.com/atomicstack/editor-menubar/internal/render"
)

const ellipsis = "…"

// View implements tea.Model.
func (m *Model) View() string {
	var body []string
	if m.mode == ModePalette && m.palette != nil {
		body = m.paletteView()
	} else {
		body = m.editorView(m.bodyHeight())
	}
	lines := append(body, m.statusLine())
	if m.showFooter {
		lines = append(lines, style(styles.Footer, m.help.View(modeHelp{keys: m.keys, mode: m.mode})))
	}
	return strings.Join(applyWidth(lines, m.width), "\n")
}

// bodyHeight is the number of rows above the status line and footer, or -1
// when the height is unknown.
func (m *Model) bodyHeight() int {
	if m.height <= 0 {
		return -1
	}
	h := m.height - 1
	if m.showFooter {
		h--
	}
	if h < 1 {
		return 1
	}
	return h
}

// editorView paints the toolbar and the document. A docked toolbar is pinned
// at the top; a floating one is painted on the line above the caret.
func (m *Model) editorView(height int) []string {
	var focused *menu.Node
	if target, ok := m.focused(); ok {
		focused = target.node
	}
	bar := render.Bar(m.bar.Node(), render.Options{Styles: styles, Focused: focused, Width: m.width})
	page := render.Document(m.host.State(), render.DocumentOptions{
		Styles:    styles,
		Width:     m.width,
		ShowCaret: m.mode == ModeEditor,
	})

	if !m.bar.Floating() {
		docHeight := -1
		if height > 0 {
			docHeight = height - len(bar)
			if docHeight < 1 {
				docHeight = 1
			}
		}
		return append(bar, window(page.Lines, page.CaretRow, docHeight)...)
	}

	row := clamp(page.CaretRow, 0, len(page.Lines))
	lines := make([]string, 0, len(page.Lines)+len(bar))
	lines = append(lines, page.Lines[:row]...)
	lines = append(lines, bar...)
	lines = append(lines, page.Lines[row:]...)
	return window(lines, row+len(bar), height)
}

// window returns at most height lines of lines, scrolled so that row stays
// visible.
func window(lines []string, row, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	start := row - height + 1
	if start < 0 {
		start = 0
	}
	if start+height > len(lines) {
		start = len(lines) - height
	}
	return lines[start : start+height]
}

func (m *Model) maxPaletteRows() int {
	h := m.bodyHeight()
	if h <= 0 {
		return -1
	}
	// title and prompt
	rows := h - 2
	if rows < 1 {
		return 1
	}
	return rows
}

func (m *Model) paletteView() []string {
	p := m.palette
	lines := []string{
		style(styles.Header, "Commands"),
		m.filterPrompt(),
	}
	if len(p.Items) == 0 {
		msg := "(no commands)"
		if p.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", p.Filter)
		}
		return append(lines, style(styles.Info, msg))
	}
	visible, start := p.Visible(m.maxPaletteRows())
	rows := make([][]string, len(visible))
	for i, e := range visible {
		mark := " "
		if e.Active {
			mark = "✓"
		}
		rows[i] = []string{mark + " " + e.Label, e.Detail(), e.Shortcut}
	}
	width := m.width - 2
	formatted := table.Fit(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight}, width, 1)
	for i, text := range formatted {
		e := visible[i]
		lineStyle := styles.PaletteItem
		indicator := " "
		switch {
		case start+i == p.Cursor:
			lineStyle = styles.PaletteSelected
			indicator = style(styles.PaletteIndicator, "▌")
		case e.Disabled:
			lineStyle = styles.ItemDisabled
		}
		lines = append(lines, indicator+" "+style(lineStyle, text))
	}
	return lines
}

func (m *Model) statusLine() string {
	if m.errMsg != "" {
		return style(styles.Error, "Error: "+m.errMsg)
	}
	parts := []string{fmt.Sprintf("[%s]", m.mode)}
	if target, ok := m.focused(); ok && target.label != "" {
		parts = append(parts, target.label)
	}
	if info := m.currentInfo(); info != "" {
		parts = append(parts, info)
	}
	return style(styles.Info, strings.Join(parts, " "))
}

func applyWidth(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if ansi.StringWidth(line) > width {
			line = ansi.Truncate(line, width, ellipsis)
		}
		out[i] = line
	}
	return out
}

func style(s *lipgloss.Style, text string) string {
	if s == nil {
		return text
	}
	return s.Render(text)
}
