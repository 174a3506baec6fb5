// Package render paints the toolbar node tree and the document as styled
// terminal lines.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/indent"

	"github.com/atomicstack/editor-menubar/internal/menu"
	"github.com/atomicstack/editor-menubar/internal/theme"
)

const (
	separatorGlyph = "│"
	ellipsis       = "…"
)

// Options controls how the toolbar is painted.
type Options struct {
	Styles *theme.Styles
	// Focused is the node that holds keyboard focus, if any.
	Focused *menu.Node
	// Width truncates the bar row when positive.
	Width int
}

type painter struct {
	opts   Options
	styles *theme.Styles
}

type openPanel struct {
	offset int
	node   *menu.Node
}

// Bar paints the toolbar rooted at root. The first line is the bar row; the
// panels of open dropdowns follow, each aligned under its toggle. A hidden
// bar paints nothing.
func Bar(root *menu.Node, opts Options) []string {
	if root == nil || root.Hidden {
		return nil
	}
	p := painter{opts: opts, styles: opts.Styles}
	if p.styles == nil {
		p.styles = theme.Default()
	}

	var row strings.Builder
	var panels []openPanel
	p.row(root, &row, &panels)

	line := row.String()
	barStyle := p.styles.Bar
	if root.HasClass(menu.ClassFloating) {
		barStyle = p.styles.FloatingBar
	}
	line = style(barStyle, line)
	if opts.Width > 0 && ansi.StringWidth(line) > opts.Width {
		line = ansi.Truncate(line, opts.Width, ellipsis)
	}

	lines := []string{line}
	for _, panel := range panels {
		box := style(p.styles.Panel, strings.Join(p.panelLines(panel.node), "\n"))
		if panel.offset > 0 {
			box = indent.String(box, uint(panel.offset))
		}
		lines = append(lines, strings.Split(box, "\n")...)
	}
	return lines
}

// row appends the inline parts of n to b and records open dropdown panels
// with their horizontal offset.
func (p painter) row(n *menu.Node, b *strings.Builder, panels *[]openPanel) {
	for _, child := range n.Children {
		if child.Hidden {
			continue
		}
		switch child.Tag {
		case menu.TagItem:
			b.WriteString(p.item(child))
		case menu.TagSeparator:
			b.WriteString(style(p.styles.Separator, separatorGlyph))
		case menu.TagDropdown:
			offset := ansi.StringWidth(b.String())
			toggle, panel := parts(child)
			b.WriteString(p.toggle(child, toggle))
			if child.HasClass(menu.ClassOpen) && panel != nil && !panel.Hidden {
				*panels = append(*panels, openPanel{offset: offset, node: panel})
			}
		default:
			p.row(child, b, panels)
		}
	}
}

// panelLines lists the contents of a dropdown panel one entry per line.
// Open submenus expand inline, indented under their toggle.
func (p painter) panelLines(n *menu.Node) []string {
	var lines []string
	for _, child := range n.Children {
		if child.Hidden {
			continue
		}
		switch child.Tag {
		case menu.TagItem:
			lines = append(lines, p.item(child))
		case menu.TagSeparator:
			lines = append(lines, style(p.styles.Separator, "──"))
		case menu.TagSubmenu, menu.TagDropdown:
			toggle, panel := parts(child)
			lines = append(lines, p.toggle(child, toggle))
			if child.HasClass(menu.ClassOpen) && panel != nil && !panel.Hidden {
				for _, sub := range p.panelLines(panel) {
					lines = append(lines, style(p.styles.SubmenuIndent, sub))
				}
			}
		default:
			lines = append(lines, p.panelLines(child)...)
		}
	}
	return lines
}

func (p painter) item(n *menu.Node) string {
	s := p.styles.Item
	switch {
	case n == p.opts.Focused:
		s = p.styles.ItemFocused
	case n.HasClass(menu.ClassDisabled):
		s = p.styles.ItemDisabled
	case n.HasClass(menu.ClassActive):
		s = p.styles.ItemActive
	}
	return style(s, n.Text)
}

func (p painter) toggle(dropdown, toggle *menu.Node) string {
	if toggle == nil {
		return ""
	}
	s := p.styles.Toggle
	switch {
	case toggle == p.opts.Focused:
		s = p.styles.ItemFocused
	case dropdown.HasClass(menu.ClassOpen):
		s = p.styles.ToggleOpen
	}
	return style(s, toggle.Text)
}

func parts(dropdown *menu.Node) (toggle, panel *menu.Node) {
	for _, child := range dropdown.Children {
		switch child.Tag {
		case menu.TagToggle:
			toggle = child
		case menu.TagPanel:
			panel = child
		}
	}
	return toggle, panel
}

func style(s *lipgloss.Style, text string) string {
	if s == nil {
		return text
	}
	return s.Render(text)
}
