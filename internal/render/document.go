package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wrap"

	"github.com/atomicstack/editor-menubar/internal/doc"
	"github.com/atomicstack/editor-menubar/internal/theme"
)

// DocumentOptions controls how the document is painted.
type DocumentOptions struct {
	Styles *theme.Styles
	// Width wraps lines when positive.
	Width int
	// ShowCaret paints the selection head.
	ShowCaret bool
}

// Page is a painted document.
type Page struct {
	Lines []string
	// CaretRow is the line index holding the selection head.
	CaretRow int
}

// Document paints every block of s with its marks, the selection highlight
// and the caret.
func Document(s doc.State, opts DocumentOptions) Page {
	styles := opts.Styles
	if styles == nil {
		styles = theme.Default()
	}
	d := s.Doc()
	sel := s.Selection()
	from, to := sel.From(), sel.To()
	head := sel.Head

	var page Page
	for bi, block := range d.Blocks() {
		prefix, base := blockDecoration(styles, block)
		var b strings.Builder
		b.WriteString(prefix)

		// consecutive runes sharing a style are rendered as one run
		var run []rune
		var runStyle lipgloss.Style
		flush := func() {
			if len(run) > 0 {
				b.WriteString(runStyle.Render(string(run)))
				run = run[:0]
			}
		}
		for i, r := range block.Text {
			pos := doc.Pos{Block: bi, Offset: i}
			st := markStyle(*base, block.Marks[i])
			if !sel.Empty() && pos.Compare(from) >= 0 && pos.Compare(to) < 0 {
				st = st.Inherit(*styles.Selected)
			}
			if opts.ShowCaret && pos == head {
				st = st.Inherit(*styles.Caret).Reverse(true)
			}
			if len(run) > 0 && !sameStyle(st, runStyle) {
				flush()
			}
			runStyle = st
			run = append(run, r)
		}
		flush()
		if opts.ShowCaret && head.Block == bi && head.Offset >= block.Len() {
			b.WriteString(styles.Caret.Render(" "))
		}

		line := b.String()
		prefixWidth := ansi.StringWidth(prefix)
		if head.Block == bi {
			page.CaretRow = len(page.Lines)
			if opts.Width > 0 {
				page.CaretRow += (prefixWidth + head.Offset) / opts.Width
			}
		}
		if opts.Width > 0 && ansi.StringWidth(line) > opts.Width {
			line = wrap.String(line, opts.Width)
		}
		page.Lines = append(page.Lines, strings.Split(line, "\n")...)
	}
	return page
}

func blockDecoration(styles *theme.Styles, block doc.Block) (string, *lipgloss.Style) {
	switch block.Type {
	case doc.NodeHeading:
		level, err := strconv.Atoi(block.Attrs["level"])
		if err != nil || level < 1 {
			level = 1
		}
		st := styles.HeadingStyle(level)
		return style(styles.Header, strings.Repeat("#", level)+" "), st
	case doc.NodeCallout:
		st := styles.CalloutStyle(block.Attrs["type"])
		return style(st, "▌ "), styles.Text
	default:
		return "", styles.Text
	}
}

func markStyle(base lipgloss.Style, marks doc.MarkSet) lipgloss.Style {
	st := base
	if marks.Has(doc.MarkStrong) {
		st = st.Bold(true)
	}
	if marks.Has(doc.MarkEm) {
		st = st.Italic(true)
	}
	if marks.Has(doc.MarkUnderline) {
		st = st.Underline(true)
	}
	if marks.Has(doc.MarkStrike) {
		st = st.Strikethrough(true)
	}
	if marks.Has(doc.MarkSuperscript) {
		st = st.Foreground(lipgloss.Color("229"))
	}
	if marks.Has(doc.MarkSubscript) {
		st = st.Faint(true)
	}
	return st
}

func sameStyle(a, b lipgloss.Style) bool {
	return a.GetBold() == b.GetBold() &&
		a.GetItalic() == b.GetItalic() &&
		a.GetUnderline() == b.GetUnderline() &&
		a.GetStrikethrough() == b.GetStrikethrough() &&
		a.GetFaint() == b.GetFaint() &&
		a.GetReverse() == b.GetReverse() &&
		a.GetForeground() == b.GetForeground() &&
		a.GetBackground() == b.GetBackground()
}
