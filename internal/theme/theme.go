package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Bar           *lipgloss.Style
	FloatingBar   *lipgloss.Style
	Item          *lipgloss.Style
	ItemActive    *lipgloss.Style
	ItemDisabled  *lipgloss.Style
	ItemFocused   *lipgloss.Style
	Separator     *lipgloss.Style
	Toggle        *lipgloss.Style
	ToggleOpen    *lipgloss.Style
	Panel         *lipgloss.Style
	SubmenuIndent *lipgloss.Style

	Text     *lipgloss.Style
	Heading  []*lipgloss.Style
	Callouts map[string]*lipgloss.Style
	Caret    *lipgloss.Style
	Selected *lipgloss.Style

	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Header            *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
	PaletteItem       *lipgloss.Style
	PaletteSelected   *lipgloss.Style
	PaletteIndicator  *lipgloss.Style
	PaletteDetail     *lipgloss.Style
}

var defaultStyles = Styles{
	Bar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")),
	),
	FloatingBar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")),
	),
	Item: ptr(
		lipgloss.NewStyle().Padding(0, 1),
	),
	ItemActive: ptr(
		lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Bold(true),
	),
	ItemDisabled: ptr(
		lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("241")),
	),
	ItemFocused: ptr(
		lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	Separator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Toggle: ptr(
		lipgloss.NewStyle().Padding(0, 1),
	),
	ToggleOpen: ptr(
		lipgloss.NewStyle().Padding(0, 1).Underline(true),
	),
	Panel: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
	),
	SubmenuIndent: ptr(
		lipgloss.NewStyle().PaddingLeft(2),
	),

	Text: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Heading: []*lipgloss.Style{
		ptr(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Underline(true)),
		ptr(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231"))),
		ptr(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))),
		ptr(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250"))),
		ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Italic(true)),
	},
	Callouts: map[string]*lipgloss.Style{
		"info":    ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
		"danger":  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("196"))),
		"success": ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("34"))),
		"warning": ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("214"))),
	},
	Caret: ptr(
		lipgloss.NewStyle().Reverse(true),
	),
	Selected: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("24")),
	),

	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	PaletteItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	PaletteSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	PaletteIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	PaletteDetail: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
}

// Default exposes the standard style set used across the UI.
func Default() *Styles {
	return &defaultStyles
}

// HeadingStyle returns the style for a heading level, clamped to the
// available styles.
func (s *Styles) HeadingStyle(level int) *lipgloss.Style {
	if len(s.Heading) == 0 {
		return s.Text
	}
	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(s.Heading) {
		idx = len(s.Heading) - 1
	}
	return s.Heading[idx]
}

// CalloutStyle returns the style for a callout kind, falling back to info.
func (s *Styles) CalloutStyle(kind string) *lipgloss.Style {
	if style, ok := s.Callouts[kind]; ok {
		return style
	}
	if style, ok := s.Callouts["info"]; ok {
		return style
	}
	return s.Text
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
