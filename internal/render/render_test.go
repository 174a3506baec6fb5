package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/editor-menubar/internal/data/dispatcher"
	"github.com/atomicstack/editor-menubar/internal/doc"
	"github.com/atomicstack/editor-menubar/internal/menu"
)

func plain(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ansi.Strip(line)
	}
	return out
}

func defaultBar(t *testing.T, text string) (*menu.Bar, *dispatcher.Dispatcher) {
	t.Helper()
	host := dispatcher.New(doc.NewState(doc.FromText(text)))
	bar, err := menu.NewBar(host, menu.Options{Content: menu.DefaultLayout()})
	require.NoError(t, err)
	t.Cleanup(bar.Destroy)
	return bar, host
}

func leadingSpaces(s string) int {
	return len(s) - len(strings.TrimLeft(s, " "))
}

func TestBarRowShowsGroupsAndSeparators(t *testing.T) {
	bar, _ := defaultBar(t, "plain")
	lines := plain(Bar(bar.Node(), Options{}))
	require.Len(t, lines, 1, "no dropdown is open")

	row := lines[0]
	for _, want := range []string{"↶", "↷", "Formats ▾", "B", "I", "-S-", "sub"} {
		assert.Contains(t, row, want)
	}
	assert.Equal(t, 2, strings.Count(row, separatorGlyph))
	assert.NotContains(t, row, "Header Large", "closed panels are not painted")
}

func TestOpenDropdownPanelAlignsUnderToggle(t *testing.T) {
	bar, _ := defaultBar(t, "plain")
	require.True(t, bar.Registry().Activate("formats"))

	lines := plain(Bar(bar.Node(), Options{}))
	require.Greater(t, len(lines), 2)
	row := lines[0]
	toggleAt := ansi.StringWidth(row[:strings.Index(row, "Formats")]) - 1
	assert.Equal(t, toggleAt, leadingSpaces(lines[1]))

	body := strings.Join(lines[1:], "\n")
	assert.Contains(t, body, "Header Large")
	assert.Contains(t, body, "Callouts ▸")
	assert.NotContains(t, body, "Info Callout")

	require.True(t, bar.Registry().Activate("callouts"))
	body = strings.Join(plain(Bar(bar.Node(), Options{})), "\n")
	assert.Contains(t, body, "Info Callout")
	assert.Contains(t, body, "Warning Callout")
}

func TestHiddenNodesAreNotPainted(t *testing.T) {
	host := dispatcher.New(doc.NewState(doc.FromText("")))
	noop := func(doc.State, doc.DispatchFunc, doc.View) bool { return true }
	bar, err := menu.NewBar(host, menu.Options{Content: menu.Layout{
		{&menu.MenuItem{Label: "shown", Binding: menu.Binding{Run: noop}}},
		{&menu.MenuItem{Label: "gone", Binding: menu.Binding{Run: noop, Select: func(doc.State) bool { return false }}}},
	}})
	require.NoError(t, err)

	row := plain(Bar(bar.Node(), Options{}))[0]
	assert.Contains(t, row, "shown")
	assert.NotContains(t, row, "gone")
	assert.NotContains(t, row, separatorGlyph)

	bar.Node().Hidden = true
	assert.Nil(t, Bar(bar.Node(), Options{}))
}

func TestBarRowIsTruncatedToWidth(t *testing.T) {
	bar, _ := defaultBar(t, "plain")
	lines := Bar(bar.Node(), Options{Width: 12})
	assert.LessOrEqual(t, ansi.StringWidth(lines[0]), 12)
	assert.True(t, strings.HasSuffix(ansi.Strip(lines[0]), ellipsis))
}

func TestDocumentPaintsBlocksAndCaret(t *testing.T) {
	s := doc.NewState(doc.FromText("# Title\n> [!warning] careful\nhello"))
	page := Document(s, DocumentOptions{ShowCaret: true})
	lines := plain(page.Lines)
	require.Len(t, lines, 3)
	assert.Equal(t, "# Title", lines[0])
	assert.Equal(t, "▌ careful", lines[1])
	assert.Equal(t, "hello", lines[2])
	assert.Equal(t, 0, page.CaretRow)

	next, err := s.Apply(s.Tr().SetSelection(doc.Cursor(doc.Pos{Block: 2, Offset: 5})))
	require.NoError(t, err)
	page = Document(next, DocumentOptions{ShowCaret: true})
	assert.Equal(t, "hello ", plain(page.Lines)[2], "caret past the end paints a cell")
	assert.Equal(t, 2, page.CaretRow)
}

func TestDocumentWrapsAndTracksCaretRow(t *testing.T) {
	s := doc.NewState(doc.FromText("abcdefgh"))
	s, err := s.Apply(s.Tr().SetSelection(doc.Cursor(doc.Pos{Offset: 6})))
	require.NoError(t, err)

	page := Document(s, DocumentOptions{Width: 4, ShowCaret: true})
	assert.Equal(t, []string{"abcd", "efgh"}, plain(page.Lines))
	assert.Equal(t, 1, page.CaretRow)
}
