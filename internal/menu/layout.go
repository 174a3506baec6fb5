package menu

import (
	"strconv"
	"strings"

	"github.com/atomicstack/editor-menubar/internal/doc"
)

var headingLabels = []struct {
	level int
	label string
}{
	{2, "Header Large"},
	{3, "Header Medium"},
	{4, "Header Small"},
	{5, "Header Tiny"},
}

var calloutKinds = []string{"info", "danger", "success", "warning"}

// DefaultLayout is the editor toolbar: history, block formats and inline styles.
func DefaultLayout() Layout {
	formats := make([]Element, 0, len(headingLabels)+2)
	for _, h := range headingLabels {
		formats = append(formats, BlockTypeItem(doc.NodeHeading, doc.Attrs{"level": strconv.Itoa(h.level)}, ItemOptions{Label: h.label}))
	}
	formats = append(formats, BlockTypeItem(doc.NodeParagraph, nil, ItemOptions{Label: "Paragraph"}))

	callouts := make([]Element, 0, len(calloutKinds))
	for _, kind := range calloutKinds {
		label := strings.ToUpper(kind[:1]) + kind[1:] + " Callout"
		callouts = append(callouts, BlockTypeItem(doc.NodeCallout, doc.Attrs{"type": kind}, ItemOptions{Label: label}))
	}
	formats = append(formats, &DropdownSubmenu{ID: "callouts", Label: "Callouts", Children: callouts})

	inline := []Element{
		MarkItem(doc.MarkStrong, ItemOptions{Title: "Bold", Icon: Icons.Strong}),
		MarkItem(doc.MarkEm, ItemOptions{Title: "Italic", Icon: Icons.Em}),
		MarkItem(doc.MarkUnderline, ItemOptions{Title: "Underline", Label: "U"}),
		MarkItem(doc.MarkStrike, ItemOptions{Title: "Strikethrough", Label: "-S-"}),
		MarkItem(doc.MarkSuperscript, ItemOptions{Title: "Superscript", Label: "sup"}),
		MarkItem(doc.MarkSubscript, ItemOptions{Title: "Subscript", Label: "sub"}),
	}

	return Layout{
		{UndoItem(), RedoItem()},
		{&Dropdown{ID: "formats", Label: "Formats", Title: "Block formats", Children: formats}},
		inline,
	}
}
