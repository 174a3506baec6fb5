package doc

import "strings"

// MarkSet is a bit set of inline marks carried by a single rune.
type MarkSet uint8

const (
	MarkStrong MarkSet = 1 << iota
	MarkEm
	MarkUnderline
	MarkStrike
	MarkSuperscript
	MarkSubscript
)

var markNames = []struct {
	mark MarkSet
	name string
}{
	{MarkStrong, "strong"},
	{MarkEm, "em"},
	{MarkUnderline, "underline"},
	{MarkStrike, "strike"},
	{MarkSuperscript, "superscript"},
	{MarkSubscript, "subscript"},
}

// Has reports whether every mark in mark is present in the set.
func (m MarkSet) Has(mark MarkSet) bool {
	return mark != 0 && m&mark == mark
}

// With returns the set with mark added.
func (m MarkSet) With(mark MarkSet) MarkSet {
	return m | mark
}

// Without returns the set with mark removed.
func (m MarkSet) Without(mark MarkSet) MarkSet {
	return m &^ mark
}

func (m MarkSet) String() string {
	if m == 0 {
		return ""
	}
	parts := make([]string, 0, len(markNames))
	for _, entry := range markNames {
		if m.Has(entry.mark) {
			parts = append(parts, entry.name)
		}
	}
	return strings.Join(parts, "+")
}

// ParseMark resolves a mark by its schema name.
func ParseMark(name string) (MarkSet, bool) {
	for _, entry := range markNames {
		if entry.name == name {
			return entry.mark, true
		}
	}
	return 0, false
}

// NodeType names a block node in the schema.
type NodeType string

const (
	NodeParagraph NodeType = "paragraph"
	NodeHeading   NodeType = "heading"
	NodeCallout   NodeType = "callout"
)

// Attrs holds block attributes such as a heading level or callout kind.
type Attrs map[string]string

// Equal compares attribute sets; nil and empty are equal.
func (a Attrs) Equal(b Attrs) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if other, ok := b[k]; !ok || other != v {
			return false
		}
	}
	return true
}

func (a Attrs) clone() Attrs {
	if len(a) == 0 {
		return nil
	}
	dup := make(Attrs, len(a))
	for k, v := range a {
		dup[k] = v
	}
	return dup
}
