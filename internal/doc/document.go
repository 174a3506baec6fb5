package doc

import (
	"slices"
	"strconv"
	"strings"
)

// Block is a single textblock. Marks holds one entry per rune of Text.
type Block struct {
	Type  NodeType
	Attrs Attrs
	Text  []rune
	Marks []MarkSet
}

// Paragraph builds an unmarked paragraph block.
func Paragraph(text string) Block {
	return newBlock(NodeParagraph, nil, text)
}

// Heading builds an unmarked heading block of the given level.
func Heading(level int, text string) Block {
	return newBlock(NodeHeading, Attrs{"level": strconv.Itoa(level)}, text)
}

// Callout builds an unmarked callout block of the given kind.
func Callout(kind, text string) Block {
	return newBlock(NodeCallout, Attrs{"type": kind}, text)
}

func newBlock(t NodeType, attrs Attrs, text string) Block {
	runes := []rune(text)
	return Block{Type: t, Attrs: attrs, Text: runes, Marks: make([]MarkSet, len(runes))}
}

// Len returns the block length in runes.
func (b Block) Len() int {
	return len(b.Text)
}

// HasMarkup reports whether the block already has the given type and attributes.
func (b Block) HasMarkup(t NodeType, attrs Attrs) bool {
	return b.Type == t && b.Attrs.Equal(attrs)
}

func (b Block) String() string {
	return string(b.Text)
}

func (b Block) clone() Block {
	return Block{
		Type:  b.Type,
		Attrs: b.Attrs.clone(),
		Text:  slices.Clone(b.Text),
		Marks: slices.Clone(b.Marks),
	}
}

// Document is an immutable sequence of blocks. It always holds at least one block.
type Document struct {
	blocks []Block
}

// NewDocument builds a document from blocks, inserting an empty paragraph when none are given.
func NewDocument(blocks ...Block) Document {
	if len(blocks) == 0 {
		return Document{blocks: []Block{Paragraph("")}}
	}
	dup := make([]Block, len(blocks))
	for i, b := range blocks {
		dup[i] = b.clone()
		if len(dup[i].Marks) != len(dup[i].Text) {
			dup[i].Marks = make([]MarkSet, len(dup[i].Text))
		}
	}
	return Document{blocks: dup}
}

// FromText parses a plain-text document. Lines starting with "#" become
// headings (level = number of hashes), lines starting with ">" become info
// callouts, or "> [!kind]" callouts of that kind; everything else is a paragraph.
func FromText(text string) Document {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, parseLine(line))
	}
	return NewDocument(blocks...)
}

func parseLine(line string) Block {
	if strings.HasPrefix(line, "#") {
		level := 0
		for level < len(line) && line[level] == '#' {
			level++
		}
		if level <= 6 && (level == len(line) || line[level] == ' ') {
			return Heading(level, strings.TrimPrefix(line[level:], " "))
		}
	}
	if strings.HasPrefix(line, ">") {
		body := strings.TrimPrefix(strings.TrimPrefix(line, ">"), " ")
		kind := "info"
		if strings.HasPrefix(body, "[!") {
			if end := strings.Index(body, "]"); end > 2 {
				kind = strings.ToLower(body[2:end])
				body = strings.TrimPrefix(body[end+1:], " ")
			}
		}
		return Callout(kind, body)
	}
	return Paragraph(line)
}

// Len returns the number of blocks.
func (d Document) Len() int {
	return len(d.blocks)
}

// Block returns the block at index i.
func (d Document) Block(i int) Block {
	return d.blocks[i]
}

// Blocks returns a copy of the block list.
func (d Document) Blocks() []Block {
	return slices.Clone(d.blocks)
}

// Text joins the block texts with newlines.
func (d Document) Text() string {
	parts := make([]string, len(d.blocks))
	for i, b := range d.blocks {
		parts[i] = b.String()
	}
	return strings.Join(parts, "\n")
}

// Source renders the document in the plain-text form FromText reads. Marks
// are not part of that form and are dropped.
func (d Document) Source() string {
	var sb strings.Builder
	for i, b := range d.blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		switch b.Type {
		case NodeHeading:
			level, err := strconv.Atoi(b.Attrs["level"])
			if err != nil || level < 1 {
				level = 1
			}
			sb.WriteString(strings.Repeat("#", level))
			sb.WriteByte(' ')
		case NodeCallout:
			sb.WriteString("> ")
			if kind := b.Attrs["type"]; kind != "" && kind != "info" {
				sb.WriteString("[!" + kind + "] ")
			}
		}
		sb.WriteString(string(b.Text))
	}
	return sb.String()
}

// Start is the first position in the document.
func (d Document) Start() Pos {
	return Pos{}
}

// End is the last position in the document.
func (d Document) End() Pos {
	last := len(d.blocks) - 1
	return Pos{Block: last, Offset: d.blocks[last].Len()}
}

// RangeHasMark reports whether any rune between from and to carries mark.
func (d Document) RangeHasMark(from, to Pos, mark MarkSet) bool {
	found := false
	d.eachSpan(from, to, func(i, start, end int) {
		for _, m := range d.blocks[i].Marks[start:end] {
			if m.Has(mark) {
				found = true
				return
			}
		}
	})
	return found
}

// MarksAt returns the marks that text typed at p would inherit: the marks of
// the rune before p, or of the first rune when p is at the block start.
func (d Document) MarksAt(p Pos) MarkSet {
	p = d.clamp(p)
	b := d.blocks[p.Block]
	switch {
	case p.Offset > 0:
		return b.Marks[p.Offset-1]
	case b.Len() > 0:
		return b.Marks[0]
	default:
		return 0
	}
}

func (d Document) eachSpan(from, to Pos, fn func(i, start, end int)) {
	from, to = d.clamp(from), d.clamp(to)
	if to.Compare(from) < 0 {
		from, to = to, from
	}
	for i := from.Block; i <= to.Block; i++ {
		start, end := 0, d.blocks[i].Len()
		if i == from.Block {
			start = from.Offset
		}
		if i == to.Block {
			end = to.Offset
		}
		fn(i, start, end)
	}
}

func (d Document) clamp(p Pos) Pos {
	if p.Block < 0 {
		return d.Start()
	}
	if p.Block >= len(d.blocks) {
		return d.End()
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	if n := d.blocks[p.Block].Len(); p.Offset > n {
		p.Offset = n
	}
	return p
}

// Pos addresses a position between runes: a block index and a rune offset.
type Pos struct {
	Block  int
	Offset int
}

// Compare orders positions in document order.
func (p Pos) Compare(o Pos) int {
	switch {
	case p.Block != o.Block:
		if p.Block < o.Block {
			return -1
		}
		return 1
	case p.Offset < o.Offset:
		return -1
	case p.Offset > o.Offset:
		return 1
	default:
		return 0
	}
}

// Selection is a range between an anchor and a head.
type Selection struct {
	Anchor Pos
	Head   Pos
}

// Cursor is an empty selection at p.
func Cursor(p Pos) Selection {
	return Selection{Anchor: p, Head: p}
}

// Range selects from anchor to head.
func Range(anchor, head Pos) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// From returns the start of the selection in document order.
func (s Selection) From() Pos {
	if s.Anchor.Compare(s.Head) <= 0 {
		return s.Anchor
	}
	return s.Head
}

// To returns the end of the selection in document order.
func (s Selection) To() Pos {
	if s.Anchor.Compare(s.Head) <= 0 {
		return s.Head
	}
	return s.Anchor
}

// Empty reports whether the selection is a cursor.
func (s Selection) Empty() bool {
	return s.Anchor == s.Head
}

func (d Document) clampSelection(s Selection) Selection {
	return Selection{Anchor: d.clamp(s.Anchor), Head: d.clamp(s.Head)}
}
