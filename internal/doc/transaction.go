package doc

import "slices"

type historyMode int

const (
	historyRecord historyMode = iota
	historyUndo
	historyRedo
)

// Transaction accumulates changes against the state it was created from.
// Nothing is visible until the transaction is applied.
type Transaction struct {
	base       uint64
	doc        Document
	sel        Selection
	selSet     bool
	stored     MarkSet
	hasStored  bool
	storedSet  bool
	docChanged bool
	history    historyMode

	blocksOwned bool
	owned       map[int]bool
}

// Tr starts a transaction on s.
func (s State) Tr() *Transaction {
	return &Transaction{
		base:      s.seq,
		doc:       s.doc,
		sel:       s.sel,
		stored:    s.stored,
		hasStored: s.hasStored,
	}
}

// Doc returns the document as modified so far.
func (tr *Transaction) Doc() Document {
	return tr.doc
}

// Selection returns the selection as modified so far.
func (tr *Transaction) Selection() Selection {
	return tr.sel
}

// DocChanged reports whether the transaction modifies the document.
func (tr *Transaction) DocChanged() bool {
	return tr.docChanged
}

// SetSelection replaces the selection.
func (tr *Transaction) SetSelection(sel Selection) *Transaction {
	tr.sel = tr.doc.clampSelection(sel)
	tr.selSet = true
	return tr
}

// SetStoredMarks sets the marks applied to the next insertion.
func (tr *Transaction) SetStoredMarks(marks MarkSet) *Transaction {
	tr.stored, tr.hasStored, tr.storedSet = marks, true, true
	return tr
}

// AddMark adds mark to every rune between from and to.
func (tr *Transaction) AddMark(from, to Pos, mark MarkSet) *Transaction {
	tr.doc.eachSpan(from, to, func(i, start, end int) {
		if start >= end || allHave(tr.doc.blocks[i].Marks[start:end], mark) {
			return
		}
		b := tr.mutable(i)
		for j := start; j < end; j++ {
			b.Marks[j] = b.Marks[j].With(mark)
		}
	})
	return tr
}

// RemoveMark removes mark from every rune between from and to.
func (tr *Transaction) RemoveMark(from, to Pos, mark MarkSet) *Transaction {
	tr.doc.eachSpan(from, to, func(i, start, end int) {
		if start >= end || !anyHas(tr.doc.blocks[i].Marks[start:end], mark) {
			return
		}
		b := tr.mutable(i)
		for j := start; j < end; j++ {
			b.Marks[j] = b.Marks[j].Without(mark)
		}
	})
	return tr
}

// SetBlockType retypes every block touched by the range.
func (tr *Transaction) SetBlockType(from, to Pos, t NodeType, attrs Attrs) *Transaction {
	tr.doc.eachSpan(from, to, func(i, _, _ int) {
		if tr.doc.blocks[i].HasMarkup(t, attrs) {
			return
		}
		b := tr.mutable(i)
		b.Type = t
		b.Attrs = attrs.clone()
	})
	return tr
}

// DeleteRange removes the content between from and to, joining the
// boundary blocks. The selection collapses to from.
func (tr *Transaction) DeleteRange(from, to Pos) *Transaction {
	from, to = tr.doc.clamp(from), tr.doc.clamp(to)
	if to.Compare(from) < 0 {
		from, to = to, from
	}
	if from == to {
		return tr
	}
	first, last := tr.doc.blocks[from.Block], tr.doc.blocks[to.Block]
	merged := Block{
		Type:  first.Type,
		Attrs: first.Attrs.clone(),
		Text:  concat(first.Text[:from.Offset], last.Text[to.Offset:]),
		Marks: concat(first.Marks[:from.Offset], last.Marks[to.Offset:]),
	}
	tr.replaceBlocks(from.Block, to.Block+1, merged)
	return tr.SetSelection(Cursor(from))
}

// DeleteSelection removes the selected content, if any.
func (tr *Transaction) DeleteSelection() *Transaction {
	if tr.sel.Empty() {
		return tr
	}
	return tr.DeleteRange(tr.sel.From(), tr.sel.To())
}

// InsertText replaces the selection with text. The inserted runes take the
// stored marks when present, otherwise the marks at the cursor.
func (tr *Transaction) InsertText(text string) *Transaction {
	runes := []rune(text)
	if len(runes) == 0 {
		return tr
	}
	tr.DeleteSelection()
	at := tr.sel.Head
	marks := tr.doc.MarksAt(at)
	if tr.hasStored {
		marks = tr.stored
	}
	b := tr.mutable(at.Block)
	b.Text = slices.Insert(b.Text, at.Offset, runes...)
	inserted := make([]MarkSet, len(runes))
	for i := range inserted {
		inserted[i] = marks
	}
	b.Marks = slices.Insert(b.Marks, at.Offset, inserted...)
	tr.stored, tr.hasStored, tr.storedSet = 0, false, true
	return tr.SetSelection(Cursor(Pos{Block: at.Block, Offset: at.Offset + len(runes)}))
}

// Split splits the block at the cursor. Splitting at the end of a heading
// starts a paragraph.
func (tr *Transaction) Split() *Transaction {
	tr.DeleteSelection()
	at := tr.sel.Head
	b := tr.doc.blocks[at.Block]
	left := Block{Type: b.Type, Attrs: b.Attrs.clone(), Text: b.Text[:at.Offset], Marks: b.Marks[:at.Offset]}
	right := Block{Type: b.Type, Attrs: b.Attrs.clone(), Text: b.Text[at.Offset:], Marks: b.Marks[at.Offset:]}
	if b.Type == NodeHeading && at.Offset == b.Len() {
		right.Type, right.Attrs = NodeParagraph, nil
	}
	tr.replaceBlocks(at.Block, at.Block+1, left, right)
	return tr.SetSelection(Cursor(Pos{Block: at.Block + 1}))
}

// JoinBackward merges block i into the block before it.
func (tr *Transaction) JoinBackward(i int) *Transaction {
	if i <= 0 || i >= tr.doc.Len() {
		return tr
	}
	prev, cur := tr.doc.blocks[i-1], tr.doc.blocks[i]
	merged := Block{
		Type:  prev.Type,
		Attrs: prev.Attrs.clone(),
		Text:  concat(prev.Text, cur.Text),
		Marks: concat(prev.Marks, cur.Marks),
	}
	tr.replaceBlocks(i-1, i+1, merged)
	return tr.SetSelection(Cursor(Pos{Block: i - 1, Offset: prev.Len()}))
}

func (tr *Transaction) mutable(i int) *Block {
	if !tr.blocksOwned {
		tr.doc.blocks = slices.Clone(tr.doc.blocks)
		tr.blocksOwned = true
		tr.owned = make(map[int]bool)
	}
	if !tr.owned[i] {
		tr.doc.blocks[i] = tr.doc.blocks[i].clone()
		tr.owned[i] = true
	}
	tr.docChanged = true
	return &tr.doc.blocks[i]
}

// replaceBlocks swaps blocks[start:end] for repl. Every block of the
// resulting document is owned by the transaction afterwards.
func (tr *Transaction) replaceBlocks(start, end int, repl ...Block) {
	blocks := make([]Block, 0, len(tr.doc.blocks)-(end-start)+len(repl))
	blocks = append(blocks, tr.doc.blocks[:start]...)
	blocks = append(blocks, repl...)
	blocks = append(blocks, tr.doc.blocks[end:]...)
	tr.owned = make(map[int]bool, len(blocks))
	for i := range blocks {
		blocks[i] = blocks[i].clone()
		tr.owned[i] = true
	}
	tr.doc.blocks = blocks
	tr.blocksOwned = true
	tr.docChanged = true
}

func concat[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func allHave(marks []MarkSet, mark MarkSet) bool {
	for _, m := range marks {
		if !m.Has(mark) {
			return false
		}
	}
	return true
}

func anyHas(marks []MarkSet, mark MarkSet) bool {
	for _, m := range marks {
		if m.Has(mark) {
			return true
		}
	}
	return false
}
