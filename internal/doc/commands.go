package doc

// DispatchFunc receives a transaction to apply.
type DispatchFunc func(tr *Transaction)

// View is the editor surface a command runs against.
type View interface {
	State() State
	Dispatch(tr *Transaction)
}

// Command reports whether it applies to state. When dispatch is non-nil and
// the command applies, it builds a transaction and passes it to dispatch.
// Calling a command with a nil dispatch is a dry run.
type Command func(state State, dispatch DispatchFunc, view View) bool

// ToggleMark toggles mark over the selection, or in the stored marks when
// the selection is empty.
func ToggleMark(mark MarkSet) Command {
	return func(s State, dispatch DispatchFunc, _ View) bool {
		if mark == 0 {
			return false
		}
		if dispatch == nil {
			return true
		}
		sel := s.Selection()
		tr := s.Tr()
		if sel.Empty() {
			current := s.cursorMarks()
			if current.Has(mark) {
				tr.SetStoredMarks(current.Without(mark))
			} else {
				tr.SetStoredMarks(current.With(mark))
			}
		} else if s.Doc().RangeHasMark(sel.From(), sel.To(), mark) {
			tr.RemoveMark(sel.From(), sel.To(), mark)
		} else {
			tr.AddMark(sel.From(), sel.To(), mark)
		}
		dispatch(tr)
		return true
	}
}

// SetBlockType retypes the selected blocks. It applies only when at least
// one selected block does not already have that type and attrs.
func SetBlockType(t NodeType, attrs Attrs) Command {
	return func(s State, dispatch DispatchFunc, _ View) bool {
		sel := s.Selection()
		applicable := false
		for i := sel.From().Block; i <= sel.To().Block; i++ {
			if !s.Doc().Block(i).HasMarkup(t, attrs) {
				applicable = true
				break
			}
		}
		if !applicable {
			return false
		}
		if dispatch != nil {
			dispatch(s.Tr().SetBlockType(sel.From(), sel.To(), t, attrs))
		}
		return true
	}
}

// Undo restores the document before the last recorded change.
func Undo(s State, dispatch DispatchFunc, _ View) bool {
	if !s.CanUndo() {
		return false
	}
	if dispatch != nil {
		prev := s.done[len(s.done)-1]
		tr := s.Tr()
		tr.doc, tr.sel, tr.selSet = prev.doc, prev.sel, true
		tr.docChanged = true
		tr.history = historyUndo
		dispatch(tr)
	}
	return true
}

// Redo replays the last undone change.
func Redo(s State, dispatch DispatchFunc, _ View) bool {
	if !s.CanRedo() {
		return false
	}
	if dispatch != nil {
		next := s.undone[len(s.undone)-1]
		tr := s.Tr()
		tr.doc, tr.sel, tr.selSet = next.doc, next.sel, true
		tr.docChanged = true
		tr.history = historyRedo
		dispatch(tr)
	}
	return true
}

// InsertText replaces the selection with text.
func InsertText(text string) Command {
	return func(s State, dispatch DispatchFunc, _ View) bool {
		if text == "" {
			return false
		}
		if dispatch != nil {
			dispatch(s.Tr().InsertText(text))
		}
		return true
	}
}

// DeleteBackward deletes the selection, the rune before the cursor, or joins
// the cursor's block with the previous one.
func DeleteBackward(s State, dispatch DispatchFunc, _ View) bool {
	sel := s.Selection()
	head := sel.Head
	switch {
	case !sel.Empty():
		if dispatch != nil {
			dispatch(s.Tr().DeleteSelection())
		}
	case head.Offset > 0:
		if dispatch != nil {
			dispatch(s.Tr().DeleteRange(Pos{Block: head.Block, Offset: head.Offset - 1}, head))
		}
	case head.Block > 0:
		if dispatch != nil {
			dispatch(s.Tr().JoinBackward(head.Block))
		}
	default:
		return false
	}
	return true
}

// SplitBlock splits the current block at the cursor.
func SplitBlock(s State, dispatch DispatchFunc, _ View) bool {
	if dispatch != nil {
		dispatch(s.Tr().Split())
	}
	return true
}

// Direction of a cursor motion.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Move moves the selection head. With extend the anchor stays put.
func Move(dir Direction, extend bool) Command {
	return func(s State, dispatch DispatchFunc, _ View) bool {
		sel := s.Selection()
		head := step(s.Doc(), sel.Head, dir)
		var next Selection
		if extend {
			next = Range(sel.Anchor, head)
		} else {
			if !sel.Empty() && (dir == Left || dir == Right) {
				head = sel.From()
				if dir == Right {
					head = sel.To()
				}
			}
			next = Cursor(head)
		}
		if next == sel {
			return false
		}
		if dispatch != nil {
			dispatch(s.Tr().SetSelection(next))
		}
		return true
	}
}

func step(d Document, p Pos, dir Direction) Pos {
	switch dir {
	case Left:
		if p.Offset > 0 {
			return Pos{Block: p.Block, Offset: p.Offset - 1}
		}
		if p.Block > 0 {
			return Pos{Block: p.Block - 1, Offset: d.Block(p.Block - 1).Len()}
		}
	case Right:
		if p.Offset < d.Block(p.Block).Len() {
			return Pos{Block: p.Block, Offset: p.Offset + 1}
		}
		if p.Block < d.Len()-1 {
			return Pos{Block: p.Block + 1}
		}
	case Up:
		if p.Block > 0 {
			return d.clamp(Pos{Block: p.Block - 1, Offset: p.Offset})
		}
		return Pos{Block: p.Block}
	case Down:
		if p.Block < d.Len()-1 {
			return d.clamp(Pos{Block: p.Block + 1, Offset: p.Offset})
		}
		return Pos{Block: p.Block, Offset: d.Block(p.Block).Len()}
	}
	return p
}

// MarkActive reports whether mark is active at the selection: in the
// stored or cursor marks for an empty selection, anywhere in the range otherwise.
func MarkActive(s State, mark MarkSet) bool {
	sel := s.Selection()
	if sel.Empty() {
		return s.cursorMarks().Has(mark)
	}
	return s.Doc().RangeHasMark(sel.From(), sel.To(), mark)
}

// BlockTypeActive reports whether the block at the selection start has the
// given type and attrs.
func BlockTypeActive(s State, t NodeType, attrs Attrs) bool {
	return s.Doc().Block(s.Selection().From().Block).HasMarkup(t, attrs)
}
