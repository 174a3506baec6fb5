package doc

import (
	"errors"
	"slices"
)

const historyDepth = 100

var (
	// ErrStaleTransaction is returned when a transaction built against one
	// state is applied to another.
	ErrStaleTransaction = errors.New("transaction was built against an outdated state")
	ErrNilTransaction   = errors.New("nil transaction")
)

type snapshot struct {
	doc Document
	sel Selection
}

// State is an immutable editor snapshot: the document, the selection, any
// stored marks for the next insertion, and the undo history.
type State struct {
	doc       Document
	sel       Selection
	stored    MarkSet
	hasStored bool
	seq       uint64
	done      []snapshot
	undone    []snapshot
}

// NewState creates a state with the cursor at the start of d.
func NewState(d Document) State {
	if d.Len() == 0 {
		d = NewDocument()
	}
	return State{doc: d, sel: Cursor(d.Start())}
}

// Doc returns the document.
func (s State) Doc() Document {
	return s.doc
}

// Selection returns the current selection.
func (s State) Selection() Selection {
	return s.sel
}

// StoredMarks returns the marks queued for the next insertion, if any.
func (s State) StoredMarks() (MarkSet, bool) {
	return s.stored, s.hasStored
}

// Seq increases by one with every applied transaction.
func (s State) Seq() uint64 {
	return s.seq
}

// CanUndo reports whether there is history to undo.
func (s State) CanUndo() bool {
	return len(s.done) > 0
}

// CanRedo reports whether there is undone history to replay.
func (s State) CanRedo() bool {
	return len(s.undone) > 0
}

// cursorMarks returns the marks an insertion at the cursor would receive.
func (s State) cursorMarks() MarkSet {
	if s.hasStored {
		return s.stored
	}
	return s.doc.MarksAt(s.sel.From())
}

// Apply produces the state that results from tr.
func (s State) Apply(tr *Transaction) (State, error) {
	if tr == nil {
		return s, ErrNilTransaction
	}
	if tr.base != s.seq {
		return s, ErrStaleTransaction
	}
	next := s
	next.seq = s.seq + 1
	next.doc = tr.doc
	next.sel = tr.doc.clampSelection(tr.sel)
	switch {
	case tr.storedSet:
		next.stored, next.hasStored = tr.stored, tr.hasStored
	case tr.docChanged || tr.selSet:
		next.stored, next.hasStored = 0, false
	}
	current := snapshot{doc: s.doc, sel: s.sel}
	switch tr.history {
	case historyRecord:
		if tr.docChanged {
			next.done = pushSnapshot(s.done, current)
			next.undone = nil
		}
	case historyUndo:
		next.done = slices.Clone(s.done[:len(s.done)-1])
		next.undone = pushSnapshot(s.undone, current)
	case historyRedo:
		next.undone = slices.Clone(s.undone[:len(s.undone)-1])
		next.done = pushSnapshot(s.done, current)
	}
	return next, nil
}

func pushSnapshot(stack []snapshot, snap snapshot) []snapshot {
	out := make([]snapshot, 0, len(stack)+1)
	out = append(out, stack...)
	out = append(out, snap)
	if len(out) > historyDepth {
		out = out[len(out)-historyDepth:]
	}
	return out
}
