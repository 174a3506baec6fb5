package state

import "testing"

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	p := newTestPalette("one", "two", "three")
	p.Cursor = 2
	p.SetFilter("two", len("two"))

	if p.Filter != "two" || p.FilterCursor != 3 {
		t.Fatalf("unexpected filter state %q/%d", p.Filter, p.FilterCursor)
	}
	if len(p.Items) != 1 || p.Items[0].ID != "two" {
		t.Fatalf("expected only 'two', got %#v", p.Items)
	}
	if p.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", p.Cursor)
	}

	p.SetFilter("", 0)
	if p.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", p.Cursor)
	}
	if p.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", p.LastCursor)
	}
}

func TestInsertBackspaceAndDeleteWord(t *testing.T) {
	p := newTestPalette("alpha")

	if !p.Insert("ab") || p.Filter != "ab" || p.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", p.Filter, p.FilterCursor)
	}
	p.FilterCursor = 1
	p.Insert("z")
	if p.Filter != "azb" || p.FilterCursor != 2 {
		t.Fatalf("expected insert into middle, got %q/%d", p.Filter, p.FilterCursor)
	}
	if !p.Backspace() || p.Filter != "ab" || p.FilterCursor != 1 {
		t.Fatalf("unexpected state after backspace %q/%d", p.Filter, p.FilterCursor)
	}

	p.SetFilter("abc def", len("abc def"))
	if !p.DeleteWord() || p.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", p.Filter)
	}
	p.SetFilter("abc", 0)
	if p.Backspace() {
		t.Fatalf("expected backspace at start to fail")
	}
	if p.Insert("") {
		t.Fatalf("expected empty insert to fail")
	}
}

func TestMoveQueryCursor(t *testing.T) {
	p := newTestPalette("x")
	p.SetFilter("foo bar", len("foo bar"))

	steps := []struct {
		motion Motion
		want   int
		moved  bool
	}{
		{MotionWordBackward, 4, true},
		{MotionWordBackward, 0, true},
		{MotionRuneBackward, 0, false},
		{MotionWordForward, 4, true},
		{MotionRuneForward, 5, true},
		{MotionEnd, 7, true},
		{MotionRuneForward, 7, false},
		{MotionStart, 0, true},
	}
	for i, step := range steps {
		if moved := p.Move(step.motion); moved != step.moved {
			t.Fatalf("step %d: expected moved=%v, got %v", i, step.moved, moved)
		}
		if got := p.FilterCursorPos(); got != step.want {
			t.Fatalf("step %d: expected cursor %d, got %d", i, step.want, got)
		}
	}
}

func TestFilterItemsMatchesPathAndRanksDisabledLast(t *testing.T) {
	entries := []Entry{
		{ID: "block:callout:info", Label: "Info Callout", Path: []string{"Formats", "Callouts"}, Disabled: true},
		{ID: "block:callout:danger", Label: "Danger Callout", Path: []string{"Formats", "Callouts"}},
		{ID: "mark:strong", Label: "Bold"},
	}
	got := FilterItems(entries, "callout")
	if len(got) != 2 {
		t.Fatalf("expected two callouts, got %#v", got)
	}
	if got[0].ID != "block:callout:danger" {
		t.Fatalf("expected enabled entry first, got %s", got[0].ID)
	}
	if got := FilterItems(entries, "fmt callouts"); len(got) != 2 {
		t.Fatalf("expected path words to match, got %#v", got)
	}
	if got := FilterItems(entries, ""); len(got) != 3 {
		t.Fatalf("expected empty query to keep all entries, got %d", len(got))
	}
	if got := FilterItems(entries, "zzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %#v", got)
	}
}

func TestBestMatchIndexPrefersExactThenPrefix(t *testing.T) {
	entries := []Entry{
		{ID: "a", Label: "Header Large"},
		{ID: "b", Label: "Header Medium"},
		{ID: "c", Label: "Bold"},
	}
	if idx := BestMatchIndex(entries, "bold"); idx != 2 {
		t.Fatalf("expected exact match 2, got %d", idx)
	}
	if idx := BestMatchIndex(entries, "header m"); idx != 1 {
		t.Fatalf("expected prefix match 1, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "x"); idx != -1 {
		t.Fatalf("expected -1 for no entries, got %d", idx)
	}
}

func TestUpdateItemsKeepsCursorOnSameEntry(t *testing.T) {
	p := newTestPalette("a", "b", "c")
	p.Cursor = 1
	p.UpdateItems([]Entry{{ID: "z", Label: "z"}, {ID: "a", Label: "a"}, {ID: "b", Label: "b"}})
	if cur, _ := p.Current(); cur.ID != "b" {
		t.Fatalf("expected cursor to follow entry b, got %s", cur.ID)
	}
}
