package state

import "strings"

// Entry is one command listed in the palette.
type Entry struct {
	ID       string
	Label    string
	Path     []string
	Shortcut string
	Disabled bool
	Active   bool
}

// Detail joins the entry's container labels for display.
func (e Entry) Detail() string {
	return strings.Join(e.Path, " › ")
}

func (e Entry) searchText() string {
	if len(e.Path) == 0 {
		return e.Label
	}
	return strings.Join(e.Path, " ") + " " + e.Label
}

// Palette holds the command palette state: the entries, the filter query and
// the cursor and viewport over the filtered list.
type Palette struct {
	Items          []Entry
	Full           []Entry
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewPalette constructs a palette over the provided entries.
func NewPalette(entries []Entry) *Palette {
	p := &Palette{LastCursor: -1}
	p.UpdateItems(entries)
	return p
}

// IndexOf returns the index of the entry with the given id in the filtered list.
func (p *Palette) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range p.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the entry under the cursor.
func (p *Palette) Current() (Entry, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return Entry{}, false
	}
	return p.Items[p.Cursor], true
}

// UpdateItems replaces the entries, keeping the filter and, where possible,
// the entry under the cursor.
func (p *Palette) UpdateItems(entries []Entry) {
	prevOffset := p.ViewportOffset
	var keep string
	if cur, ok := p.Current(); ok {
		keep = cur.ID
	}
	p.Full = cloneEntries(entries)
	p.applyFilter()
	if idx := p.IndexOf(keep); idx >= 0 {
		p.Cursor = idx
	}
	if len(p.Items) == 0 {
		p.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > len(p.Items)-1 {
		p.ViewportOffset = 0
		return
	}
	p.ViewportOffset = prevOffset
}

func cloneEntries(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
