package state

import (
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Motion moves the query cursor.
type Motion int

const (
	MotionRuneBackward Motion = iota
	MotionRuneForward
	MotionWordBackward
	MotionWordForward
	MotionStart
	MotionEnd
)

// SetFilter updates the query and its cursor. Starting a query remembers the
// list cursor; clearing it restores that position.
func (p *Palette) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(p.Filter)
	p.Filter = query
	p.FilterCursor = clampInt(cursor, 0, len([]rune(query)))
	if trimmed != "" && prevTrimmed == "" {
		p.LastCursor = p.Cursor
	}
	p.applyFilter()
	switch {
	case trimmed != "":
		p.Cursor = BestMatchIndex(p.Items, trimmed)
		if p.Cursor < 0 {
			p.Cursor = 0
		}
	case prevTrimmed != "":
		if p.LastCursor >= 0 && p.LastCursor < len(p.Items) {
			p.Cursor = p.LastCursor
		} else {
			p.Cursor = 0
		}
		p.LastCursor = -1
	}
}

func (p *Palette) applyFilter() {
	p.Items = FilterItems(p.Full, p.Filter)
	if len(p.Items) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	p.Cursor = clampInt(p.Cursor, 0, len(p.Items)-1)
	if p.ViewportOffset > len(p.Items)-1 {
		p.ViewportOffset = 0
	}
}

// FilterCursorPos returns the rune offset of the query cursor.
func (p *Palette) FilterCursorPos() int {
	return clampInt(p.FilterCursor, 0, len([]rune(p.Filter)))
}

// Insert types text at the query cursor.
func (p *Palette) Insert(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(p.Filter)
	pos := p.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	p.SetFilter(string(updated), pos+len(insert))
	return true
}

// Backspace deletes the rune before the query cursor.
func (p *Palette) Backspace() bool {
	runes := []rune(p.Filter)
	pos := p.FilterCursorPos()
	if pos == 0 {
		return false
	}
	p.SetFilter(string(runes[:pos-1])+string(runes[pos:]), pos-1)
	return true
}

// DeleteWord deletes the word before the query cursor.
func (p *Palette) DeleteWord() bool {
	runes := []rune(p.Filter)
	pos := p.FilterCursorPos()
	if pos == 0 {
		return false
	}
	start := wordBackward(runes, pos)
	p.SetFilter(string(runes[:start])+string(runes[pos:]), start)
	return true
}

// Move moves the query cursor and reports whether it changed.
func (p *Palette) Move(m Motion) bool {
	runes := []rune(p.Filter)
	pos := p.FilterCursorPos()
	next := pos
	switch m {
	case MotionRuneBackward:
		next = pos - 1
	case MotionRuneForward:
		next = pos + 1
	case MotionWordBackward:
		next = wordBackward(runes, pos)
	case MotionWordForward:
		next = wordForward(runes, pos)
	case MotionStart:
		next = 0
	case MotionEnd:
		next = len(runes)
	}
	next = clampInt(next, 0, len(runes))
	if next == pos {
		return false
	}
	p.FilterCursor = next
	return true
}

func wordBackward(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

func wordForward(runes []rune, pos int) int {
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i
}

// FilterItems returns the entries matching query. Fuzzy matches are ordered
// by match distance with disabled entries last; when nothing matches fuzzily
// a plain substring match on label and id is used.
func FilterItems(entries []Entry, query string) []Entry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return cloneEntries(entries)
	}
	targets := make([]string, len(entries))
	for i, e := range entries {
		targets[i] = e.searchText()
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, targets)
	if len(ranks) > 0 {
		sort.SliceStable(ranks, func(i, j int) bool {
			a, b := entries[ranks[i].OriginalIndex], entries[ranks[j].OriginalIndex]
			if a.Disabled != b.Disabled {
				return !a.Disabled
			}
			if ranks[i].Distance != ranks[j].Distance {
				return ranks[i].Distance < ranks[j].Distance
			}
			return ranks[i].OriginalIndex < ranks[j].OriginalIndex
		})
		out := make([]Entry, 0, len(ranks))
		for _, r := range ranks {
			out = append(out, entries[r.OriginalIndex])
		}
		return out
	}
	lower := strings.ToLower(trimmed)
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Label), lower) || strings.Contains(strings.ToLower(e.ID), lower) {
			out = append(out, e)
		}
	}
	return out
}

// BestMatchIndex picks the entry the cursor should land on for query: an
// exact label or id match, then the first label prefix match, then the first
// enabled entry.
func BestMatchIndex(entries []Entry, query string) int {
	if len(entries) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, e := range entries {
		if strings.EqualFold(e.Label, trimmed) || strings.EqualFold(e.ID, trimmed) {
			return i
		}
	}
	for i, e := range entries {
		if !e.Disabled && strings.HasPrefix(strings.ToLower(e.Label), lower) {
			return i
		}
	}
	for i, e := range entries {
		if !e.Disabled {
			return i
		}
	}
	return 0
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
