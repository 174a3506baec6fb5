package state

// MoveCursor moves the list cursor by delta, wrapping around the ends.
func (p *Palette) MoveCursor(delta int) bool {
	n := len(p.Items)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = ((p.Cursor+delta)%n + n) % n
	return p.Cursor != old
}

// MoveCursorHome moves the cursor to the first entry.
func (p *Palette) MoveCursorHome() bool {
	return p.moveCursorTo(0)
}

// MoveCursorEnd moves the cursor to the last entry.
func (p *Palette) MoveCursorEnd() bool {
	return p.moveCursorTo(len(p.Items) - 1)
}

// MoveCursorPageUp moves the cursor up by one page without wrapping.
func (p *Palette) MoveCursorPageUp(maxVisible int) bool {
	return p.moveCursorTo(p.Cursor - p.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by one page without wrapping.
func (p *Palette) MoveCursorPageDown(maxVisible int) bool {
	return p.moveCursorTo(p.Cursor + p.pageSize(maxVisible))
}

func (p *Palette) moveCursorTo(idx int) bool {
	if len(p.Items) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = clampInt(idx, 0, len(p.Items)-1)
	return p.Cursor != old
}

func (p *Palette) pageSize(maxVisible int) int {
	if maxVisible <= 0 || maxVisible > len(p.Items) {
		maxVisible = len(p.Items)
	}
	if maxVisible < 1 {
		return 1
	}
	return maxVisible
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays inside
// a window of maxVisible rows.
func (p *Palette) EnsureCursorVisible(maxVisible int) {
	if len(p.Items) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	p.Cursor = clampInt(p.Cursor, 0, len(p.Items)-1)
	if maxVisible <= 0 {
		p.ViewportOffset = 0
		return
	}
	maxOffset := len(p.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	p.ViewportOffset = clampInt(p.ViewportOffset, 0, maxOffset)
	if p.Cursor < p.ViewportOffset {
		p.ViewportOffset = p.Cursor
	}
	if p.Cursor > p.ViewportOffset+maxVisible-1 {
		p.ViewportOffset = clampInt(p.Cursor-maxVisible+1, 0, maxOffset)
	}
}

// Visible returns the entries inside the viewport and the index of the first.
func (p *Palette) Visible(maxVisible int) ([]Entry, int) {
	p.EnsureCursorVisible(maxVisible)
	if maxVisible <= 0 || len(p.Items) <= maxVisible {
		return p.Items, 0
	}
	start := p.ViewportOffset
	return p.Items[start : start+maxVisible], start
}
