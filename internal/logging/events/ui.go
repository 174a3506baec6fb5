package events

import "github.com/atomicstack/editor-menubar/internal/logging"

type UITracer struct{}

type PaletteTracer struct{}

var (
	UI      = UITracer{}
	Palette = PaletteTracer{}
)

func (UITracer) Focus(mode string) {
	logging.Trace("ui.focus", map[string]interface{}{"mode": mode})
}

func (UITracer) ToolbarCursor(index int, label string) {
	logging.Trace("ui.toolbar.cursor", map[string]interface{}{"index": index, "label": label})
}

func (UITracer) Shortcut(key, id string) {
	logging.Trace("ui.shortcut", map[string]interface{}{"key": key, "id": id})
}

func (PaletteTracer) Open(entries int) {
	logging.Trace("palette.open", map[string]interface{}{"entries": entries})
}

func (PaletteTracer) Filter(query string, matches int) {
	logging.Trace("palette.filter", map[string]interface{}{"query": query, "matches": matches})
}

func (PaletteTracer) Choose(id, label string) {
	logging.Trace("palette.choose", map[string]interface{}{"id": id, "label": label})
}
