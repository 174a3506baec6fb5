package events

import "github.com/atomicstack/editor-menubar/internal/logging"

type EditorTracer struct{}

var Editor = EditorTracer{}

func (EditorTracer) Dispatch(seq uint64, docChanged bool) {
	logging.Trace("editor.dispatch", map[string]interface{}{"seq": seq, "docChanged": docChanged})
}

func (EditorTracer) Rejected(seq uint64, err error) {
	logging.Trace("editor.rejected", map[string]interface{}{"seq": seq, "error": err.Error()})
}

func (EditorTracer) Key(mode, key string) {
	logging.Trace("editor.key", map[string]interface{}{"mode": mode, "key": key})
}
