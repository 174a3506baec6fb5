package events

import "github.com/atomicstack/editor-menubar/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(applied int) {
	logging.Trace("app.stop", map[string]interface{}{"transactions": applied})
}

type SaveTracer struct{}

var Save = SaveTracer{}

func (SaveTracer) Write(path string, bytes int, err error) {
	payload := map[string]interface{}{"path": path, "bytes": bytes}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("save.write", payload)
}
