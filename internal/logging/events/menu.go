package events

import "github.com/atomicstack/editor-menubar/internal/logging"

type MenuTracer struct{}

type DropdownTracer struct{}

type CommandTracer struct{}

var (
	Menu     = MenuTracer{}
	Dropdown = DropdownTracer{}
	Command  = CommandTracer{}
)

func (MenuTracer) Build(groups, elements int, floating bool) {
	logging.Trace("menu.build", map[string]interface{}{
		"groups":   groups,
		"elements": elements,
		"floating": floating,
	})
}

func (MenuTracer) Update(seq uint64, visible bool) {
	logging.Trace("menu.update", map[string]interface{}{"seq": seq, "visible": visible})
}

func (MenuTracer) PredicateError(label, predicate string, err error) {
	logging.Trace("menu.predicate.error", map[string]interface{}{
		"label":     label,
		"predicate": predicate,
		"error":     err.Error(),
	})
}

func (MenuTracer) Destroy() {
	logging.Trace("menu.destroy", nil)
}

func (DropdownTracer) Open(label string, inline bool) {
	logging.Trace("dropdown.open", map[string]interface{}{"label": label, "inline": inline})
}

func (DropdownTracer) Close(label string, inline bool) {
	logging.Trace("dropdown.close", map[string]interface{}{"label": label, "inline": inline})
}

func (CommandTracer) Run(label string) {
	logging.Trace("command.run", map[string]interface{}{"label": label})
}

func (CommandTracer) Skip(label, reason string) {
	logging.Trace("command.skip", map[string]interface{}{"label": label, "reason": reason})
}

func (CommandTracer) NoOp(label string) {
	logging.Trace("command.noop", map[string]interface{}{"label": label})
}

func (CommandTracer) Error(label string, err error) {
	if err == nil {
		return
	}
	logging.Trace("command.error", map[string]interface{}{"label": label, "error": err.Error()})
}

func (CommandTracer) Queue(source, id string) {
	logging.Trace("command.queue", map[string]interface{}{"source": source, "id": id})
}

func (CommandTracer) Result(id string, ran bool) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "ran": ran})
}
