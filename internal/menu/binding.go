package menu

import (
	"errors"
	"fmt"

	"github.com/atomicstack/editor-menubar/internal/doc"
	"github.com/atomicstack/editor-menubar/internal/logging"
	"github.com/atomicstack/editor-menubar/internal/logging/events"
)

// Predicate inspects a document state. Predicates run on every state
// transition and must be side-effect free.
type Predicate func(doc.State) bool

// Binding couples a command with the predicates that gate and decorate it.
// Enable and Select are independent: Enable only disables, Select hides.
type Binding struct {
	Run    doc.Command
	Enable Predicate
	Select Predicate
	Active Predicate
}

// Reporter receives failures that must not break the toolbar.
type Reporter interface {
	Report(err error)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(error)

func (f ReporterFunc) Report(err error) { f(err) }

// LogReporter writes failures to the shared log.
type LogReporter struct{}

func (LogReporter) Report(err error) {
	logging.Error(err)
	var perr *PredicateError
	if errors.As(err, &perr) {
		events.Menu.PredicateError(perr.Label, perr.Predicate, err)
		return
	}
	var rerr *RunError
	if errors.As(err, &rerr) {
		events.Command.Error(rerr.Label, err)
	}
}

// PredicateError records a predicate that panicked during an update pass.
type PredicateError struct {
	Label     string
	Predicate string
	Value     interface{}
}

func (e *PredicateError) Error() string {
	return fmt.Sprintf("menu item %q: %s predicate failed: %v", e.Label, e.Predicate, e.Value)
}

// RunError records a command that panicked when activated.
type RunError struct {
	Label string
	Value interface{}
}

func (e *RunError) Error() string {
	return fmt.Sprintf("menu item %q: command failed: %v", e.Label, e.Value)
}

// check evaluates p. A missing predicate yields fallback; a panicking one
// yields false and is reported.
func check(p Predicate, name, label string, s doc.State, fallback bool, rep Reporter) (ok bool) {
	if p == nil {
		return fallback
	}
	defer func() {
		if r := recover(); r != nil {
			ok = false
			report(rep, &PredicateError{Label: label, Predicate: name, Value: r})
		}
	}()
	return p(s)
}

func report(rep Reporter, err error) {
	if rep == nil {
		rep = LogReporter{}
	}
	rep.Report(err)
}

// selected reports whether the binding is mountable in s.
func (b Binding) selected(s doc.State, label string, rep Reporter) bool {
	return check(b.Select, "select", label, s, true, rep)
}

// enabled reports whether the binding may run in s.
func (b Binding) enabled(s doc.State, label string, rep Reporter) bool {
	return check(b.Enable, "enable", label, s, true, rep)
}

// active reports whether the binding renders as pressed in s.
func (b Binding) active(s doc.State, label string, rep Reporter) bool {
	return check(b.Active, "active", label, s, false, rep)
}

// Applicable reports whether the binding may run against s.
func (b Binding) Applicable(s doc.State, label string, rep Reporter) bool {
	return b.selected(s, label, rep) && b.enabled(s, label, rep)
}

// Invoke runs the command against the view's current state. It re-checks
// Select and Enable at call time, so a stale activation is a no-op, and it
// never lets a failing command escape.
func (b Binding) Invoke(v doc.View, label string, rep Reporter) (ran bool) {
	if b.Run == nil || v == nil {
		events.Command.Skip(label, "unbound")
		return false
	}
	s := v.State()
	if !b.selected(s, label, rep) {
		events.Command.Skip(label, "not selected")
		return false
	}
	if !b.enabled(s, label, rep) {
		events.Command.Skip(label, "disabled")
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			ran = false
			report(rep, &RunError{Label: label, Value: r})
		}
	}()
	events.Command.Run(label)
	if !b.Run(s, v.Dispatch, v) {
		events.Command.NoOp(label)
		return false
	}
	return true
}
