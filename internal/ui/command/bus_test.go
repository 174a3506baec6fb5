package command

import "testing"

type fakeTarget struct {
	applied int
	calls   []string
	known   map[string]bool
	applies map[string]bool
}

func (f *fakeTarget) Activate(id string) bool {
	f.calls = append(f.calls, id)
	if !f.known[id] {
		return false
	}
	if f.applies[id] {
		f.applied++
	}
	return true
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{
		known:   map[string]bool{"mark:strong": true, "undo": true},
		applies: map[string]bool{"mark:strong": true},
	}
}

func TestExecuteActivatesBeforeReturning(t *testing.T) {
	target := newFakeTarget()
	bus := New(target, func() int { return target.applied })

	cmd := bus.Execute(Request{ID: "mark:strong", Label: "Bold", Source: SourceShortcut})
	if len(target.calls) != 1 {
		t.Fatalf("expected activation before the command runs, got %v", target.calls)
	}
	if cmd == nil {
		t.Fatalf("expected result command")
	}
	result, ok := cmd().(ResultMsg)
	if !ok {
		t.Fatalf("expected ResultMsg")
	}
	if !result.Ran || result.Applied != 1 {
		t.Fatalf("expected ran with one transaction, got %+v", result)
	}
	if result.Request.Source != SourceShortcut || result.Request.Label != "Bold" {
		t.Fatalf("expected request to be echoed, got %+v", result.Request)
	}
	if len(target.calls) != 1 {
		t.Fatalf("expected running the command not to activate again, got %v", target.calls)
	}
}

func TestExecuteReportsInertActivation(t *testing.T) {
	target := newFakeTarget()
	bus := New(target, func() int { return target.applied })

	result := bus.Execute(Request{ID: "undo", Source: SourcePalette})().(ResultMsg)
	if !result.Ran || result.Applied != 0 {
		t.Fatalf("expected a run that dispatched nothing, got %+v", result)
	}

	result = bus.Execute(Request{ID: "missing", Source: SourceToolbar})().(ResultMsg)
	if result.Ran {
		t.Fatalf("expected unknown id not to run, got %+v", result)
	}
}

func TestExecuteWithoutTargetOrID(t *testing.T) {
	if cmd := New(nil, nil).Execute(Request{ID: "undo"}); cmd != nil {
		t.Fatalf("expected nil command without target")
	}
	target := newFakeTarget()
	if cmd := New(target, nil).Execute(Request{}); cmd != nil {
		t.Fatalf("expected nil command without id")
	}
	if len(target.calls) != 0 {
		t.Fatalf("expected no activation, got %v", target.calls)
	}
	var bus *Bus
	if cmd := bus.Execute(Request{ID: "undo"}); cmd != nil {
		t.Fatalf("expected nil command from nil bus")
	}
}

func TestExecuteWithoutCounterReportsZeroApplied(t *testing.T) {
	target := newFakeTarget()
	result := New(target, nil).Execute(Request{ID: "mark:strong"})().(ResultMsg)
	if !result.Ran || result.Applied != 0 {
		t.Fatalf("expected ran with unknown applied count, got %+v", result)
	}
}
