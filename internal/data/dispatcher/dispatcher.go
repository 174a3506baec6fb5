package dispatcher

import (
	"fmt"

	"github.com/atomicstack/editor-menubar/internal/doc"
	"github.com/atomicstack/editor-menubar/internal/logging"
	"github.com/atomicstack/editor-menubar/internal/logging/events"
)

type subscription struct {
	id int
	fn func(doc.State)
}

// Dispatcher owns the live document state. It applies transactions and
// notifies listeners synchronously. A transaction dispatched from inside a
// listener is queued and applied once the current notification pass ends.
type Dispatcher struct {
	state       doc.State
	listeners   []subscription
	nextID      int
	queue       []*doc.Transaction
	dispatching bool
	applied     int
}

// New creates a dispatcher holding the initial state.
func New(initial doc.State) *Dispatcher {
	return &Dispatcher{state: initial}
}

// State returns the current document state.
func (d *Dispatcher) State() doc.State {
	return d.state
}

// Applied returns the number of transactions applied so far.
func (d *Dispatcher) Applied() int {
	return d.applied
}

// Subscribe registers fn to be called once per applied transaction and
// returns a function that removes it again.
func (d *Dispatcher) Subscribe(fn func(doc.State)) func() {
	d.nextID++
	id := d.nextID
	d.listeners = append(d.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range d.listeners {
			if sub.id == id {
				d.listeners = append(d.listeners[:i:i], d.listeners[i+1:]...)
				return
			}
		}
	}
}

// Listeners returns the number of active subscriptions.
func (d *Dispatcher) Listeners() int {
	return len(d.listeners)
}

// Dispatch applies tr and notifies every listener with the new state.
func (d *Dispatcher) Dispatch(tr *doc.Transaction) {
	d.queue = append(d.queue, tr)
	if d.dispatching {
		return
	}
	d.dispatching = true
	defer func() { d.dispatching = false }()
	for len(d.queue) > 0 {
		next := d.queue[0]
		d.queue = d.queue[1:]
		d.apply(next)
	}
}

func (d *Dispatcher) apply(tr *doc.Transaction) {
	next, err := d.state.Apply(tr)
	if err != nil {
		logging.Error(fmt.Errorf("dispatch: %w", err))
		events.Editor.Rejected(d.state.Seq(), err)
		return
	}
	d.state = next
	d.applied++
	events.Editor.Dispatch(next.Seq(), tr.DocChanged())
	listeners := append([]subscription(nil), d.listeners...)
	for _, sub := range listeners {
		sub.fn(next)
	}
}
