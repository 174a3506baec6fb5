// Package backend writes the edited document back to disk off the UI
// goroutine.
package backend

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/editor-menubar/internal/doc"
	"github.com/atomicstack/editor-menubar/internal/logging/events"
)

// Event reports the outcome of one write.
type Event struct {
	Path  string
	Bytes int
	Err   error
}

// Saver writes queued document text to a file. Only the newest queued text
// is kept, and writes are spaced at least interval apart.
type Saver struct {
	path     string
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	pending chan string
	events  chan Event
	wg      sync.WaitGroup

	last string
}

// NewSaver starts a saver writing to path.
func NewSaver(path string, interval time.Duration) *Saver {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Saver{
		path:     path,
		throttle: newThrottle(interval),
		ctx:      ctx,
		cancel:   cancel,
		pending:  make(chan string, 1),
		events:   make(chan Event, 16),
	}
	s.wg.Add(1)
	go s.run()
	go func() {
		s.wg.Wait()
		close(s.events)
	}()
	return s
}

// Events returns write results. Results are dropped while the buffer is full.
func (s *Saver) Events() <-chan Event {
	return s.events
}

// Queue schedules text to be written, replacing any text still waiting.
// Queue must be called from a single goroutine.
func (s *Saver) Queue(text string) {
	if s.ctx.Err() != nil {
		return
	}
	for {
		select {
		case s.pending <- text:
			return
		default:
		}
		select {
		case <-s.pending:
		default:
		}
	}
}

// Observe queues the document of st when its text differs from the last
// observed one. It has the shape of a dispatcher subscription.
func (s *Saver) Observe(st doc.State) {
	text := st.Doc().Source() + "\n"
	if text == s.last {
		return
	}
	s.last = text
	s.Queue(text)
}

// Prime records text as already on disk so that observing it again does not
// trigger a write.
func (s *Saver) Prime(st doc.State) {
	s.last = st.Doc().Source() + "\n"
}

// Stop flushes any waiting text and stops the writer.
func (s *Saver) Stop() {
	s.cancel()
}

// Wait blocks until the writer has exited and the events channel is closed.
func (s *Saver) Wait() {
	s.wg.Wait()
}

func (s *Saver) run() {
	defer s.wg.Done()
	for {
		select {
		case <-s.ctx.Done():
			select {
			case text := <-s.pending:
				s.write(text)
			default:
			}
			return
		case text := <-s.pending:
			if !s.throttle.wait(s.ctx) {
				select {
				case newer := <-s.pending:
					text = newer
				default:
				}
				s.write(text)
				return
			}
			s.write(text)
		}
	}
}

func (s *Saver) write(text string) {
	evt := Event{Path: s.path, Bytes: len(text)}
	if err := os.WriteFile(s.path, []byte(text), 0o644); err != nil {
		evt.Err = fmt.Errorf("save %s: %w", s.path, err)
	}
	events.Save.Write(s.path, evt.Bytes, evt.Err)
	select {
	case s.events <- evt:
	default:
	}
}
