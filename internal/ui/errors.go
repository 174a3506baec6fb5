package ui

import "github.com/atomicstack/editor-menubar/internal/menu"

// ErrorSink is a menu.Reporter that logs failures and keeps the latest one
// so the status line can show it.
type ErrorSink struct {
	menu.LogReporter
	last error
}

// Report logs err and remembers it.
func (s *ErrorSink) Report(err error) {
	s.LogReporter.Report(err)
	s.last = err
}

// Take returns the latest failure and forgets it.
func (s *ErrorSink) Take() error {
	err := s.last
	s.last = nil
	return err
}
