package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/editor-menubar/internal/backend"
	"github.com/atomicstack/editor-menubar/internal/data/dispatcher"
	"github.com/atomicstack/editor-menubar/internal/logging/events"
	"github.com/atomicstack/editor-menubar/internal/menu"
	"github.com/atomicstack/editor-menubar/internal/theme"
	"github.com/atomicstack/editor-menubar/internal/ui/command"
	uistate "github.com/atomicstack/editor-menubar/internal/ui/state"
)

// Mode selects which surface receives key presses.
type Mode int

const (
	ModeEditor Mode = iota
	ModeToolbar
	ModePalette
)

func (m Mode) String() string {
	switch m {
	case ModeToolbar:
		return "toolbar"
	case ModePalette:
		return "palette"
	default:
		return "editor"
	}
}

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the UI model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool

	// Errors, when set, surfaces toolbar failures on the status line.
	Errors *ErrorSink

	// Saver, when set, receives explicit saves and reports write results.
	Saver *backend.Saver
}

// Model implements the Bubble Tea model for the editor and its toolbar.
type Model struct {
	host *dispatcher.Dispatcher
	bar  *menu.Bar
	bus  *command.Bus
	keys keyMap
	help help.Model

	sink  *ErrorSink
	saver *backend.Saver

	mode    Mode
	focus   int
	palette *uistate.Palette

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the UI over a dispatcher and the toolbar attached to it.
func NewModel(host *dispatcher.Dispatcher, bar *menu.Bar, opts Options) *Model {
	m := &Model{
		host:       host,
		bar:        bar,
		keys:       defaultKeyMap(),
		help:       help.New(),
		mode:       ModeEditor,
		showFooter: opts.ShowFooter,
		sink:       opts.Errors,
		saver:      opts.Saver,
	}
	m.bus = command.New(bar.Registry(), host.Applied)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.filterCursor.Focus(), m.waitForSave())
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if m.mode == ModePalette {
		if cmd := m.updateFilterCursorModel(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if m.sink != nil {
		if err := m.sink.Take(); err != nil {
			m.errMsg = err.Error()
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.ResultMsg{}): m.handleResultMsg,
		reflect.TypeOf(backend.Event{}):     m.handleSaveEvent,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.Editor.Key(m.mode.String(), keyMsg.String())
	switch m.mode {
	case ModeToolbar:
		return m.handleToolbarKey(keyMsg)
	case ModePalette:
		return m.handlePaletteKey(keyMsg)
	default:
		return m.handleEditorKey(keyMsg)
	}
}

func (m *Model) setMode(mode Mode) {
	if m.mode == mode {
		return
	}
	m.mode = mode
	events.UI.Focus(mode.String())
}

// Mode returns the surface that currently receives key presses.
func (m *Model) Mode() Mode {
	return m.mode
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if m.palette != nil {
		m.palette.EnsureCursorVisible(m.maxPaletteRows())
	}
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}
