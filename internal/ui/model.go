package ui

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/atomicstack/gridmenu/internal/backend"
	"github.com/atomicstack/gridmenu/internal/catalog"
	"github.com/atomicstack/gridmenu/internal/data/dispatcher"
	"github.com/atomicstack/gridmenu/internal/host"
	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/atomicstack/gridmenu/internal/theme"
	"github.com/atomicstack/gridmenu/internal/ui/command"
	uistate "github.com/atomicstack/gridmenu/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options wires a model to its runtime.
type Options struct {
	Terminal *Terminal
	Runtime  *menu.Runtime
	Catalog  *catalog.Catalog
	Events   <-chan backend.Event
	Viewers  []string
	RootMenu string
	Width    int
	Height   int
	Verbose  bool
}

// Model implements the Bubble Tea model for the grid menu host.
type Model struct {
	term     *Terminal
	rt       *menu.Runtime
	pipeline *dispatcher.Pipeline
	catalog  *catalog.Catalog
	events   <-chan backend.Event

	viewers []host.Viewer
	active  int
	cursors map[uuid.UUID]*uistate.Cursor
	root    *menu.Menu

	keys      keyMap
	help      help.Model
	search    textinput.Model
	searching bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	verbose     bool
	errMsg      string
	infoMsg     string

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the model and opens the root menu for every viewer.
func NewModel(opts Options) (*Model, error) {
	if opts.Terminal == nil || opts.Runtime == nil || opts.Catalog == nil {
		return nil, errors.New("ui: terminal, runtime and catalog are required")
	}
	if len(opts.Viewers) == 0 {
		return nil, errors.New("ui: at least one viewer is required")
	}
	registry := opts.Catalog.Registry()
	root, ok := registry.Root()
	if opts.RootMenu != "" {
		root, ok = registry.Find(opts.RootMenu)
	}
	if !ok {
		return nil, fmt.Errorf("ui: root menu %q: %w", opts.RootMenu, menu.ErrUnknownMenu)
	}

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search this menu"
	search.PromptStyle = *styles.FilterPrompt
	search.Cursor.SetMode(cursor.CursorStatic)

	m := &Model{
		term:     opts.Terminal,
		rt:       opts.Runtime,
		pipeline: dispatcher.New(opts.Runtime, command.New()),
		catalog:  opts.Catalog,
		events:   opts.Events,
		cursors:  make(map[uuid.UUID]*uistate.Cursor),
		root:     root,
		keys:     defaultKeyMap(),
		help:     help.New(),
		search:   search,
		verbose:  opts.Verbose,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	for _, name := range opts.Viewers {
		v := host.NewViewer(name)
		m.viewers = append(m.viewers, v)
		m.cursors[v.ID] = uistate.NewCursor(0)
		if err := root.Open(v); err != nil {
			return nil, fmt.Errorf("ui: open %s for %s: %w", root.ID(), v, err)
		}
	}
	m.registerHandlers()
	return m, nil
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return waitForBackendEvent(m.events)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(surfaceClosedMsg{}):  m.handleSurfaceClosedMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
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

// finishUpdate turns close events queued on the terminal during this update
// into one follow-up message, so they are processed after the handler that
// caused them has returned.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if pending := m.term.drain(); len(pending) > 0 {
		cmds = append(cmds, func() tea.Msg { return surfaceClosedMsg{events: pending} })
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

type surfaceClosedMsg struct {
	events []host.CloseEvent
}

func (m *Model) handleSurfaceClosedMsg(msg tea.Msg) tea.Cmd {
	closed, ok := msg.(surfaceClosedMsg)
	if !ok {
		return nil
	}
	for _, evt := range closed.events {
		m.term.detach(evt)
		m.pipeline.HandleClose(evt)
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.help.Width = m.width
	return nil
}

// Viewer returns the viewer whose surface is shown.
func (m *Model) Viewer() host.Viewer {
	return m.viewers[m.active]
}

// Viewers lists every local viewer in tab order.
func (m *Model) Viewers() []host.Viewer {
	return append([]host.Viewer(nil), m.viewers...)
}

// Session returns the session behind the viewer's open surface.
func (m *Model) Session(viewer host.Viewer) (*menu.Session, bool) {
	surface := m.term.Surface(viewer)
	if surface == nil {
		return nil, false
	}
	return m.rt.Lookup(surface.ID())
}

// Cursor returns the active viewer's cursor sized to the open surface.
func (m *Model) Cursor() *uistate.Cursor {
	v := m.Viewer()
	c := m.cursors[v.ID]
	size := 0
	if surface := m.term.Surface(v); surface != nil {
		size = surface.Size()
	}
	c.Resize(size)
	return c
}

func (m *Model) switchViewer(delta int) {
	n := len(m.viewers)
	m.active = ((m.active+delta)%n + n) % n
	m.errMsg = ""
	m.infoMsg = ""
}
