package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/gridmenu/internal/host"
	"github.com/atomicstack/gridmenu/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// outsideSlot is the slot reported for clicks beside the grid.
const outsideSlot = -1

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Home        key.Binding
	End         key.Binding
	Click       key.Binding
	ShiftClick  key.Binding
	RightClick  key.Binding
	ShiftRight  key.Binding
	Middle      key.Binding
	Double      key.Binding
	Number      key.Binding
	Drop        key.Binding
	ControlDrop key.Binding
	Offhand     key.Binding
	Close       key.Binding
	Reopen      key.Binding
	Search      key.Binding
	NextViewer  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Home:        key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first slot")),
		End:         key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last slot")),
		Click:       key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "left click")),
		ShiftClick:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "shift-left")),
		RightClick:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "right click")),
		ShiftRight:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "shift-right")),
		Middle:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "middle")),
		Double:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "double click")),
		Number:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "hotbar")),
		Drop:        key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "drop")),
		ControlDrop: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "drop stack")),
		Offhand:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "offhand")),
		Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Reopen:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open root")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		NextViewer:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next viewer")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.RightClick, k.Close, k.Search, k.NextViewer, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Home, k.End},
		{k.Click, k.ShiftClick, k.RightClick, k.ShiftRight, k.Middle, k.Double},
		{k.Number, k.Drop, k.ControlDrop, k.Offhand},
		{k.Close, k.Reopen, k.Search, k.NextViewer, k.Help, k.Quit},
	}
}

// gestureFor maps a gesture key to its click kind.
func (k keyMap) gestureFor(msg tea.KeyMsg) (host.Gesture, bool) {
	switch {
	case key.Matches(msg, k.Click):
		return host.GestureLeft, true
	case key.Matches(msg, k.ShiftClick):
		return host.GestureShiftLeft, true
	case key.Matches(msg, k.RightClick):
		return host.GestureRight, true
	case key.Matches(msg, k.ShiftRight):
		return host.GestureShiftRight, true
	case key.Matches(msg, k.Middle):
		return host.GestureMiddle, true
	case key.Matches(msg, k.Double):
		return host.GestureDoubleClick, true
	case key.Matches(msg, k.Number):
		return host.GestureNumberKey, true
	case key.Matches(msg, k.Drop):
		return host.GestureDrop, true
	case key.Matches(msg, k.ControlDrop):
		return host.GestureControlDrop, true
	case key.Matches(msg, k.Offhand):
		return host.GestureSwapOffhand, true
	}
	return host.GestureUnknown, false
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.UI.Key(m.Viewer().String(), keyMsg.String())
	if m.searching {
		return m.handleSearchKey(keyMsg)
	}
	if g, ok := m.keys.gestureFor(keyMsg); ok {
		m.click(m.Cursor().Slot, g)
		return nil
	}
	c := m.Cursor()
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		c.Move(0, -1)
	case key.Matches(keyMsg, m.keys.Down):
		c.Move(0, 1)
	case key.Matches(keyMsg, m.keys.Left):
		c.Move(-1, 0)
	case key.Matches(keyMsg, m.keys.Right):
		c.Move(1, 0)
	case key.Matches(keyMsg, m.keys.Home):
		c.Home()
	case key.Matches(keyMsg, m.keys.End):
		c.End()
	case key.Matches(keyMsg, m.keys.Close):
		m.term.RequestClose(m.Viewer())
	case key.Matches(keyMsg, m.keys.Reopen):
		m.reopenRoot()
	case key.Matches(keyMsg, m.keys.Search):
		m.startSearch()
	case key.Matches(keyMsg, m.keys.NextViewer):
		m.switchViewer(1)
		events.UI.SwitchViewer(m.Viewer().String())
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || mouse.Action != tea.MouseActionPress || m.searching {
		return nil
	}
	var g host.Gesture
	switch mouse.Button {
	case tea.MouseButtonLeft:
		g = host.GestureLeft
		if mouse.Shift {
			g = host.GestureShiftLeft
		}
	case tea.MouseButtonRight:
		g = host.GestureRight
		if mouse.Shift {
			g = host.GestureShiftRight
		}
	case tea.MouseButtonMiddle:
		g = host.GestureMiddle
	default:
		return nil
	}
	slot, inside := m.slotAt(mouse.X, mouse.Y)
	if !inside {
		slot = outsideSlot
		switch g {
		case host.GestureLeft, host.GestureShiftLeft:
			g = host.GestureBorderLeft
		case host.GestureRight, host.GestureShiftRight:
			g = host.GestureBorderRight
		default:
			return nil
		}
	} else {
		m.Cursor().Set(slot)
	}
	events.UI.Mouse(m.Viewer().String(), slot, g.String())
	m.click(slot, g)
	return nil
}

// click sends a raw click for the active viewer through the pipeline.
func (m *Model) click(slot int, g host.Gesture) {
	viewer := m.Viewer()
	surface := m.term.Surface(viewer)
	if surface == nil {
		m.infoMsg = fmt.Sprintf("No menu open. Press o to open %s.", m.root.Title())
		return
	}
	m.errMsg = ""
	raw := &host.ClickEvent{Surface: surface, Viewer: viewer, Slot: slot, Gesture: g}
	if err := m.pipeline.HandleClick(raw); err != nil {
		m.errMsg = err.Error()
		return
	}
	if m.verbose {
		m.infoMsg = fmt.Sprintf("%s on slot %d", g, slot)
	}
}

func (m *Model) reopenRoot() {
	if err := m.root.Open(m.Viewer()); err != nil {
		m.errMsg = err.Error()
	}
}

func (m *Model) startSearch() {
	if _, ok := m.Session(m.Viewer()); !ok {
		m.infoMsg = "Nothing to search."
		return
	}
	m.searching = true
	m.search.Reset()
	m.search.Focus()
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopSearch()
		return nil
	case tea.KeyEnter:
		query := m.search.Value()
		m.stopSearch()
		m.runSearch(query)
		return nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return cmd
}

func (m *Model) stopSearch() {
	m.searching = false
	m.search.Blur()
}

// runSearch replaces the viewer's surface with the matches of query in the
// menu currently open.
func (m *Model) runSearch(query string) {
	if strings.TrimSpace(query) == "" {
		return
	}
	viewer := m.Viewer()
	s, ok := m.Session(viewer)
	if !ok {
		return
	}
	source := strings.TrimSuffix(s.Menu().ID(), ":search")
	results, err := m.catalog.Search(source, query)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	if err := results.Open(viewer); err != nil {
		m.errMsg = err.Error()
	}
}
