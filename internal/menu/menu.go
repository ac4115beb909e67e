// Package menu implements paginated slot-grid menus: entries with per-gesture
// handlers, pages of entries, and the per-viewer sessions that place them on
// a host surface together with navigation and close buttons.
package menu

import (
	"fmt"
	"slices"
	"sync"

	"github.com/atomicstack/gridmenu/internal/host"
	"github.com/atomicstack/gridmenu/internal/logging/events"
	"github.com/google/uuid"
)

const (
	// Columns is the fixed width of every menu grid.
	Columns = 9
	// MaxRows bounds the height of a menu grid.
	MaxRows = 6
)

// InitFunc populates a menu. When set it runs on every open, after the
// menu's entries and pages have been cleared.
type InitFunc func(m *Menu)

// CloseHook runs after a viewer's surface closed and its session was torn
// down.
type CloseHook func(m *Menu, evt host.CloseEvent)

// ButtonFactory builds a fresh button entry for a page and viewer. The
// returned entry should carry no handlers; sessions attach their own.
type ButtonFactory func(page *Page, viewer host.Viewer) *Entry

// Menu is a titled grid of rows*Columns slots holding static entries and an
// ordered list of pages.
type Menu struct {
	PreviousArrow ButtonFactory
	NextArrow     ButtonFactory
	DeadEnd       ButtonFactory
	CloseButton   ButtonFactory
	Border        ContentFunc
	OnClose       CloseHook

	rt   *Runtime
	id   string
	init InitFunc

	mu       sync.Mutex
	title    string
	rows     int
	opened   bool
	entries  []*Entry
	pages    []*Page
	sessions map[uuid.UUID]*Session
}

// New creates a menu bound to rt with the default buttons.
func New(rt *Runtime, id, title string, rows int, init InitFunc) (*Menu, error) {
	if rt == nil {
		return nil, fmt.Errorf("menu %s: nil runtime", id)
	}
	if err := checkRows(rows); err != nil {
		return nil, fmt.Errorf("menu %s: %w", id, err)
	}
	m := &Menu{
		PreviousArrow: DefaultPreviousArrow,
		NextArrow:     DefaultNextArrow,
		DeadEnd:       DefaultDeadEnd,
		Border:        DefaultBorder,
		rt:            rt,
		id:            id,
		init:          init,
		title:         title,
		rows:          rows,
		sessions:      make(map[uuid.UUID]*Session),
	}
	m.CloseButton = m.defaultCloseButton
	return m, nil
}

func checkRows(rows int) error {
	if rows < 1 || rows > MaxRows {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidRows, rows, MaxRows)
	}
	return nil
}

func (m *Menu) ID() string        { return m.id }
func (m *Menu) Runtime() *Runtime { return m.rt }

func (m *Menu) Title() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.title
}

func (m *Menu) Rows() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows
}

// Size is the number of slots of the menu grid.
func (m *Menu) Size() int {
	return m.Rows() * Columns
}

// SetTitle changes the title. It fails once the menu has been opened.
func (m *Menu) SetTitle(title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.opened {
		return fmt.Errorf("menu %s: set title: %w", m.id, ErrMenuOpened)
	}
	m.title = title
	return nil
}

// SetRows changes the row count. It fails once the menu has been opened.
func (m *Menu) SetRows(rows int) error {
	if err := checkRows(rows); err != nil {
		return fmt.Errorf("menu %s: %w", m.id, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.opened {
		return fmt.Errorf("menu %s: set rows: %w", m.id, ErrMenuOpened)
	}
	m.rows = rows
	return nil
}

// AddItem adds a static entry shown on every page. Equal entries are
// ignored.
func (m *Menu) AddItem(e *Entry) bool {
	if e == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.entries {
		if existing.Equal(e) {
			return false
		}
	}
	m.entries = append(m.entries, e)
	return true
}

// AddPage appends p unless it is already part of the menu.
func (m *Menu) AddPage(p *Page) bool {
	if p == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if slices.Contains(m.pages, p) {
		return false
	}
	m.pages = append(m.pages, p)
	return true
}

// Entries returns the static entries.
func (m *Menu) Entries() []*Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.entries)
}

// Pages returns the pages in order.
func (m *Menu) Pages() []*Page {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.pages)
}

// PageNumber returns the 1-based position of p, or 0 when p is not part of
// the menu.
func (m *Menu) PageNumber(p *Page) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := slices.Index(m.pages, p); i >= 0 {
		return i + 1
	}
	return 0
}

// Session returns the viewer's live session on this menu.
func (m *Menu) Session(viewer host.Viewer) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[viewer.ID]
	return s, ok
}

// Viewers lists viewers with a session on this menu.
func (m *Menu) Viewers() []host.Viewer {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]host.Viewer, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s.viewer)
	}
	return out
}

// Open shows the first page to viewer.
func (m *Menu) Open(viewer host.Viewer) error {
	return m.OpenPage(viewer, 1)
}

// OpenPage shows page n to viewer, replacing any session the viewer already
// has on this menu. When the menu has no pages only static entries are
// shown and n is ignored.
func (m *Menu) OpenPage(viewer host.Viewer, n int) error {
	if viewer.IsZero() {
		return fmt.Errorf("menu %s: %w: missing viewer", m.id, ErrInvalidSessionArgs)
	}
	m.prepare()

	m.mu.Lock()
	l := layout{
		rows:      m.rows,
		title:     m.title,
		entries:   slices.Clone(m.entries),
		pageCount: len(m.pages),
	}
	if len(m.pages) > 0 {
		if n < 1 || n > len(m.pages) {
			m.mu.Unlock()
			err := fmt.Errorf("menu %s: %w: %d not in [1, %d]", m.id, ErrInvalidPageNumber, n, len(m.pages))
			events.Menu.OpenFailed(m.id, viewer.String(), err)
			return err
		}
		l.page = m.pages[n-1]
		l.pageNumber = n
		if t := l.page.Title(); t != "" {
			l.title = t
		}
	}
	prior := m.sessions[viewer.ID]
	m.mu.Unlock()

	if err := l.check(); err != nil {
		err = fmt.Errorf("menu %s: %w", m.id, err)
		events.Menu.OpenFailed(m.id, viewer.String(), err)
		return err
	}

	if prior != nil {
		prior.Delete()
		m.Forget(prior)
	}

	surface, err := m.rt.host.CreateSurface(m.rt.owner, l.rows*Columns, l.title)
	if err != nil {
		return fmt.Errorf("menu %s: create surface: %w", m.id, err)
	}
	s, err := newSession(m, l, viewer, surface)
	if err != nil {
		events.Menu.OpenFailed(m.id, viewer.String(), err)
		return err
	}

	m.mu.Lock()
	m.sessions[viewer.ID] = s
	m.mu.Unlock()
	events.Menu.Open(m.id, viewer.String(), l.pageNumber, l.pageCount)
	return nil
}

// prepare marks the menu opened and re-runs the init hook from scratch.
func (m *Menu) prepare() {
	m.mu.Lock()
	m.opened = true
	init := m.init
	if init != nil {
		m.entries = nil
		m.pages = nil
	}
	m.mu.Unlock()
	if init == nil {
		return
	}
	init(m)
	m.mu.Lock()
	events.Menu.Init(m.id, len(m.entries), len(m.pages))
	m.mu.Unlock()
}

// Close tears down the viewer's session. The host is not asked to close the
// surface.
func (m *Menu) Close(viewer host.Viewer) error {
	m.mu.Lock()
	s, ok := m.sessions[viewer.ID]
	if ok {
		delete(m.sessions, viewer.ID)
	}
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("menu %s: %w for %s", m.id, ErrNoActiveSession, viewer)
	}
	s.Delete()
	events.Menu.Close(m.id, viewer.String())
	return nil
}

// Forget drops the viewer's reference to s. It is a no-op when the viewer
// has since moved to another session.
func (m *Menu) Forget(s *Session) bool {
	if s == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if current, ok := m.sessions[s.viewer.ID]; ok && current == s {
		delete(m.sessions, s.viewer.ID)
		return true
	}
	return false
}

// FillBorders adds border entries around the grid edge. Menus with fewer
// than three rows have no border.
func (m *Menu) FillBorders() int {
	slots := BorderSlots(m.Rows())
	if len(slots) == 0 {
		return 0
	}
	content := m.Border
	if content == nil {
		content = DefaultBorder
	}
	b := NewBuilder().SetContent(content)
	added := 0
	for _, slot := range slots {
		if m.AddItem(b.SetSlot(slot).Build()) {
			added++
		}
	}
	return added
}

// BorderSlots lists the edge slots of a grid with the given rows, in
// ascending order.
func BorderSlots(rows int) []int {
	if rows < 3 {
		return nil
	}
	size := rows * Columns
	seen := make(map[int]bool, 2*Columns+2*rows)
	var slots []int
	add := func(i int) {
		if !seen[i] {
			seen[i] = true
			slots = append(slots, i)
		}
	}
	for i := 0; i < Columns; i++ {
		add(i)
	}
	for i := Columns - 1; i < size-Columns; i += Columns {
		add(i)
		add(i + 1)
	}
	for i := size - Columns; i < size; i++ {
		add(i)
	}
	return slots
}
