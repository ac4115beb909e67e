package menu

import (
	"fmt"
	"sync"

	"github.com/atomicstack/gridmenu/internal/host"
	"github.com/atomicstack/gridmenu/internal/logging/events"
)

const (
	previousOffset = 6
	closeOffset    = 5
	nextOffset     = 4
)

// layout is what a session is built from: a snapshot of the menu taken when
// the open started.
type layout struct {
	rows       int
	title      string
	entries    []*Entry
	page       *Page
	pageNumber int
	pageCount  int
}

func (l layout) size() int { return l.rows * Columns }

// check rejects entries whose declared slot falls outside the grid.
func (l layout) check() error {
	size := l.size()
	all := l.entries
	if l.page != nil {
		all = append(all[:len(all):len(all)], l.page.Entries()...)
	}
	for _, e := range all {
		if slot := e.Slot(); slot >= size {
			return fmt.Errorf("%w: slot %d not below %d", ErrSlotOutOfRange, slot, size)
		}
	}
	return nil
}

// Session is one viewer's live view of one menu page on one surface.
type Session struct {
	rt         *Runtime
	menu       *Menu
	page       *Page
	pageNumber int
	pageCount  int
	viewer     host.Viewer
	surface    host.Surface
	slots      SlotTable

	mu      sync.Mutex
	active  bool
	written map[int]*Entry
}

func newSession(m *Menu, l layout, viewer host.Viewer, surface host.Surface) (*Session, error) {
	if m == nil || surface == nil || viewer.IsZero() {
		return nil, ErrInvalidSessionArgs
	}
	if err := l.check(); err != nil {
		return nil, fmt.Errorf("menu %s: %w", m.id, err)
	}
	s := &Session{
		rt:         m.rt,
		menu:       m,
		page:       l.page,
		pageNumber: l.pageNumber,
		pageCount:  l.pageCount,
		viewer:     viewer,
		surface:    surface,
		slots:      m.rt.slots(),
		written:    make(map[int]*Entry),
	}

	for _, e := range l.entries {
		s.place(e)
	}
	if l.page != nil {
		for _, e := range l.page.Entries() {
			s.place(e)
		}
		s.placeButton(s.previousButton(), l.size()-previousOffset, false)
		s.placeButton(s.nextButton(), l.size()-nextOffset, false)
	}
	s.placeButton(s.closeButton(), l.size()-closeOffset, true)

	s.active = true
	m.rt.sessions.Put(surface.ID(), s)
	events.Session.Create(surface.ID().String(), m.id, viewer.String(), l.pageNumber)

	if err := m.rt.host.Open(viewer, surface); err != nil {
		s.Delete()
		return nil, fmt.Errorf("menu %s: open surface: %w", m.id, err)
	}
	return s, nil
}

func (s *Session) Menu() *Menu           { return s.menu }
func (s *Session) Page() *Page           { return s.page }
func (s *Session) Viewer() host.Viewer   { return s.viewer }
func (s *Session) Surface() host.Surface { return s.surface }

// PageNumber is the 1-based page shown, or 0 for a menu without pages.
func (s *Session) PageNumber() int { return s.pageNumber }

// PageCount is the number of pages the menu had when the session opened.
func (s *Session) PageCount() int { return s.pageCount }

// Active reports whether the session is still registered.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// EntryBySlot resolves the entry that handles clicks on slot.
func (s *Session) EntryBySlot(slot int) (*Entry, bool) {
	return s.slots.Get(slot)
}

// Delete unregisters the session and releases the slots it placed. Calling
// it again has no effect.
func (s *Session) Delete() bool {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return false
	}
	s.active = false
	written := s.written
	s.written = make(map[int]*Entry)
	s.mu.Unlock()

	s.rt.sessions.Remove(s.surface.ID(), s)
	for slot, e := range written {
		s.slots.Remove(slot, e)
	}
	events.Session.Delete(s.surface.ID().String(), s.menu.id, s.viewer.String())
	return true
}

// Refresh re-renders the entry at slot onto the surface.
func (s *Session) Refresh(slot int) bool {
	e, ok := s.slots.Get(slot)
	if !ok {
		return false
	}
	s.surface.SetSlot(slot, e.Render())
	events.Session.Refresh(s.surface.ID().String(), slot)
	return true
}

// Replace installs e at slot, rendering it and routing clicks on slot to it.
func (s *Session) Replace(slot int, e *Entry) bool {
	if e == nil || slot < 0 || slot >= s.surface.Size() {
		return false
	}
	e.SetSlot(slot)
	s.put(slot, e)
	return true
}

func (s *Session) place(e *Entry) {
	slot := e.Slot()
	if slot == Unassigned {
		slot = s.firstFree()
		if slot < 0 {
			events.Session.Skip(s.surface.ID().String(), "surface full")
			return
		}
		e.SetSlot(slot)
	}
	s.put(slot, e)
}

func (s *Session) put(slot int, e *Entry) {
	s.surface.SetSlot(slot, e.Render())
	s.slots.Put(slot, e)
	s.mu.Lock()
	s.written[slot] = e
	s.mu.Unlock()
}

// firstFree is the lowest slot that is empty on the surface and not yet
// claimed by this session. Entries rendering empty content still claim
// their slot.
func (s *Session) firstFree() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < s.surface.Size(); i++ {
		if _, taken := s.written[i]; taken {
			continue
		}
		if s.surface.Slot(i).IsEmpty() {
			return i
		}
	}
	return -1
}

func (s *Session) placeButton(btn *Entry, computed int, declared bool) {
	if btn == nil {
		return
	}
	slot := computed
	if declared && btn.Slot() >= 0 {
		slot = btn.Slot()
	}
	if slot < 0 || slot >= s.surface.Size() {
		events.Session.Skip(s.surface.ID().String(), fmt.Sprintf("button slot %d out of range", slot))
		return
	}
	btn.SetSlot(slot)
	s.put(slot, btn)
}

func (s *Session) previousButton() *Entry {
	if s.pageNumber <= 1 {
		return s.deadEnd()
	}
	return s.navigate(s.menu.PreviousArrow, s.pageNumber-1)
}

func (s *Session) nextButton() *Entry {
	if s.pageNumber >= s.pageCount {
		return s.deadEnd()
	}
	return s.navigate(s.menu.NextArrow, s.pageNumber+1)
}

func (s *Session) deadEnd() *Entry {
	if s.menu.DeadEnd == nil {
		return nil
	}
	btn := s.menu.DeadEnd(s.page, s.viewer)
	if btn == nil {
		return nil
	}
	return btn.ClearActions()
}

func (s *Session) navigate(factory ButtonFactory, target int) *Entry {
	if factory == nil {
		return nil
	}
	btn := factory(s.page, s.viewer)
	if btn == nil {
		return nil
	}
	return btn.OnAllClicks(func(viewer host.Viewer, _ *ClickEvent) error {
		s.Delete()
		s.rt.host.Play(viewer, host.CueButtonClick)
		return s.menu.OpenPage(viewer, target)
	})
}

func (s *Session) closeButton() *Entry {
	if s.menu.CloseButton == nil {
		return nil
	}
	btn := s.menu.CloseButton(s.page, s.viewer)
	if btn == nil {
		return nil
	}
	return btn.OnAllClicks(func(viewer host.Viewer, _ *ClickEvent) error {
		s.rt.host.Play(viewer, host.CueChestClose)
		s.rt.host.RequestClose(viewer)
		return nil
	})
}
