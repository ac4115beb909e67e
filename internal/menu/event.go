package menu

import "github.com/atomicstack/gridmenu/internal/host"

// ClickEvent is the click delivered to entry handlers: the raw host event
// together with the session it landed on.
type ClickEvent struct {
	session *Session
	raw     *host.ClickEvent
}

// NewClickEvent wraps raw for delivery within s.
func NewClickEvent(s *Session, raw *host.ClickEvent) *ClickEvent {
	return &ClickEvent{session: s, raw: raw}
}

func (e *ClickEvent) Session() *Session     { return e.session }
func (e *ClickEvent) Menu() *Menu           { return e.session.menu }
func (e *ClickEvent) Raw() *host.ClickEvent { return e.raw }
func (e *ClickEvent) Viewer() host.Viewer   { return e.raw.Viewer }
func (e *ClickEvent) Slot() int             { return e.raw.Slot }
func (e *ClickEvent) Gesture() host.Gesture { return e.raw.Gesture }

// UpdateItem re-renders the clicked entry.
func (e *ClickEvent) UpdateItem() bool {
	return e.session.Refresh(e.raw.Slot)
}

// UpdateEntry installs entry at the clicked slot.
func (e *ClickEvent) UpdateEntry(entry *Entry) bool {
	return e.session.Replace(e.raw.Slot, entry)
}
