package menu

import (
	"github.com/atomicstack/gridmenu/internal/host"
)

// Unassigned marks an entry whose slot is chosen when a session places it.
const Unassigned = -1

// Handler reacts to a click on an entry. Errors are logged by the dispatcher
// and never reach other handlers.
type Handler func(viewer host.Viewer, evt *ClickEvent) error

// ContentFunc produces the content of an entry. It is called on every fill so
// the rendering may change between opens.
type ContentFunc func() host.Content

// producer and action wrap caller functions so that entries can be compared
// by registration identity.
type producer struct{ fn ContentFunc }

type action struct{ fn Handler }

// Entry is a slot assignment, a content producer and a set of handlers keyed
// by gesture.
type Entry struct {
	slot    int
	content *producer
	actions map[host.Gesture]*action
}

// Slot returns the entry's slot, or Unassigned.
func (e *Entry) Slot() int {
	return e.slot
}

// SetSlot fixes the entry's slot. Values below Unassigned are treated as
// Unassigned.
func (e *Entry) SetSlot(slot int) {
	if slot < Unassigned {
		slot = Unassigned
	}
	e.slot = slot
}

// Render invokes the content producer. Entries without one render empty.
func (e *Entry) Render() host.Content {
	if e.content == nil || e.content.fn == nil {
		return host.Empty()
	}
	return e.content.fn()
}

// Action returns the handler registered for g.
func (e *Entry) Action(g host.Gesture) (Handler, bool) {
	a, ok := e.actions[g]
	if !ok || a.fn == nil {
		return nil, false
	}
	return a.fn, true
}

// Gestures lists the gestures with a registered handler, in AllGestures order.
func (e *Entry) Gestures() []host.Gesture {
	out := make([]host.Gesture, 0, len(e.actions))
	for _, g := range host.AllGestures() {
		if _, ok := e.actions[g]; ok {
			out = append(out, g)
		}
	}
	return out
}

// OnAllClicks registers h for every gesture, replacing existing handlers.
func (e *Entry) OnAllClicks(h Handler) *Entry {
	a := &action{fn: h}
	if e.actions == nil {
		e.actions = make(map[host.Gesture]*action)
	}
	for _, g := range host.AllGestures() {
		e.actions[g] = a
	}
	return e
}

// ClearActions drops every handler.
func (e *Entry) ClearActions() *Entry {
	e.actions = make(map[host.Gesture]*action)
	return e
}

// Equal reports whether both entries share slot, content producer and
// handlers. Producers and handlers compare by registration, so entries built
// from the same builder state are equal while separately registered closures
// are not.
func (e *Entry) Equal(other *Entry) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	if e.slot != other.slot || e.content != other.content {
		return false
	}
	if len(e.actions) != len(other.actions) {
		return false
	}
	for g, a := range e.actions {
		if b, ok := other.actions[g]; !ok || a != b {
			return false
		}
	}
	return true
}

// Builder assembles entries fluently. Build may be called repeatedly; each
// call returns an independent entry.
type Builder struct {
	slot    int
	content *producer
	actions map[host.Gesture]*action
}

// NewBuilder starts an unassigned entry with no content and no handlers.
func NewBuilder() *Builder {
	return &Builder{slot: Unassigned, actions: make(map[host.Gesture]*action)}
}

// SetSlot sets the target slot. Values below Unassigned become Unassigned.
func (b *Builder) SetSlot(slot int) *Builder {
	if slot < Unassigned {
		slot = Unassigned
	}
	b.slot = slot
	return b
}

// SetContent sets the content producer.
func (b *Builder) SetContent(fn ContentFunc) *Builder {
	b.content = &producer{fn: fn}
	return b
}

// SetStatic is SetContent for a fixed value.
func (b *Builder) SetStatic(c host.Content) *Builder {
	return b.SetContent(func() host.Content { return c })
}

// SetAction registers h for g. The last registration for a gesture wins.
func (b *Builder) SetAction(g host.Gesture, h Handler) *Builder {
	b.actions[g] = &action{fn: h}
	return b
}

// OnClick registers h for the primary and secondary click families.
func (b *Builder) OnClick(h Handler) *Builder {
	return b.register(host.ClickGestures(), h)
}

// OnAllClicks registers h for every gesture.
func (b *Builder) OnAllClicks(h Handler) *Builder {
	return b.register(host.AllGestures(), h)
}

func (b *Builder) register(gestures []host.Gesture, h Handler) *Builder {
	a := &action{fn: h}
	for _, g := range gestures {
		b.actions[g] = a
	}
	return b
}

// Build returns the entry described so far.
func (b *Builder) Build() *Entry {
	actions := make(map[host.Gesture]*action, len(b.actions))
	for g, a := range b.actions {
		actions[g] = a
	}
	return &Entry{slot: b.slot, content: b.content, actions: actions}
}
