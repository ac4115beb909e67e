// Package dispatcher routes raw host events to menu sessions in two stages:
// Translate claims and cancels clicks on surfaces the runtime owns, Dispatch
// resolves the entry and handler and runs it on the command bus.
package dispatcher

import (
	"fmt"

	"github.com/atomicstack/gridmenu/internal/host"
	"github.com/atomicstack/gridmenu/internal/logging"
	"github.com/atomicstack/gridmenu/internal/logging/events"
	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/atomicstack/gridmenu/internal/ui/command"
)

// Pipeline joins the translator and dispatcher stages.
type Pipeline struct {
	rt  *menu.Runtime
	bus *command.Bus
}

// New builds a pipeline over rt. A nil bus gets a default one.
func New(rt *menu.Runtime, bus *command.Bus) *Pipeline {
	if bus == nil {
		bus = command.New()
	}
	return &Pipeline{rt: rt, bus: bus}
}

// Translate claims raw when it targets an owned surface. The raw event is
// cancelled before any lookup so the host never applies its default action,
// even when no session is bound.
func (p *Pipeline) Translate(raw *host.ClickEvent) (*menu.ClickEvent, bool) {
	if raw == nil || !p.rt.Owns(raw.Surface) {
		return nil, false
	}
	raw.SetCancelled(true)
	id := raw.Surface.ID()
	s, ok := p.rt.Lookup(id)
	if !ok {
		events.Click.Orphan(id.String(), raw.Slot)
		return nil, false
	}
	events.Click.Translate(id.String(), raw.Slot, raw.Gesture.String())
	return menu.NewClickEvent(s, raw), true
}

// Dispatch runs the handler registered for the clicked slot and gesture.
// Missing entries or handlers are ignored. Handler errors, panics included,
// are logged and returned.
func (p *Pipeline) Dispatch(evt *menu.ClickEvent) error {
	if evt == nil {
		return nil
	}
	s := evt.Session()
	surface := s.Surface().ID().String()
	entry, ok := s.EntryBySlot(evt.Slot())
	if !ok {
		events.Click.Miss(surface, evt.Slot(), evt.Gesture().String(), events.MissNoEntry)
		return nil
	}
	handler, ok := entry.Action(evt.Gesture())
	if !ok {
		events.Click.Miss(surface, evt.Slot(), evt.Gesture().String(), events.MissNoHandler)
		return nil
	}
	events.Click.Dispatch(surface, evt.Slot(), evt.Gesture().String())
	err := p.bus.Execute(command.Request{
		ID:      fmt.Sprintf("%s/%s#%d", s.Menu().ID(), surface, evt.Slot()),
		Label:   evt.Gesture().String(),
		Handler: handler,
		Viewer:  evt.Viewer(),
		Event:   evt,
	})
	if err != nil {
		logging.Error(fmt.Errorf("menu %s slot %d: %w", s.Menu().ID(), evt.Slot(), err))
	}
	return err
}

// HandleClick translates and dispatches raw.
func (p *Pipeline) HandleClick(raw *host.ClickEvent) error {
	evt, ok := p.Translate(raw)
	if !ok {
		return nil
	}
	return p.Dispatch(evt)
}

// HandleClose tears down the session bound to the closed surface, runs the
// menu's close hook and drops the viewer's reference. It reports whether a
// session was found.
func (p *Pipeline) HandleClose(evt host.CloseEvent) bool {
	if evt.Surface == nil || !p.rt.Owns(evt.Surface) {
		return false
	}
	id := evt.Surface.ID()
	s, ok := p.rt.Lookup(id)
	if !ok {
		events.Click.CloseIgnored(id.String())
		return false
	}
	events.Click.Close(id.String(), evt.Viewer.String())
	m := s.Menu()
	s.Delete()
	if m.OnClose != nil {
		if err := p.runCloseHook(m, evt); err != nil {
			logging.Error(err)
		}
	}
	m.Forget(s)
	return true
}

func (p *Pipeline) runCloseHook(m *menu.Menu, evt host.CloseEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("menu %s close hook: %w: %v", m.ID(), command.ErrHandlerPanic, r)
		}
	}()
	m.OnClose(m, evt)
	return nil
}
