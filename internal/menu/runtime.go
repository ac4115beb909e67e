package menu

import (
	"github.com/atomicstack/gridmenu/internal/host"
	"github.com/atomicstack/gridmenu/internal/state"
)

// DefaultOwner tags surfaces created by a runtime unless WithOwner says
// otherwise. The translator only claims events on surfaces carrying the
// runtime's owner.
const DefaultOwner = "gridmenu"

// SessionIndex maps live surfaces to their session.
type SessionIndex interface {
	Put(id host.SurfaceID, s *Session)
	Get(id host.SurfaceID) (*Session, bool)
	Remove(id host.SurfaceID, s *Session) bool
	Len() int
}

// SlotTable maps slots to entries for click resolution.
type SlotTable interface {
	Put(slot int, e *Entry)
	Get(slot int) (*Entry, bool)
	Remove(slot int, e *Entry) bool
	Len() int
}

// Runtime carries what menus and sessions share: the host, the session index
// and the slot table policy.
type Runtime struct {
	host     host.Host
	owner    string
	sessions SessionIndex
	slots    func() SlotTable
	shared   bool
}

// Option customises a Runtime.
type Option func(*Runtime)

// WithOwner sets the owner token stamped on created surfaces.
func WithOwner(owner string) Option {
	return func(rt *Runtime) {
		if owner != "" {
			rt.owner = owner
		}
	}
}

// WithSessionIndex replaces the default session index.
func WithSessionIndex(idx SessionIndex) Option {
	return func(rt *Runtime) {
		if idx != nil {
			rt.sessions = idx
		}
	}
}

// WithSharedSlots makes every session write into one process-wide slot
// table, so the last session to place an entry at a slot wins for all
// viewers. Only useful to reproduce legacy routing.
func WithSharedSlots() Option {
	return func(rt *Runtime) {
		table := state.NewIndex[int, *Entry]()
		rt.slots = func() SlotTable { return table }
		rt.shared = true
	}
}

// NewRuntime builds a runtime around h. Slot tables are per session unless
// WithSharedSlots is given.
func NewRuntime(h host.Host, opts ...Option) *Runtime {
	rt := &Runtime{
		host:     h,
		owner:    DefaultOwner,
		sessions: state.NewIndex[host.SurfaceID, *Session](),
		slots:    func() SlotTable { return state.NewIndex[int, *Entry]() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(rt)
		}
	}
	return rt
}

func (rt *Runtime) Host() host.Host        { return rt.host }
func (rt *Runtime) Owner() string          { return rt.owner }
func (rt *Runtime) Sessions() SessionIndex { return rt.sessions }
func (rt *Runtime) SharedSlots() bool      { return rt.shared }

// Owns reports whether surface was created by this runtime.
func (rt *Runtime) Owns(surface host.Surface) bool {
	return surface != nil && surface.Owner() == rt.owner
}

// Lookup resolves the live session bound to a surface.
func (rt *Runtime) Lookup(id host.SurfaceID) (*Session, bool) {
	return rt.sessions.Get(id)
}
