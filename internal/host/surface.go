package host

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// SurfaceID identifies a surface for its whole lifetime.
type SurfaceID uint64

func (id SurfaceID) String() string {
	return fmt.Sprintf("surface-%d", uint64(id))
}

// Surface is a fixed-size grid of slots shown to a viewer.
type Surface interface {
	ID() SurfaceID
	Owner() string
	Size() int
	Title() string
	SetSlot(slot int, content Content)
	Slot(slot int) Content
	FirstEmpty() int
}

var nextSurfaceID atomic.Uint64

// Grid is an in-memory Surface.
type Grid struct {
	id    SurfaceID
	owner string
	title string

	mu    sync.RWMutex
	slots []Content
}

// NewGrid allocates an empty grid with a fresh identity.
func NewGrid(owner string, size int, title string) *Grid {
	if size < 0 {
		size = 0
	}
	return &Grid{
		id:    SurfaceID(nextSurfaceID.Add(1)),
		owner: owner,
		title: title,
		slots: make([]Content, size),
	}
}

func (g *Grid) ID() SurfaceID { return g.id }
func (g *Grid) Owner() string { return g.owner }
func (g *Grid) Title() string { return g.title }
func (g *Grid) Size() int     { return len(g.slots) }

// SetSlot writes content into slot. Writes outside the grid are dropped.
func (g *Grid) SetSlot(slot int, content Content) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if slot < 0 || slot >= len(g.slots) {
		return
	}
	g.slots[slot] = content.clone()
}

// Slot returns the content at slot, or Empty when out of range.
func (g *Grid) Slot(slot int) Content {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if slot < 0 || slot >= len(g.slots) {
		return Empty()
	}
	return g.slots[slot].clone()
}

// FirstEmpty returns the lowest empty slot index, or -1 when the grid is full.
func (g *Grid) FirstEmpty() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for i, c := range g.slots {
		if c.IsEmpty() {
			return i
		}
	}
	return -1
}

// Contents returns a snapshot of every slot.
func (g *Grid) Contents() []Content {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Content, len(g.slots))
	for i, c := range g.slots {
		out[i] = c.clone()
	}
	return out
}
