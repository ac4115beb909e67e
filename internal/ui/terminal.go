package ui

import (
	"fmt"
	"sync"

	"github.com/atomicstack/gridmenu/internal/host"
	"github.com/atomicstack/gridmenu/internal/logging/events"
	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/google/uuid"
)

const maxNotices = 5

// Terminal is the host.Host the Bubble Tea program renders. Closes never
// happen inline: RequestClose and surface replacement queue a close event
// that the model dispatches as a separate message.
type Terminal struct {
	mu      sync.Mutex
	open    map[uuid.UUID]host.Surface
	pending []host.CloseEvent
	notices map[uuid.UUID][]string
	cues    map[uuid.UUID]host.Cue
}

// NewTerminal returns a host with no open surfaces.
func NewTerminal() *Terminal {
	return &Terminal{
		open:    make(map[uuid.UUID]host.Surface),
		notices: make(map[uuid.UUID][]string),
		cues:    make(map[uuid.UUID]host.Cue),
	}
}

func (t *Terminal) CreateSurface(owner string, size int, title string) (host.Surface, error) {
	if size <= 0 || size%menu.Columns != 0 {
		return nil, fmt.Errorf("create surface: size %d is not a whole number of rows", size)
	}
	return host.NewGrid(owner, size, title), nil
}

// Open shows surface to viewer. A different surface already open for the
// viewer is queued for closing.
func (t *Terminal) Open(viewer host.Viewer, surface host.Surface) error {
	if surface == nil {
		return fmt.Errorf("open surface for %s: nil surface", viewer)
	}
	t.mu.Lock()
	if prev := t.open[viewer.ID]; prev != nil && prev.ID() != surface.ID() {
		t.pending = append(t.pending, host.CloseEvent{Surface: prev, Viewer: viewer})
	}
	t.open[viewer.ID] = surface
	t.mu.Unlock()
	events.UI.Surface(viewer.String(), surface.ID().String(), "open")
	return nil
}

// RequestClose queues a close of the viewer's open surface.
func (t *Terminal) RequestClose(viewer host.Viewer) {
	t.mu.Lock()
	surface := t.open[viewer.ID]
	if surface != nil {
		t.pending = append(t.pending, host.CloseEvent{Surface: surface, Viewer: viewer})
	}
	t.mu.Unlock()
	if surface != nil {
		events.UI.Surface(viewer.String(), surface.ID().String(), "close-requested")
	}
}

func (t *Terminal) Play(viewer host.Viewer, cue host.Cue) {
	t.mu.Lock()
	t.cues[viewer.ID] = cue
	t.mu.Unlock()
	events.UI.Cue(viewer.String(), string(cue))
}

func (t *Terminal) Notify(viewer host.Viewer, text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	list := append(t.notices[viewer.ID], text)
	if len(list) > maxNotices {
		list = list[len(list)-maxNotices:]
	}
	t.notices[viewer.ID] = list
}

// Surface returns the viewer's open surface, or nil.
func (t *Terminal) Surface(viewer host.Viewer) host.Surface {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.open[viewer.ID]
}

// Notices returns the most recent messages sent to viewer, oldest first.
func (t *Terminal) Notices(viewer host.Viewer) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.notices[viewer.ID]...)
}

// LastCue returns the cue most recently played for viewer.
func (t *Terminal) LastCue(viewer host.Viewer) (host.Cue, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	cue, ok := t.cues[viewer.ID]
	return cue, ok
}

// drain hands over the queued close events.
func (t *Terminal) drain() []host.CloseEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.pending
	t.pending = nil
	return out
}

// detach forgets surface as the viewer's open surface once its close has been
// processed. A newer surface stays.
func (t *Terminal) detach(evt host.CloseEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if cur := t.open[evt.Viewer.ID]; cur != nil && cur.ID() == evt.Surface.ID() {
		delete(t.open, evt.Viewer.ID)
	}
}
