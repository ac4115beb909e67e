// Package testutil provides a recording host for exercising menus without a
// terminal.
package testutil

import (
	"fmt"
	"sync"

	"github.com/atomicstack/gridmenu/internal/host"
	"github.com/google/uuid"
)

// Call records one host interaction.
type Call struct {
	Kind    string
	Viewer  host.Viewer
	Surface host.Surface
	Cue     host.Cue
	Text    string
}

// FakeHost implements host.Host in memory. Surfaces are host.Grid values;
// the currently open surface per viewer is tracked so tests can click on it.
type FakeHost struct {
	mu       sync.Mutex
	calls    []Call
	open     map[uuid.UUID]host.Surface
	created  []*host.Grid
	OpenErr  error
	CreateFn func(owner string, size int, title string) (host.Surface, error)
}

// NewFakeHost returns an empty recording host.
func NewFakeHost() *FakeHost {
	return &FakeHost{open: make(map[uuid.UUID]host.Surface)}
}

func (h *FakeHost) CreateSurface(owner string, size int, title string) (host.Surface, error) {
	if h.CreateFn != nil {
		return h.CreateFn(owner, size, title)
	}
	g := host.NewGrid(owner, size, title)
	h.mu.Lock()
	h.created = append(h.created, g)
	h.mu.Unlock()
	return g, nil
}

func (h *FakeHost) Open(viewer host.Viewer, surface host.Surface) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, Call{Kind: "open", Viewer: viewer, Surface: surface})
	if h.OpenErr != nil {
		return h.OpenErr
	}
	h.open[viewer.ID] = surface
	return nil
}

func (h *FakeHost) RequestClose(viewer host.Viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, Call{Kind: "close", Viewer: viewer, Surface: h.open[viewer.ID]})
}

func (h *FakeHost) Play(viewer host.Viewer, cue host.Cue) {
	h.record(Call{Kind: "play", Viewer: viewer, Cue: cue})
}

func (h *FakeHost) Notify(viewer host.Viewer, text string) {
	h.record(Call{Kind: "notify", Viewer: viewer, Text: text})
}

func (h *FakeHost) record(c Call) {
	h.mu.Lock()
	h.calls = append(h.calls, c)
	h.mu.Unlock()
}

// Calls returns every recorded interaction in order.
func (h *FakeHost) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Call, len(h.calls))
	copy(out, h.calls)
	return out
}

// CallsOf returns the recorded interactions of one kind.
func (h *FakeHost) CallsOf(kind string) []Call {
	var out []Call
	for _, c := range h.Calls() {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Cues lists the cues played, in order.
func (h *FakeHost) Cues() []host.Cue {
	var out []host.Cue
	for _, c := range h.CallsOf("play") {
		out = append(out, c.Cue)
	}
	return out
}

// Surface returns the surface most recently opened for viewer.
func (h *FakeHost) Surface(viewer host.Viewer) host.Surface {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.open[viewer.ID]
}

// Created lists every grid handed out by CreateSurface.
func (h *FakeHost) Created() []*host.Grid {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*host.Grid, len(h.created))
	copy(out, h.created)
	return out
}

// Click builds a raw click on the viewer's open surface.
func (h *FakeHost) Click(viewer host.Viewer, slot int, g host.Gesture) *host.ClickEvent {
	surface := h.Surface(viewer)
	if surface == nil {
		panic(fmt.Sprintf("testutil: no surface open for %s", viewer))
	}
	return &host.ClickEvent{Surface: surface, Viewer: viewer, Slot: slot, Gesture: g}
}

// Reset forgets recorded calls but keeps open surfaces.
func (h *FakeHost) Reset() {
	h.mu.Lock()
	h.calls = nil
	h.mu.Unlock()
}
