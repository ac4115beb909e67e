// Package host defines the boundary between the menu framework and whatever
// renders surfaces to viewers. The framework only ever talks to a Host; the
// terminal program in internal/ui is one implementation, testutil.FakeHost is
// another.
package host

import (
	"strings"

	"github.com/google/uuid"
)

// Viewer identifies an interacting agent. Only the ID takes part in
// comparisons; Name is for display.
type Viewer struct {
	ID   uuid.UUID
	Name string
}

// NewViewer returns a viewer whose identity is derived from name, so the same
// name always yields the same ID.
func NewViewer(name string) Viewer {
	name = strings.TrimSpace(name)
	return Viewer{
		ID:   uuid.NewSHA1(uuid.NameSpaceOID, []byte("gridmenu:viewer:"+name)),
		Name: name,
	}
}

// IsZero reports whether v carries no identity.
func (v Viewer) IsZero() bool {
	return v.ID == uuid.Nil
}

func (v Viewer) String() string {
	if v.Name != "" {
		return v.Name
	}
	return v.ID.String()
}

// Cue names a short feedback signal such as a click sound.
type Cue string

const (
	CueButtonClick Cue = "button.click"
	CueChestClose  Cue = "chest.close"
)

// Host renders surfaces and delivers feedback. Play and Notify are fire and
// forget; RequestClose asks the host to close whatever the viewer has open and
// is expected to report it back as a CloseEvent.
type Host interface {
	CreateSurface(owner string, size int, title string) (Surface, error)
	Open(viewer Viewer, surface Surface) error
	RequestClose(viewer Viewer)
	Play(viewer Viewer, cue Cue)
	Notify(viewer Viewer, text string)
}

// ClickEvent is a raw interaction reported by the host. Handlers of the raw
// event may cancel it so the host does not apply its default behaviour.
type ClickEvent struct {
	Surface Surface
	Viewer  Viewer
	Slot    int
	Gesture Gesture

	cancelled bool
}

// Cancel marks the event as consumed.
func (e *ClickEvent) Cancel() { e.cancelled = true }

// SetCancelled overrides the cancel flag.
func (e *ClickEvent) SetCancelled(v bool) { e.cancelled = v }

// Cancelled reports whether the event was consumed.
func (e *ClickEvent) Cancelled() bool { return e.cancelled }

// CloseEvent reports that a viewer's surface was closed, for whatever reason.
type CloseEvent struct {
	Surface Surface
	Viewer  Viewer
}
