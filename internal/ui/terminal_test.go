package ui

import (
	"testing"

	"github.com/atomicstack/gridmenu/internal/host"
)

func TestTerminalOpenReplacementQueuesClose(t *testing.T) {
	term := NewTerminal()
	alex := host.NewViewer("alex")
	first, _ := term.CreateSurface("t", 27, "First")
	second, _ := term.CreateSurface("t", 27, "Second")

	if err := term.Open(alex, first); err != nil {
		t.Fatalf("open: %v", err)
	}
	if pending := term.drain(); len(pending) != 0 {
		t.Fatalf("expected nothing queued, got %d", len(pending))
	}
	if err := term.Open(alex, second); err != nil {
		t.Fatalf("open: %v", err)
	}
	pending := term.drain()
	if len(pending) != 1 || pending[0].Surface != first {
		t.Fatalf("expected close of the first surface, got %#v", pending)
	}
	term.detach(pending[0])
	if term.Surface(alex) != second {
		t.Fatalf("expected the newer surface to stay open")
	}
}

func TestTerminalRequestClose(t *testing.T) {
	term := NewTerminal()
	alex := host.NewViewer("alex")
	term.RequestClose(alex)
	if len(term.drain()) != 0 {
		t.Fatalf("expected no close without an open surface")
	}
	surface, _ := term.CreateSurface("t", 9, "Only")
	_ = term.Open(alex, surface)
	term.RequestClose(alex)
	pending := term.drain()
	if len(pending) != 1 {
		t.Fatalf("expected one queued close, got %d", len(pending))
	}
	term.detach(pending[0])
	if term.Surface(alex) != nil {
		t.Fatalf("expected the surface to be detached")
	}
}

func TestTerminalCreateSurfaceRejectsPartialRows(t *testing.T) {
	term := NewTerminal()
	for _, size := range []int{0, 10, -9} {
		if _, err := term.CreateSurface("t", size, "x"); err == nil {
			t.Fatalf("expected error for size %d", size)
		}
	}
	if err := term.Open(host.NewViewer("a"), nil); err == nil {
		t.Fatalf("expected error opening nil surface")
	}
}

func TestTerminalNoticesAreCapped(t *testing.T) {
	term := NewTerminal()
	alex := host.NewViewer("alex")
	for _, text := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		term.Notify(alex, text)
	}
	got := term.Notices(alex)
	if len(got) != maxNotices || got[0] != "3" || got[len(got)-1] != "7" {
		t.Fatalf("unexpected notices %v", got)
	}
	term.Play(alex, host.CueButtonClick)
	if cue, ok := term.LastCue(alex); !ok || cue != host.CueButtonClick {
		t.Fatalf("expected last cue to be recorded")
	}
}
