package host

import "testing"

func TestNewViewerIsStablePerName(t *testing.T) {
	a := NewViewer("alice")
	b := NewViewer(" alice ")
	if a.ID != b.ID {
		t.Fatalf("expected identical ids, got %s and %s", a.ID, b.ID)
	}
	if a.ID == NewViewer("bob").ID {
		t.Fatalf("expected distinct ids for distinct names")
	}
	if a.IsZero() {
		t.Fatalf("expected derived viewer to carry an identity")
	}
	if !(Viewer{}).IsZero() {
		t.Fatalf("expected zero viewer to report IsZero")
	}
}

func TestGridFirstEmptyAndBounds(t *testing.T) {
	g := NewGrid("owner", 3, "title")
	if got := g.FirstEmpty(); got != 0 {
		t.Fatalf("expected first empty 0, got %d", got)
	}
	g.SetSlot(0, Content{Name: "a"})
	g.SetSlot(2, Content{Name: "c"})
	g.SetSlot(7, Content{Name: "ignored"})
	if got := g.FirstEmpty(); got != 1 {
		t.Fatalf("expected first empty 1, got %d", got)
	}
	g.SetSlot(1, Content{Name: "b"})
	if got := g.FirstEmpty(); got != -1 {
		t.Fatalf("expected full grid to report -1, got %d", got)
	}
	if !g.Slot(-1).IsEmpty() || !g.Slot(3).IsEmpty() {
		t.Fatalf("expected out of range reads to be empty")
	}
}

func TestGridIdentitiesAreUnique(t *testing.T) {
	a := NewGrid("owner", 9, "a")
	b := NewGrid("owner", 9, "b")
	if a.ID() == b.ID() {
		t.Fatalf("expected distinct surface ids, both %s", a.ID())
	}
}

func TestGridCopiesLore(t *testing.T) {
	g := NewGrid("owner", 1, "")
	lore := []string{"one"}
	g.SetSlot(0, Content{Name: "x", Lore: lore})
	lore[0] = "mutated"
	if got := g.Slot(0).Lore[0]; got != "one" {
		t.Fatalf("expected stored lore to be isolated, got %q", got)
	}
}

func TestParseGesture(t *testing.T) {
	cases := map[string]Gesture{
		"left":         GestureLeft,
		"SHIFT_RIGHT":  GestureShiftRight,
		"border-left":  GestureBorderLeft,
		" number-key ": GestureNumberKey,
	}
	for in, want := range cases {
		got, err := ParseGesture(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %s, got %s", in, want, got)
		}
	}
	if _, err := ParseGesture("wiggle"); err == nil {
		t.Fatalf("expected error for unknown gesture")
	}
}

func TestClickGesturesAreSubsetOfAll(t *testing.T) {
	all := map[Gesture]bool{}
	for _, g := range AllGestures() {
		all[g] = true
	}
	if len(all) != len(gestureNames) {
		t.Fatalf("expected AllGestures to cover %d kinds, got %d", len(gestureNames), len(all))
	}
	clicks := ClickGestures()
	if len(clicks) != 6 {
		t.Fatalf("expected 6 click gestures, got %d", len(clicks))
	}
	for _, g := range clicks {
		if !all[g] {
			t.Fatalf("click gesture %s missing from AllGestures", g)
		}
	}
}

func TestClickEventCancel(t *testing.T) {
	evt := &ClickEvent{Slot: 4}
	if evt.Cancelled() {
		t.Fatalf("expected fresh event to be live")
	}
	evt.Cancel()
	if !evt.Cancelled() {
		t.Fatalf("expected event to be cancelled")
	}
	evt.SetCancelled(false)
	if evt.Cancelled() {
		t.Fatalf("expected cancel flag to be cleared")
	}
}
