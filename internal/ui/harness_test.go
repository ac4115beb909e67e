package ui

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/atomicstack/gridmenu/internal/backend"
	"github.com/atomicstack/gridmenu/internal/catalog"
	"github.com/atomicstack/gridmenu/internal/host"
	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/atomicstack/gridmenu/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

// recordingWorker runs jobs inline and keeps their events for the test to
// deliver.
type recordingWorker struct {
	mu     sync.Mutex
	events []backend.Event
}

func (w *recordingWorker) Submit(job backend.Job) error {
	data, err := job.Run(context.Background())
	w.mu.Lock()
	w.events = append(w.events, backend.Event{Kind: job.Kind, Data: data, Err: err})
	w.mu.Unlock()
	return nil
}

func (w *recordingWorker) take() []backend.Event {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := w.events
	w.events = nil
	return out
}

type testEnv struct {
	term   *Terminal
	rt     *menu.Runtime
	worker *recordingWorker
	h      *Harness
}

func newTestEnv(t *testing.T, viewers ...string) *testEnv {
	t.Helper()
	if len(viewers) == 0 {
		viewers = []string{"alex"}
	}
	term := NewTerminal()
	rt := menu.NewRuntime(term)
	ledger, err := store.Open("")
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	t.Cleanup(func() { _ = ledger.Close() })
	if err := ledger.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("schema: %v", err)
	}
	file, err := catalog.Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	worker := &recordingWorker{}
	cat, err := catalog.New(file, catalog.Deps{Runtime: rt, Worker: worker, Ledger: ledger})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	model, err := NewModel(Options{Terminal: term, Runtime: rt, Catalog: cat, Viewers: viewers})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return &testEnv{term: term, rt: rt, worker: worker, h: NewHarness(model)}
}

func (e *testEnv) title(t *testing.T) string {
	t.Helper()
	surface := e.term.Surface(e.h.Model().Viewer())
	if surface == nil {
		t.Fatalf("expected an open surface")
	}
	return surface.Title()
}

func (e *testEnv) clickSlot(slot int) {
	e.h.Model().Cursor().Set(slot)
	e.h.Key("enter")
}

func TestRootOpensForEveryViewer(t *testing.T) {
	env := newTestEnv(t, "alex", "sam")
	for _, v := range env.h.Model().Viewers() {
		surface := env.term.Surface(v)
		if surface == nil || surface.Title() != "Main Menu" {
			t.Fatalf("expected main menu for %s, got %v", v.Name, surface)
		}
	}
	if got := env.rt.Sessions().Len(); got != 2 {
		t.Fatalf("expected 2 sessions, got %d", got)
	}
}

func TestOpenSubmenuAndPageThrough(t *testing.T) {
	env := newTestEnv(t)
	env.clickSlot(11)
	if got := env.title(t); got != "BLOCKS #1" {
		t.Fatalf("expected BLOCKS #1, got %q", got)
	}
	env.clickSlot(41)
	if got := env.title(t); got != "BLOCKS #2" {
		t.Fatalf("expected BLOCKS #2, got %q", got)
	}
	env.clickSlot(39)
	if got := env.title(t); got != "BLOCKS #1" {
		t.Fatalf("expected BLOCKS #1 after previous, got %q", got)
	}
	if got := env.rt.Sessions().Len(); got != 1 {
		t.Fatalf("expected a single live session, got %d", got)
	}
	if cue, _ := env.term.LastCue(env.h.Model().Viewer()); cue != host.CueButtonClick {
		t.Fatalf("expected button click cue, got %q", cue)
	}
}

func TestDeadEndDoesNothing(t *testing.T) {
	env := newTestEnv(t)
	env.clickSlot(11)
	before := env.term.Surface(env.h.Model().Viewer())
	env.clickSlot(39)
	if after := env.term.Surface(env.h.Model().Viewer()); after != before {
		t.Fatalf("expected dead end to keep the surface")
	}
}

func TestEscapeClosesSurface(t *testing.T) {
	env := newTestEnv(t)
	env.h.Key("esc")
	if env.term.Surface(env.h.Model().Viewer()) != nil {
		t.Fatalf("expected surface to be closed")
	}
	if got := env.rt.Sessions().Len(); got != 0 {
		t.Fatalf("expected no sessions, got %d", got)
	}
	if !strings.Contains(env.h.View(), "No menu open") {
		t.Fatalf("expected empty-state hint in view")
	}
	env.h.Key("o")
	if got := env.title(t); got != "Main Menu" {
		t.Fatalf("expected root to reopen, got %q", got)
	}
}

func TestCloseButtonRequestsClose(t *testing.T) {
	env := newTestEnv(t)
	env.clickSlot(22)
	viewer := env.h.Model().Viewer()
	if env.term.Surface(viewer) != nil {
		t.Fatalf("expected close button to close the surface")
	}
	if cue, _ := env.term.LastCue(viewer); cue != host.CueChestClose {
		t.Fatalf("expected chest close cue, got %q", cue)
	}
	if got := env.rt.Sessions().Len(); got != 0 {
		t.Fatalf("expected no sessions, got %d", got)
	}
}

func TestTabSwitchesViewer(t *testing.T) {
	env := newTestEnv(t, "alex", "sam")
	env.clickSlot(11)
	env.h.Key("tab")
	sam := env.h.Model().Viewer()
	if sam.Name != "sam" {
		t.Fatalf("expected sam to be active, got %s", sam.Name)
	}
	if got := env.title(t); got != "Main Menu" {
		t.Fatalf("expected sam to still see the main menu, got %q", got)
	}
	env.h.Key("tab")
	if env.h.Model().Viewer().Name != "alex" {
		t.Fatalf("expected tab to wrap around")
	}
}

func TestMouseClickMapsToSlot(t *testing.T) {
	env := newTestEnv(t)
	x := (11 % menu.Columns) * defaultCellWidth
	y := gridTop + (11/menu.Columns)*cellHeight
	env.h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := env.title(t); got != "BLOCKS #1" {
		t.Fatalf("expected mouse click to open blocks, got %q", got)
	}
	before := env.term.Surface(env.h.Model().Viewer())
	env.h.Send(tea.MouseMsg{X: 1, Y: 500, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if env.term.Surface(env.h.Model().Viewer()) != before {
		t.Fatalf("expected an outside click to leave the surface alone")
	}
}

func TestGestureRestrictedKeys(t *testing.T) {
	env := newTestEnv(t)
	env.clickSlot(13)
	if got := env.title(t); got != "Tools" {
		t.Fatalf("expected tools menu, got %q", got)
	}
	viewer := env.h.Model().Viewer()
	env.h.Model().Cursor().Set(1)
	env.h.Key("r")
	if n := len(env.term.Notices(viewer)); n != 0 {
		t.Fatalf("expected right click to be ignored, got %d notices", n)
	}
	env.h.Key("enter")
	notices := env.term.Notices(viewer)
	if len(notices) != 1 || notices[0] != "left click received" {
		t.Fatalf("unexpected notices %v", notices)
	}
}

func TestGrantResultRefreshesView(t *testing.T) {
	env := newTestEnv(t)
	env.clickSlot(11)
	env.clickSlot(10)
	evts := env.worker.take()
	if len(evts) != 1 {
		t.Fatalf("expected one grant job, got %d", len(evts))
	}
	env.h.Send(backendEventMsg{event: evts[0]})
	view := env.h.View()
	if !strings.Contains(view, "Received Stone (1 so far)") {
		t.Fatalf("expected grant notice in view:\n%s", view)
	}
	if !strings.Contains(view, "Granted 1 times") {
		t.Fatalf("expected refreshed lore in details:\n%s", view)
	}
}

func TestSearchOpensResults(t *testing.T) {
	env := newTestEnv(t)
	env.clickSlot(11)
	env.h.Key("/")
	env.h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("sand")})
	env.h.Key("enter")
	if got := env.title(t); got != "Blocks: sand #1" {
		t.Fatalf("expected search results, got %q", got)
	}
	surface := env.term.Surface(env.h.Model().Viewer())
	if surface.Slot(10).Name != "Sand" {
		t.Fatalf("expected Sand first, got %q", surface.Slot(10).Name)
	}
	if got := env.rt.Sessions().Len(); got != 1 {
		t.Fatalf("expected the blocks session to be replaced, got %d sessions", got)
	}
}

func TestSearchEscapeCancels(t *testing.T) {
	env := newTestEnv(t)
	env.h.Key("/")
	env.h.Key("esc")
	if env.h.Model().searching {
		t.Fatalf("expected search to be cancelled")
	}
	if env.term.Surface(env.h.Model().Viewer()) == nil {
		t.Fatalf("expected escape in search to keep the surface open")
	}
}

func TestQuitKey(t *testing.T) {
	env := newTestEnv(t)
	_, cmd := env.h.Model().Update(keyMsg("ctrl+c"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestNewModelValidates(t *testing.T) {
	term := NewTerminal()
	rt := menu.NewRuntime(term)
	file, err := catalog.Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	cat, err := catalog.New(file, catalog.Deps{Runtime: rt})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	if _, err := NewModel(Options{Terminal: term, Runtime: rt, Catalog: cat}); err == nil {
		t.Fatalf("expected error without viewers")
	}
	if _, err := NewModel(Options{Terminal: term, Runtime: rt, Catalog: cat, Viewers: []string{"a"}, RootMenu: "nope"}); err == nil {
		t.Fatalf("expected error for unknown root")
	}
	m, err := NewModel(Options{Terminal: term, Runtime: rt, Catalog: cat, Viewers: []string{"a"}, RootMenu: "tools"})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	if got := term.Surface(m.Viewer()).Title(); got != "Tools" {
		t.Fatalf("expected tools as root, got %q", got)
	}
}
