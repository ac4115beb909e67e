package menu

import (
	"testing"

	"github.com/atomicstack/gridmenu/internal/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionValidatesArguments(t *testing.T) {
	rt, _ := newTestRuntime(t)
	m, err := New(rt, "m", "M", 3, nil)
	require.NoError(t, err)
	l := layout{rows: 3}
	surface := host.NewGrid(rt.Owner(), 27, "M")

	_, err = newSession(nil, l, host.NewViewer("alice"), surface)
	assert.ErrorIs(t, err, ErrInvalidSessionArgs)
	_, err = newSession(m, l, host.Viewer{}, surface)
	assert.ErrorIs(t, err, ErrInvalidSessionArgs)
	_, err = newSession(m, l, host.NewViewer("alice"), nil)
	assert.ErrorIs(t, err, ErrInvalidSessionArgs)
	assert.Equal(t, 0, rt.Sessions().Len())
}

func TestSessionDeleteIsIdempotent(t *testing.T) {
	rt, _ := newTestRuntime(t)
	m := pagedMenu(t, rt, 1)
	viewer := host.NewViewer("alice")
	require.NoError(t, m.Open(viewer))
	s, _ := m.Session(viewer)

	assert.True(t, s.Delete())
	assert.False(t, s.Delete())
	assert.Equal(t, 0, rt.Sessions().Len())
}

func TestSessionRegisteredBySurface(t *testing.T) {
	rt, fake := newTestRuntime(t)
	m := pagedMenu(t, rt, 1)
	viewer := host.NewViewer("alice")
	require.NoError(t, m.Open(viewer))

	surface := fake.Surface(viewer)
	assert.True(t, rt.Owns(surface))
	s, ok := rt.Lookup(surface.ID())
	require.True(t, ok)
	assert.Same(t, m, s.Menu())
	assert.Equal(t, viewer, s.Viewer())
	assert.Equal(t, 1, s.PageCount())
	assert.False(t, rt.Owns(host.NewGrid("elsewhere", 9, "")))
}

func TestRefreshReRendersEntry(t *testing.T) {
	rt, fake := newTestRuntime(t)
	m, _ := New(rt, "m", "M", 3, nil)
	count := 0
	m.AddItem(NewBuilder().SetSlot(4).SetContent(func() host.Content {
		count++
		return host.Content{Name: "counter", Amount: count}
	}).OnClick(func(_ host.Viewer, evt *ClickEvent) error {
		evt.UpdateItem()
		return nil
	}).Build())
	viewer := host.NewViewer("alice")
	require.NoError(t, m.Open(viewer))
	s, _ := m.Session(viewer)
	assert.Equal(t, 1, fake.Surface(viewer).Slot(4).Amount)

	require.NoError(t, click(t, s, 4, host.GestureLeft))
	assert.Equal(t, 2, fake.Surface(viewer).Slot(4).Amount)
	assert.False(t, s.Refresh(5))
}

func TestUpdateEntryReplacesClickedSlot(t *testing.T) {
	rt, fake := newTestRuntime(t)
	m, _ := New(rt, "m", "M", 3, nil)
	replacement := NewBuilder().SetStatic(host.Content{Name: "after"}).Build()
	m.AddItem(NewBuilder().SetSlot(2).SetStatic(host.Content{Name: "before"}).OnClick(func(_ host.Viewer, evt *ClickEvent) error {
		evt.UpdateEntry(replacement)
		return nil
	}).Build())
	viewer := host.NewViewer("alice")
	require.NoError(t, m.Open(viewer))
	s, _ := m.Session(viewer)

	require.NoError(t, click(t, s, 2, host.GestureRight))

	assert.Equal(t, "after", fake.Surface(viewer).Slot(2).Name)
	assert.Equal(t, 2, replacement.Slot())
	got, ok := s.EntryBySlot(2)
	require.True(t, ok)
	assert.Same(t, replacement, got)
	assert.False(t, s.Replace(99, replacement))
}

func TestFullSurfaceSkipsUnassignedEntries(t *testing.T) {
	rt, _ := newTestRuntime(t)
	m, _ := New(rt, "m", "M", 1, nil)
	m.CloseButton = nil
	b := NewBuilder().SetStatic(host.Content{Name: "x"})
	for i := 0; i < 10; i++ {
		m.AddItem(b.SetSlot(Unassigned).SetStatic(host.Content{Name: "x"}).Build())
	}
	viewer := host.NewViewer("alice")
	require.NoError(t, m.Open(viewer))
	s, _ := m.Session(viewer)

	for slot := 0; slot < 9; slot++ {
		_, ok := s.EntryBySlot(slot)
		assert.True(t, ok, "slot %d", slot)
	}
	assert.Len(t, m.Entries(), 10)
}
