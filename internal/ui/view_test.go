package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/gridmenu/internal/host"
	tea "github.com/charmbracelet/bubbletea"
)

func TestViewShowsGridAndRoster(t *testing.T) {
	env := newTestEnv(t, "alex", "sam")
	view := env.h.View()
	for _, want := range []string{"Main Menu", "Blocks", "Tools", "CLOSE", "VIEWER", "main", "sam"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewShowsPageAndDetails(t *testing.T) {
	env := newTestEnv(t)
	env.clickSlot(11)
	env.h.Model().Cursor().Set(10)
	view := env.h.View()
	for _, want := range []string{"page 1/3", "Stone (slot 10)", "Click to receive a stack"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestCellWidthFollowsWindow(t *testing.T) {
	env := newTestEnv(t)
	m := env.h.Model()
	if got := m.cellWidth(); got != defaultCellWidth {
		t.Fatalf("expected default width %d, got %d", defaultCellWidth, got)
	}
	env.h.Send(tea.WindowSizeMsg{Width: 90, Height: 40})
	if got := m.cellWidth(); got != 10 {
		t.Fatalf("expected 10 columns per cell, got %d", got)
	}
	env.h.Send(tea.WindowSizeMsg{Width: 20, Height: 40})
	if got := m.cellWidth(); got != minCellWidth {
		t.Fatalf("expected minimum width, got %d", got)
	}
	if slot, ok := m.slotAt(0, 1); ok {
		t.Fatalf("expected the title row to be outside the grid, got slot %d", slot)
	}
}

func TestRenderCellTruncates(t *testing.T) {
	cell := renderCell(host.Content{Icon: "stone", Name: "An extremely long block name", Amount: 64}, 8, false)
	lines := strings.Split(cell, "\n")
	if len(lines) != cellHeight {
		t.Fatalf("expected %d lines, got %d", cellHeight, len(lines))
	}
	if !strings.Contains(cell, "…") {
		t.Fatalf("expected truncation marker in %q", cell)
	}
}
