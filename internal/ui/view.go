package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/gridmenu/internal/host"
	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/truncate"
)

const (
	gridTop          = 2 // viewer tabs and title precede the grid
	cellHeight       = 2
	defaultCellWidth = 12
	minCellWidth     = 6
	maxCellWidth     = 16
	maxNoticeLines   = 3
)

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{m.viewerTabs()}
	viewer := m.Viewer()
	surface := m.term.Surface(viewer)
	if surface == nil {
		sections = append(sections,
			styles.Info.Render(fmt.Sprintf("No menu open. Press o to open %s.", m.root.Title())),
		)
	} else {
		sections = append(sections, m.titleLine(viewer, surface), m.renderGrid(surface), "")
		sections = append(sections, m.details(surface)...)
	}
	sections = append(sections, m.statusLines(viewer)...)
	if m.searching {
		sections = append(sections, m.search.View())
	}
	sections = append(sections, m.roster(), m.help.View(m.keys))
	return m.clip(strings.Join(sections, "\n"))
}

func (m *Model) viewerTabs() string {
	parts := make([]string, len(m.viewers))
	for i, v := range m.viewers {
		if i == m.active {
			parts[i] = styles.RosterActive.Render(v.Name)
			continue
		}
		parts[i] = styles.Roster.Render(v.Name)
	}
	return strings.Join(parts, styles.Footer.Render("|"))
}

func (m *Model) titleLine(viewer host.Viewer, surface host.Surface) string {
	title := styles.Title.Render(surface.Title())
	s, ok := m.Session(viewer)
	if !ok || s.PageCount() == 0 {
		return title
	}
	return title + styles.Header.Render(fmt.Sprintf("  page %d/%d", s.PageNumber(), s.PageCount()))
}

func (m *Model) cellWidth() int {
	if m.width <= 0 {
		return defaultCellWidth
	}
	return min(max(m.width/menu.Columns, minCellWidth), maxCellWidth)
}

// slotAt maps a terminal cell to a grid slot.
func (m *Model) slotAt(x, y int) (int, bool) {
	surface := m.term.Surface(m.Viewer())
	if surface == nil || x < 0 || y < gridTop {
		return 0, false
	}
	row := (y - gridTop) / cellHeight
	col := x / m.cellWidth()
	if col >= menu.Columns || row >= surface.Size()/menu.Columns {
		return 0, false
	}
	return row*menu.Columns + col, true
}

func (m *Model) renderGrid(surface host.Surface) string {
	w := m.cellWidth()
	selected := m.Cursor().Slot
	rows := make([]string, 0, surface.Size()/menu.Columns)
	for start := 0; start < surface.Size(); start += menu.Columns {
		cells := make([]string, 0, menu.Columns)
		for slot := start; slot < start+menu.Columns; slot++ {
			cells = append(cells, renderCell(surface.Slot(slot), w, slot == selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(c host.Content, width int, selected bool) string {
	style := styles.Cell
	switch {
	case selected:
		style = styles.SelectedCell
	case c.IsEmpty():
		style = styles.EmptyCell
	}
	name := c.Name
	if name == "" {
		name = c.Icon
	}
	if c.IsEmpty() {
		name = "·"
	}
	second := c.Icon
	if c.Amount > 1 {
		second = fmt.Sprintf("%s x%d", c.Icon, c.Amount)
	}
	inner := uint(width - 1)
	text := truncate.StringWithTail(name, inner, "…") + "\n" + truncate.StringWithTail(second, inner, "…")
	return style.Width(width).Height(cellHeight).Render(text)
}

func (m *Model) details(surface host.Surface) []string {
	slot := m.Cursor().Slot
	c := surface.Slot(slot)
	if c.IsEmpty() {
		return []string{styles.DetailTitle.Render(fmt.Sprintf("slot %d", slot))}
	}
	lines := []string{styles.DetailTitle.Render(fmt.Sprintf("%s (slot %d)", c.Name, slot))}
	for _, l := range c.Lore {
		lines = append(lines, styles.DetailBody.Render(l))
	}
	return lines
}

func (m *Model) statusLines(viewer host.Viewer) []string {
	var lines []string
	notices := m.term.Notices(viewer)
	if len(notices) > maxNoticeLines {
		notices = notices[len(notices)-maxNoticeLines:]
	}
	for _, n := range notices {
		lines = append(lines, styles.Notice.Render(n))
	}
	if m.errMsg != "" {
		lines = append(lines, styles.Error.Render(m.errMsg))
	}
	if m.infoMsg != "" {
		lines = append(lines, styles.Info.Render(m.infoMsg))
	}
	return lines
}

// roster lists the menu and page each viewer has open.
func (m *Model) roster() string {
	rows := make([][]string, 0, len(m.viewers))
	for _, v := range m.viewers {
		menuID, page, surfaceID := "-", "-", "-"
		if surface := m.term.Surface(v); surface != nil {
			surfaceID = surface.ID().String()
			if s, ok := m.rt.Lookup(surface.ID()); ok {
				menuID = s.Menu().ID()
				if s.PageCount() > 0 {
					page = fmt.Sprintf("%d/%d", s.PageNumber(), s.PageCount())
				}
			}
		}
		rows = append(rows, []string{v.Name, menuID, page, surfaceID})
	}
	active := m.active
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(*styles.Footer).
		Headers("VIEWER", "MENU", "PAGE", "SURFACE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return *styles.RosterHeader
			case row == active:
				return *styles.RosterActive
			default:
				return *styles.Roster
			}
		}).
		String()
}

func (m *Model) clip(view string) string {
	if m.width <= 0 && m.height <= 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
	}
	if m.width > 0 {
		for i, l := range lines {
			lines[i] = truncate.String(l, uint(m.width))
		}
	}
	return strings.Join(lines, "\n")
}
