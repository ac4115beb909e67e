package menu

import (
	"fmt"

	"github.com/atomicstack/gridmenu/internal/host"
)

// DefaultPreviousArrow renders the "previous page" button.
func DefaultPreviousArrow(*Page, host.Viewer) *Entry {
	return NewBuilder().SetStatic(host.Content{Icon: "arrow", Name: "<< PREVIOUS PAGE"}).Build()
}

// DefaultNextArrow renders the "next page" button.
func DefaultNextArrow(*Page, host.Viewer) *Entry {
	return NewBuilder().SetStatic(host.Content{Icon: "arrow", Name: "NEXT PAGE >>"}).Build()
}

// DefaultDeadEnd replaces an arrow that has nowhere to go.
func DefaultDeadEnd(*Page, host.Viewer) *Entry {
	return NewBuilder().SetStatic(host.Content{Icon: "paper", Name: "DEAD END ☠"}).Build()
}

// DefaultBorder is the filler used by FillBorders.
func DefaultBorder() host.Content {
	return host.Content{Icon: "glass-pane"}
}

func (m *Menu) defaultCloseButton(page *Page, _ host.Viewer) *Entry {
	// unpaged menus count as page one
	label := fmt.Sprintf("Click to close %s (Page #%d)", m.Title(), max(m.PageNumber(page), 1))
	return NewBuilder().SetStatic(host.Content{
		Icon: "barrier",
		Name: "CLOSE",
		Lore: []string{label},
	}).Build()
}
