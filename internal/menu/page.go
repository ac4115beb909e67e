package menu

import "fmt"

// Page is an ordered, duplicate-free list of entries shown together.
type Page struct {
	title   string
	rows    int
	entries []*Entry
}

// NewPage returns an empty page.
func NewPage(title string, rows int) *Page {
	return &Page{title: title, rows: rows}
}

func (p *Page) Title() string { return p.title }

// Rows is informational; the menu's row count sizes the surface.
func (p *Page) Rows() int { return p.rows }

// AddItem appends e unless an equal entry is already present.
func (p *Page) AddItem(e *Entry) bool {
	if e == nil {
		return false
	}
	for _, existing := range p.entries {
		if existing.Equal(e) {
			return false
		}
	}
	p.entries = append(p.entries, e)
	return true
}

// Entries returns the page entries in insertion order.
func (p *Page) Entries() []*Entry {
	out := make([]*Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Len reports how many entries the page holds.
func (p *Page) Len() int { return len(p.entries) }

// PageBuilder assembles a Page fluently.
type PageBuilder struct {
	title   string
	rows    int
	entries []*Entry
}

func NewPageBuilder() *PageBuilder {
	return &PageBuilder{}
}

func (b *PageBuilder) SetTitle(title string) *PageBuilder {
	b.title = title
	return b
}

func (b *PageBuilder) SetRows(rows int) *PageBuilder {
	b.rows = rows
	return b
}

func (b *PageBuilder) AddItem(e *Entry) *PageBuilder {
	b.entries = append(b.entries, e)
	return b
}

// Build returns a page with the collected entries, deduplicated.
func (b *PageBuilder) Build() *Page {
	p := NewPage(b.title, b.rows)
	for _, e := range b.entries {
		p.AddItem(e)
	}
	return p
}

// Paginate splits entries into consecutive pages of at most perPage entries.
// title receives the 1-based page number.
func Paginate(entries []*Entry, perPage, rows int, title func(n int) string) ([]*Page, error) {
	if perPage <= 0 {
		return nil, fmt.Errorf("paginate: page size must be positive (got %d)", perPage)
	}
	if title == nil {
		title = func(int) string { return "" }
	}
	pages := make([]*Page, 0, (len(entries)+perPage-1)/perPage)
	for start := 0; start < len(entries); start += perPage {
		end := min(start+perPage, len(entries))
		page := NewPage(title(len(pages)+1), rows)
		for _, e := range entries[start:end] {
			page.AddItem(e)
		}
		pages = append(pages, page)
	}
	return pages, nil
}
