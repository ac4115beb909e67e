package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/atomicstack/gridmenu/internal/backend"
	"github.com/atomicstack/gridmenu/internal/host"
	"github.com/atomicstack/gridmenu/internal/logging"
	"github.com/atomicstack/gridmenu/internal/logging/events"
	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/atomicstack/gridmenu/internal/state"
	"github.com/atomicstack/gridmenu/internal/store"
	"github.com/dustin/go-humanize"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Ledger records grants.
type Ledger interface {
	RecordGrant(ctx context.Context, g store.Grant) (store.Tally, error)
	Totals(ctx context.Context) (map[string]store.Tally, error)
}

// Submitter queues deferred work.
type Submitter interface {
	Submit(job backend.Job) error
}

// Deps are the collaborators a catalog wires into its menus. Worker and
// Ledger are optional; without them grant items only report that granting
// is unavailable.
type Deps struct {
	Runtime *menu.Runtime
	Worker  Submitter
	Ledger  Ledger
}

// GrantResult is the payload of a finished grant job.
type GrantResult struct {
	Viewer  host.Viewer
	Item    string
	Name    string
	Surface host.SurfaceID
	Slot    int
	Mine    store.Tally
	Total   store.Tally
}

// Catalog owns the menus built from a File.
type Catalog struct {
	file     File
	deps     Deps
	defs     map[string]Definition
	registry *menu.Registry
	totals   *state.Index[string, store.Tally]
}

// New builds and registers a menu for every definition in f.
func New(f File, deps Deps) (*Catalog, error) {
	if deps.Runtime == nil {
		return nil, fmt.Errorf("catalog: runtime is required")
	}
	if err := Validate(f); err != nil {
		return nil, err
	}
	c := &Catalog{
		file:     f,
		deps:     deps,
		defs:     make(map[string]Definition, len(f.Menus)),
		registry: menu.NewRegistry(),
		totals:   state.NewIndex[string, store.Tally](),
	}
	for _, def := range f.Menus {
		m, err := c.build(def)
		if err != nil {
			return nil, err
		}
		if err := c.registry.Register(m); err != nil {
			return nil, err
		}
		c.defs[def.ID] = def
	}
	if err := c.registry.SetRoot(f.Root); err != nil {
		return nil, err
	}
	return c, nil
}

// Registry exposes the built menus.
func (c *Catalog) Registry() *menu.Registry {
	return c.registry
}

// Definition returns the source definition of a menu.
func (c *Catalog) Definition(id string) (Definition, bool) {
	def, ok := c.defs[id]
	return def, ok
}

// Warm loads grant totals so item lore is accurate on first open.
func (c *Catalog) Warm(ctx context.Context) error {
	if c.deps.Ledger == nil {
		return nil
	}
	totals, err := c.deps.Ledger.Totals(ctx)
	if err != nil {
		return fmt.Errorf("warm catalog: %w", err)
	}
	for item, t := range totals {
		c.totals.Put(item, t)
	}
	return nil
}

// Search builds a transient menu holding the items of menuID that match
// query. The result is not registered.
func (c *Catalog) Search(menuID, query string) (*menu.Menu, error) {
	def, ok := c.defs[menuID]
	if !ok {
		return nil, fmt.Errorf("search %q: %w", menuID, menu.ErrUnknownMenu)
	}
	matches := Filter(def.Items, query)
	result := def
	result.ID = def.ID + ":search"
	result.Title = fmt.Sprintf("%s: %s", def.Title, strings.TrimSpace(query))
	result.Items = matches
	if def.PageTitle != "" {
		result.PageTitle = result.Title + " #%d"
	}
	events.Catalog.Search(menuID, query, len(matches))
	return c.build(result)
}

// Apply folds a backend event back into the menus. It reports whether the
// event belonged to the catalog.
func (c *Catalog) Apply(evt backend.Event) bool {
	if evt.Kind != backend.KindGrant {
		return false
	}
	res, ok := evt.Data.(GrantResult)
	if !ok {
		return false
	}
	h := c.deps.Runtime.Host()
	if evt.Err != nil {
		logging.Error(fmt.Errorf("grant %s to %s: %w", res.Item, res.Viewer, evt.Err))
		h.Notify(res.Viewer, fmt.Sprintf("Could not grant %s", res.Name))
		return true
	}
	c.totals.Put(res.Item, res.Total)
	h.Notify(res.Viewer, fmt.Sprintf("Received %s (%s so far)", res.Name, humanize.Comma(int64(res.Mine.Count))))
	if s, ok := c.deps.Runtime.Lookup(res.Surface); ok {
		s.Refresh(res.Slot)
	}
	events.Catalog.Grant(res.Viewer.String(), res.Item, res.Total.Count)
	return true
}

// Total returns the cached grant tally of an item.
func (c *Catalog) Total(item string) (store.Tally, bool) {
	return c.totals.Get(item)
}

func (c *Catalog) build(def Definition) (*menu.Menu, error) {
	d := def
	return menu.New(c.deps.Runtime, d.ID, d.Title, d.Rows, func(m *menu.Menu) {
		c.populate(m, d)
	})
}

func (c *Catalog) populate(m *menu.Menu, def Definition) {
	if def.Borders {
		m.FillBorders()
	}
	for _, it := range def.Static {
		m.AddItem(c.entry(it, slotOf(it)))
	}
	if len(def.Slots) == 0 {
		for _, it := range def.Items {
			m.AddItem(c.entry(it, slotOf(it)))
		}
		return
	}
	per := len(def.Slots)
	entries := make([]*menu.Entry, len(def.Items))
	for i, it := range def.Items {
		entries[i] = c.entry(it, def.Slots[i%per])
	}
	pages, err := menu.Paginate(entries, per, def.Rows, def.pageTitle)
	if err != nil {
		logging.Error(fmt.Errorf("menu %s: %w", def.ID, err))
		return
	}
	for _, p := range pages {
		m.AddPage(p)
	}
}

func (d Definition) pageTitle(n int) string {
	if d.PageTitle == "" {
		return ""
	}
	if strings.Contains(d.PageTitle, "%d") {
		return fmt.Sprintf(d.PageTitle, n)
	}
	return d.PageTitle
}

func slotOf(it Item) int {
	if it.Slot == nil {
		return menu.Unassigned
	}
	return *it.Slot
}

func (c *Catalog) entry(it Item, slot int) *menu.Entry {
	action, err := ParseAction(it.Action)
	if err != nil {
		action = Action{Kind: ActionNone}
	}
	b := menu.NewBuilder().SetSlot(slot).SetContent(c.content(it, action))
	h := c.handler(it, action)
	if h == nil {
		return b.Build()
	}
	set, err := parseGestures(it.Gestures)
	if err != nil {
		set = gestureSet{all: true}
	}
	switch {
	case set.all:
		b.OnAllClicks(h)
	case set.clicks:
		b.OnClick(h)
	default:
		for _, g := range set.explicit {
			b.SetAction(g, h)
		}
	}
	return b.Build()
}

func (c *Catalog) content(it Item, action Action) menu.ContentFunc {
	return func() host.Content {
		lore := slices.Clone(it.Lore)
		if action.Kind == ActionGrant {
			if t, ok := c.totals.Get(it.ID); ok && t.Count > 0 {
				lore = append(lore, fmt.Sprintf("Granted %s times, last %s", humanize.Comma(int64(t.Count)), humanize.Time(t.Last)))
			}
		}
		return host.Content{Icon: it.Icon, Name: it.Name, Lore: lore, Amount: it.Amount}
	}
}

func (c *Catalog) handler(it Item, action Action) menu.Handler {
	h := c.deps.Runtime.Host()
	switch action.Kind {
	case ActionClose:
		return func(viewer host.Viewer, _ *menu.ClickEvent) error {
			h.Play(viewer, host.CueChestClose)
			h.RequestClose(viewer)
			return nil
		}
	case ActionMessage:
		text := action.Arg
		return func(viewer host.Viewer, _ *menu.ClickEvent) error {
			h.Notify(viewer, text)
			return nil
		}
	case ActionOpen:
		target := action.Arg
		return func(viewer host.Viewer, evt *menu.ClickEvent) error {
			next, ok := c.registry.Find(target)
			if !ok {
				return fmt.Errorf("open %q: %w", target, menu.ErrUnknownMenu)
			}
			if s := evt.Session(); s != nil {
				s.Delete()
				s.Menu().Forget(s)
			}
			h.Play(viewer, host.CueButtonClick)
			return next.Open(viewer)
		}
	case ActionGrant:
		return c.grant(it)
	default:
		return nil
	}
}

func (c *Catalog) grant(it Item) menu.Handler {
	h := c.deps.Runtime.Host()
	return func(viewer host.Viewer, evt *menu.ClickEvent) error {
		if c.deps.Worker == nil || c.deps.Ledger == nil {
			h.Notify(viewer, "Granting is unavailable")
			return nil
		}
		res := GrantResult{
			Viewer:  viewer,
			Item:    it.ID,
			Name:    it.Name,
			Surface: evt.Session().Surface().ID(),
			Slot:    evt.Slot(),
		}
		ledger := c.deps.Ledger
		job := backend.Job{Kind: backend.KindGrant, Run: func(ctx context.Context) (interface{}, error) {
			mine, err := ledger.RecordGrant(ctx, store.Grant{Viewer: viewer.ID, Name: viewer.Name, Item: it.ID})
			if err != nil {
				return res, err
			}
			res.Mine = mine
			totals, err := ledger.Totals(ctx)
			if err != nil {
				return res, err
			}
			res.Total = totals[it.ID]
			return res, nil
		}}
		if err := c.deps.Worker.Submit(job); err != nil {
			return fmt.Errorf("grant %s: %w", it.ID, err)
		}
		if it.CloseAfter {
			h.Play(viewer, host.CueChestClose)
			h.RequestClose(viewer)
		}
		return nil
	}
}

// Filter returns the items matching query, in their original order. Fuzzy
// matches on names come first; when none match, a substring search over
// names and ids is used.
func Filter(items []Item, query string) []Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return slices.Clone(items)
	}
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Item, 0, len(matches))
		for i, it := range items {
			if _, ok := matches[i]; ok {
				filtered = append(filtered, it)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), lower) || strings.Contains(strings.ToLower(it.ID), lower) {
			filtered = append(filtered, it)
		}
	}
	return filtered
}
