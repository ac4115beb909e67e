package menu

import (
	"fmt"
	"sync"
)

// Registry indexes menus by ID. The first registered menu is the root until
// SetRoot says otherwise.
type Registry struct {
	mu    sync.RWMutex
	menus map[string]*Menu
	order []string
	root  string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{menus: make(map[string]*Menu)}
}

// Register adds m under its ID.
func (r *Registry) Register(m *Menu) error {
	if m == nil {
		return fmt.Errorf("register: nil menu")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.menus[m.id]; ok {
		return fmt.Errorf("register %q: %w", m.id, ErrDuplicateMenu)
	}
	r.menus[m.id] = m
	r.order = append(r.order, m.id)
	if r.root == "" {
		r.root = m.id
	}
	return nil
}

// Find locates a menu by ID.
func (r *Registry) Find(id string) (*Menu, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.menus[id]
	return m, ok
}

// Root returns the root menu.
func (r *Registry) Root() (*Menu, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.menus[r.root]
	return m, ok
}

// SetRoot selects the root menu.
func (r *Registry) SetRoot(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.menus[id]; !ok {
		return fmt.Errorf("set root %q: %w", id, ErrUnknownMenu)
	}
	r.root = id
	return nil
}

// IDs lists menu IDs in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Menus lists menus in registration order.
func (r *Registry) Menus() []*Menu {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Menu, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.menus[id])
	}
	return out
}
