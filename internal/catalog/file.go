// Package catalog turns declarative menu definitions into live menus.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/gridmenu/internal/host"
	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog wraps every validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

//go:embed default.yaml
var defaultCatalog []byte

// File is a set of menu definitions.
type File struct {
	Root  string       `yaml:"root" toml:"root"`
	Menus []Definition `yaml:"menus" toml:"menus"`
}

// Definition describes one menu. When Slots is set, Items are laid onto
// those slots page by page; otherwise they are placed as static entries.
type Definition struct {
	ID        string `yaml:"id" toml:"id"`
	Title     string `yaml:"title" toml:"title"`
	Rows      int    `yaml:"rows" toml:"rows"`
	Borders   bool   `yaml:"borders" toml:"borders"`
	PageTitle string `yaml:"page_title" toml:"page_title"`
	Slots     []int  `yaml:"slots" toml:"slots"`
	Items     []Item `yaml:"items" toml:"items"`
	Static    []Item `yaml:"static" toml:"static"`
}

// Item describes one entry.
type Item struct {
	ID         string   `yaml:"id" toml:"id"`
	Icon       string   `yaml:"icon" toml:"icon"`
	Name       string   `yaml:"name" toml:"name"`
	Lore       []string `yaml:"lore" toml:"lore"`
	Amount     int      `yaml:"amount" toml:"amount"`
	Slot       *int     `yaml:"slot" toml:"slot"`
	Action     string   `yaml:"action" toml:"action"`
	Gestures   []string `yaml:"gestures" toml:"gestures"`
	CloseAfter bool     `yaml:"close_after" toml:"close_after"`
}

// Load reads a catalog file, choosing the decoder by extension.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read catalog %q: %w", path, err)
	}
	return Parse(path, data)
}

// Default returns the catalog bundled with the binary.
func Default() (File, error) {
	return Parse("embedded/default.yaml", defaultCatalog)
}

// Parse decodes and validates data. name only selects the format and labels
// errors.
func Parse(name string, data []byte) (File, error) {
	var f File
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return File{}, fmt.Errorf("parse catalog %q: %w", name, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return File{}, fmt.Errorf("parse catalog %q: %w", name, err)
		}
	default:
		return File{}, fmt.Errorf("parse catalog %q: unsupported format %q", name, ext)
	}
	f = normalize(f)
	if err := Validate(f); err != nil {
		return File{}, fmt.Errorf("validate catalog %q: %w", name, err)
	}
	return f, nil
}

func normalize(f File) File {
	f.Root = strings.TrimSpace(f.Root)
	for i := range f.Menus {
		d := &f.Menus[i]
		d.ID = strings.TrimSpace(d.ID)
		for j := range d.Items {
			d.Items[j].ID = strings.TrimSpace(d.Items[j].ID)
			d.Items[j].Action = strings.TrimSpace(d.Items[j].Action)
		}
		for j := range d.Static {
			d.Static[j].ID = strings.TrimSpace(d.Static[j].ID)
			d.Static[j].Action = strings.TrimSpace(d.Static[j].Action)
		}
	}
	if f.Root == "" && len(f.Menus) > 0 {
		f.Root = f.Menus[0].ID
	}
	return f
}

// Validate checks ids, sizes, slots, actions and gestures.
func Validate(f File) error {
	if len(f.Menus) == 0 {
		return fmt.Errorf("%w: no menus defined", ErrInvalidCatalog)
	}
	ids := make(map[string]bool, len(f.Menus))
	for _, d := range f.Menus {
		if d.ID == "" {
			return fmt.Errorf("%w: menu id is required", ErrInvalidCatalog)
		}
		if ids[d.ID] {
			return fmt.Errorf("%w: duplicate menu %q", ErrInvalidCatalog, d.ID)
		}
		ids[d.ID] = true
	}
	if !ids[f.Root] {
		return fmt.Errorf("%w: root menu %q is not defined", ErrInvalidCatalog, f.Root)
	}
	for _, d := range f.Menus {
		if err := validateDefinition(d, ids); err != nil {
			return err
		}
	}
	return nil
}

func validateDefinition(d Definition, ids map[string]bool) error {
	if d.Rows < 1 || d.Rows > menu.MaxRows {
		return fmt.Errorf("%w: menu %q rows %d not in [1, %d]", ErrInvalidCatalog, d.ID, d.Rows, menu.MaxRows)
	}
	size := d.Rows * menu.Columns
	for _, slot := range d.Slots {
		if slot < 0 || slot >= size {
			return fmt.Errorf("%w: menu %q slot %d outside grid of %d", ErrInvalidCatalog, d.ID, slot, size)
		}
	}
	items := make(map[string]bool)
	for _, group := range [][]Item{d.Items, d.Static} {
		for _, it := range group {
			if it.ID == "" {
				return fmt.Errorf("%w: menu %q has an item without id", ErrInvalidCatalog, d.ID)
			}
			if items[it.ID] {
				return fmt.Errorf("%w: menu %q duplicate item %q", ErrInvalidCatalog, d.ID, it.ID)
			}
			items[it.ID] = true
			if it.Slot != nil && (*it.Slot < 0 || *it.Slot >= size) {
				return fmt.Errorf("%w: item %q slot %d outside grid of %d", ErrInvalidCatalog, it.ID, *it.Slot, size)
			}
			action, err := ParseAction(it.Action)
			if err != nil {
				return fmt.Errorf("%w: item %q: %v", ErrInvalidCatalog, it.ID, err)
			}
			if action.Kind == ActionOpen && !ids[action.Arg] {
				return fmt.Errorf("%w: item %q opens unknown menu %q", ErrInvalidCatalog, it.ID, action.Arg)
			}
			if _, err := parseGestures(it.Gestures); err != nil {
				return fmt.Errorf("%w: item %q: %v", ErrInvalidCatalog, it.ID, err)
			}
		}
	}
	return nil
}

// gestureSet is the resolved form of Item.Gestures.
type gestureSet struct {
	all      bool
	clicks   bool
	explicit []host.Gesture
}

func parseGestures(names []string) (gestureSet, error) {
	if len(names) == 0 {
		return gestureSet{all: true}, nil
	}
	if len(names) == 1 {
		switch strings.ToLower(strings.TrimSpace(names[0])) {
		case "all":
			return gestureSet{all: true}, nil
		case "click":
			return gestureSet{clicks: true}, nil
		}
	}
	set := gestureSet{}
	for _, name := range names {
		g, err := host.ParseGesture(name)
		if err != nil {
			return gestureSet{}, err
		}
		set.explicit = append(set.explicit, g)
	}
	return set, nil
}
