package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/gridmenu/internal/backend"
	"github.com/atomicstack/gridmenu/internal/catalog"
	"github.com/atomicstack/gridmenu/internal/logging/events"
	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/atomicstack/gridmenu/internal/store"
	"github.com/atomicstack/gridmenu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	CatalogPath     string
	RootMenu        string
	Viewers         []string
	DBPath          string
	SharedSlots     bool
	PersistInterval time.Duration
	Width           int
	Height          int
	Verbose         bool
}

const workerQueue = 64

// CatalogSource names where menus are loaded from.
func (c Config) CatalogSource() string {
	if c.CatalogPath == "" {
		return "embedded"
	}
	return c.CatalogPath
}

// SlotPolicy reports whether sessions share one slot table.
func (c Config) SlotPolicy() string {
	if c.SharedSlots {
		return "shared"
	}
	return "per-session"
}

// LedgerLocation is the grant ledger path, or "memory" when nothing persists.
func (c Config) LedgerLocation() string {
	if c.DBPath == "" {
		return "memory"
	}
	return c.DBPath
}

// Build wires the catalog, ledger, worker and UI model. The returned cleanup
// stops the worker and closes the ledger.
func Build(ctx context.Context, cfg Config) (*ui.Model, func(), error) {
	file, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, nil, err
	}
	events.Catalog.Load(cfg.CatalogSource(), len(file.Menus))

	ledger, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := ledger.EnsureSchema(ctx); err != nil {
		_ = ledger.Close()
		return nil, nil, err
	}

	worker := backend.NewWorker(cfg.PersistInterval, workerQueue)
	cleanup := func() {
		worker.Stop()
		worker.Wait()
		_ = ledger.Close()
	}

	term := ui.NewTerminal()
	var opts []menu.Option
	if cfg.SharedSlots {
		opts = append(opts, menu.WithSharedSlots())
	}
	rt := menu.NewRuntime(term, opts...)

	cat, err := catalog.New(file, catalog.Deps{Runtime: rt, Worker: worker, Ledger: ledger})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if err := cat.Warm(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}

	model, err := ui.NewModel(ui.Options{
		Terminal: term,
		Runtime:  rt,
		Catalog:  cat,
		Events:   worker.Events(),
		Viewers:  cfg.Viewers,
		RootMenu: cfg.RootMenu,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Verbose:  cfg.Verbose,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return model, cleanup, nil
}

func loadCatalog(path string) (catalog.File, error) {
	if path == "" {
		return catalog.Default()
	}
	f, err := catalog.Load(path)
	if err != nil {
		return catalog.File{}, fmt.Errorf("load menus: %w", err)
	}
	return f, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, cleanup, err := Build(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
