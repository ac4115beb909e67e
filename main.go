package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/gridmenu/internal/app"
	"github.com/atomicstack/gridmenu/internal/config"
	"github.com/atomicstack/gridmenu/internal/logging"
	"github.com/atomicstack/gridmenu/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg, detectTerminal(os.Stdout, os.Stdin)))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records how this run is wired: where menus and grants
// live, who is viewing and how slot tables are scoped.
func startupTracePayload(cfg config.Config, tty terminalInfo) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":            cfg.Args,
		"flags":           cfg.Flags,
		"catalog":         cfg.App.CatalogSource(),
		"viewers":         cfg.App.Viewers,
		"slots":           cfg.App.SlotPolicy(),
		"ledger":          cfg.App.LedgerLocation(),
		"persistInterval": cfg.App.PersistInterval.String(),
		"trace":           cfg.Logging.Trace,
		"logFile":         cfg.Logging.FilePath,
		"terminal":        tty,
	}
	if cfg.App.RootMenu != "" {
		payload["rootMenu"] = cfg.App.RootMenu
	}
	if cfg.App.Width > 0 || cfg.App.Height > 0 {
		payload["viewport"] = map[string]int{"width": cfg.App.Width, "height": cfg.App.Height}
	}
	return payload
}

// terminalInfo is the first descriptor that a grid can be drawn on.
type terminalInfo struct {
	Source string `json:"source,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Error  string `json:"error,omitempty"`
}

type descriptor interface {
	Name() string
	Fd() uintptr
}

func detectTerminal(candidates ...descriptor) terminalInfo {
	for _, c := range candidates {
		fd := int(c.Fd())
		if fd < 0 || !term.IsTerminal(fd) {
			continue
		}
		width, height, err := term.GetSize(fd)
		if err != nil {
			return terminalInfo{Source: c.Name(), Error: err.Error()}
		}
		return terminalInfo{Source: c.Name(), Width: width, Height: height}
	}
	return terminalInfo{Error: "no terminal attached"}
}
