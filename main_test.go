package main

import (
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/atomicstack/gridmenu/internal/app"
	"github.com/atomicstack/gridmenu/internal/config"
)

type closedDescriptor struct{}

func (closedDescriptor) Name() string { return "closed" }
func (closedDescriptor) Fd() uintptr  { return ^uintptr(0) }

func TestDetectTerminalSkipsNonTerminals(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	info := detectTerminal(closedDescriptor{}, r, w)
	if info.Source != "" {
		t.Fatalf("expected no terminal source, got %q", info.Source)
	}
	if info.Error != "no terminal attached" {
		t.Fatalf("expected missing terminal error, got %q", info.Error)
	}
	if empty := detectTerminal(); empty.Error == "" {
		t.Fatalf("expected an error without candidates")
	}
}

func TestStartupTracePayloadDescribesWiring(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			CatalogPath:     "menus.yaml",
			RootMenu:        "shop",
			Viewers:         []string{"alex", "sam"},
			DBPath:          "grants.db",
			SharedSlots:     true,
			PersistInterval: 50 * time.Millisecond,
			Width:           80,
			Height:          24,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{"menus": "menus.yaml", "viewers": "alex,sam"},
		Args:  []string{"--menus", "menus.yaml"},
	}
	tty := terminalInfo{Source: "stdout", Width: 120, Height: 40}

	payload := startupTracePayload(cfg, tty)

	want := map[string]interface{}{
		"catalog":         "menus.yaml",
		"rootMenu":        "shop",
		"slots":           "shared",
		"ledger":          "grants.db",
		"persistInterval": "50ms",
		"trace":           true,
		"logFile":         "trace.log",
	}
	for key, value := range want {
		if payload[key] != value {
			t.Fatalf("expected %s=%v, got %v", key, value, payload[key])
		}
	}
	if !reflect.DeepEqual(payload["viewers"], []string{"alex", "sam"}) {
		t.Fatalf("unexpected viewers %v", payload["viewers"])
	}
	if got := payload["terminal"]; got != tty {
		t.Fatalf("expected terminal %#v, got %#v", tty, got)
	}
	if !reflect.DeepEqual(payload["viewport"], map[string]int{"width": 80, "height": 24}) {
		t.Fatalf("unexpected viewport %v", payload["viewport"])
	}
	if !reflect.DeepEqual(payload["flags"], cfg.Flags) {
		t.Fatalf("unexpected flags %v", payload["flags"])
	}
}

func TestStartupTracePayloadDefaults(t *testing.T) {
	payload := startupTracePayload(config.Config{App: app.Config{Viewers: []string{"alex"}}}, terminalInfo{})

	if payload["catalog"] != "embedded" || payload["ledger"] != "memory" || payload["slots"] != "per-session" {
		t.Fatalf("unexpected defaults %v", payload)
	}
	if _, ok := payload["rootMenu"]; ok {
		t.Fatalf("expected no rootMenu without an override")
	}
	if _, ok := payload["viewport"]; ok {
		t.Fatalf("expected no viewport without fixed dimensions")
	}
}
