package command

import (
	"errors"
	"testing"

	"github.com/atomicstack/gridmenu/internal/host"
	"github.com/atomicstack/gridmenu/internal/menu"
)

func TestExecuteRunsHandler(t *testing.T) {
	viewer := host.NewViewer("alice")
	var got host.Viewer
	err := New().Execute(Request{
		ID:     "slot-1",
		Viewer: viewer,
		Handler: func(v host.Viewer, _ *menu.ClickEvent) error {
			got = v
			return nil
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != viewer {
		t.Fatalf("expected handler to receive %v, got %v", viewer, got)
	}
}

func TestExecuteWithoutHandlerIsNoop(t *testing.T) {
	if err := New().Execute(Request{ID: "empty"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestExecutePropagatesHandlerError(t *testing.T) {
	boom := errors.New("boom")
	err := New().Execute(Request{ID: "slot-2", Handler: func(host.Viewer, *menu.ClickEvent) error {
		return boom
	}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestExecuteRecoversPanics(t *testing.T) {
	err := New().Execute(Request{ID: "slot-3", Handler: func(host.Viewer, *menu.ClickEvent) error {
		panic("kaboom")
	}})
	if !errors.Is(err, ErrHandlerPanic) {
		t.Fatalf("expected ErrHandlerPanic, got %v", err)
	}
}
