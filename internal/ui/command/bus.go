package command

import (
	"errors"
	"fmt"

	"github.com/atomicstack/gridmenu/internal/host"
	"github.com/atomicstack/gridmenu/internal/logging/events"
	"github.com/atomicstack/gridmenu/internal/menu"
)

// ErrHandlerPanic wraps a recovered handler panic.
var ErrHandlerPanic = errors.New("handler panicked")

// Request encapsulates a handler invocation.
type Request struct {
	ID      string
	Label   string
	Handler menu.Handler
	Viewer  host.Viewer
	Event   *menu.ClickEvent
}

// Bus runs entry handlers one at a time on the caller's goroutine.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute invokes the handler while emitting trace logs. A panicking handler
// is recovered and reported as an error wrapping ErrHandlerPanic.
func (b *Bus) Execute(req Request) (err error) {
	events.Command.Queue(req.ID, req.Label)
	if req.Handler == nil {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			events.Command.Panic(req.ID, req.Label, fmt.Sprint(r))
			err = fmt.Errorf("%s: %w: %v", req.ID, ErrHandlerPanic, r)
		}
		events.Command.Result(req.ID, req.Label, err)
	}()
	return req.Handler(req.Viewer, req.Event)
}
