package events

import "github.com/atomicstack/gridmenu/internal/logging"

type ClickTracer struct{}

type missReason string

const (
	MissNoEntry   missReason = "no-entry"
	MissNoHandler missReason = "no-handler"
)

var Click = ClickTracer{}

func (ClickTracer) Translate(surface string, slot int, gesture string) {
	logging.Trace("click.translate", map[string]interface{}{"surface": surface, "slot": slot, "gesture": gesture})
}

// Orphan records a click on an owned surface that no session is bound to.
func (ClickTracer) Orphan(surface string, slot int) {
	logging.Trace("click.orphan", map[string]interface{}{"surface": surface, "slot": slot})
}

func (ClickTracer) Miss(surface string, slot int, gesture string, reason missReason) {
	logging.Trace("click.miss", map[string]interface{}{
		"surface": surface,
		"slot":    slot,
		"gesture": gesture,
		"reason":  string(reason),
	})
}

func (ClickTracer) Dispatch(surface string, slot int, gesture string) {
	logging.Trace("click.dispatch", map[string]interface{}{"surface": surface, "slot": slot, "gesture": gesture})
}

func (ClickTracer) Close(surface, viewer string) {
	logging.Trace("close.handle", map[string]interface{}{"surface": surface, "viewer": viewer})
}

func (ClickTracer) CloseIgnored(surface string) {
	logging.Trace("close.ignore", map[string]interface{}{"surface": surface})
}
