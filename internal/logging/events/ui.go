package events

import "github.com/atomicstack/gridmenu/internal/logging"

type UITracer struct{}

type AppTracer struct{}

var (
	UI  = UITracer{}
	App = AppTracer{}
)

func (UITracer) Key(viewer, key string) {
	logging.Trace("ui.key", map[string]interface{}{"viewer": viewer, "key": key})
}

func (UITracer) Mouse(viewer string, slot int, gesture string) {
	logging.Trace("ui.mouse", map[string]interface{}{"viewer": viewer, "slot": slot, "gesture": gesture})
}

func (UITracer) SwitchViewer(viewer string) {
	logging.Trace("ui.viewer", map[string]interface{}{"viewer": viewer})
}

func (UITracer) Surface(viewer, surface, action string) {
	logging.Trace("ui.surface", map[string]interface{}{"viewer": viewer, "surface": surface, "action": action})
}

func (UITracer) Cue(viewer, cue string) {
	logging.Trace("ui.cue", map[string]interface{}{"viewer": viewer, "cue": cue})
}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}
