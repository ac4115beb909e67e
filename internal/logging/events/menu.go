package events

import "github.com/atomicstack/gridmenu/internal/logging"

type MenuTracer struct{}

type SessionTracer struct{}

var (
	Menu    = MenuTracer{}
	Session = SessionTracer{}
)

func (MenuTracer) Init(menuID string, entries, pages int) {
	logging.Trace("menu.init", map[string]interface{}{"menu": menuID, "entries": entries, "pages": pages})
}

func (MenuTracer) Open(menuID, viewer string, page, pages int) {
	logging.Trace("menu.open", map[string]interface{}{
		"menu":   menuID,
		"viewer": viewer,
		"page":   page,
		"pages":  pages,
	})
}

func (MenuTracer) OpenFailed(menuID, viewer string, err error) {
	if err == nil {
		return
	}
	logging.Trace("menu.open.error", map[string]interface{}{"menu": menuID, "viewer": viewer, "error": err.Error()})
}

func (MenuTracer) Close(menuID, viewer string) {
	logging.Trace("menu.close", map[string]interface{}{"menu": menuID, "viewer": viewer})
}

func (SessionTracer) Create(surface, menuID, viewer string, page int) {
	logging.Trace("session.create", map[string]interface{}{
		"surface": surface,
		"menu":    menuID,
		"viewer":  viewer,
		"page":    page,
	})
}

func (SessionTracer) Delete(surface, menuID, viewer string) {
	logging.Trace("session.delete", map[string]interface{}{"surface": surface, "menu": menuID, "viewer": viewer})
}

func (SessionTracer) Skip(surface, reason string) {
	logging.Trace("session.place.skip", map[string]interface{}{"surface": surface, "reason": reason})
}

func (SessionTracer) Refresh(surface string, slot int) {
	logging.Trace("session.refresh", map[string]interface{}{"surface": surface, "slot": slot})
}
