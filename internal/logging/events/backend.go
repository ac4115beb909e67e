package events

import "github.com/atomicstack/gridmenu/internal/logging"

type BackendTracer struct{}

type CatalogTracer struct{}

var (
	Backend = BackendTracer{}
	Catalog = CatalogTracer{}
)

func (BackendTracer) Submit(kind string, queued int) {
	logging.Trace("backend.submit", map[string]interface{}{"kind": kind, "queued": queued})
}

func (BackendTracer) Rejected(kind, reason string) {
	logging.Trace("backend.reject", map[string]interface{}{"kind": kind, "reason": reason})
}

func (BackendTracer) Result(kind string, err error) {
	payload := map[string]interface{}{"kind": kind}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("backend.result", payload)
}

func (CatalogTracer) Load(source string, menus int) {
	logging.Trace("catalog.load", map[string]interface{}{"source": source, "menus": menus})
}

func (CatalogTracer) Search(menuID, query string, matches int) {
	logging.Trace("catalog.search", map[string]interface{}{"menu": menuID, "query": query, "matches": matches})
}

func (CatalogTracer) Grant(viewer, item string, total int) {
	logging.Trace("catalog.grant", map[string]interface{}{"viewer": viewer, "item": item, "total": total})
}
