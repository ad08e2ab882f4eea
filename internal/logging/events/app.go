package events

import "github.com/atomicstack/arcmenu/internal/logging"

type AppTracer struct{}

type MenuTracer struct{}

type SettingsTracer struct{}

type ReloadTracer struct{}

var (
	App      = AppTracer{}
	Menu     = MenuTracer{}
	Settings = SettingsTracer{}
	Reload   = ReloadTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Quit(reason string) {
	logging.Trace("app.quit", map[string]interface{}{"reason": reason})
}

func (MenuTracer) Loaded(path string, categories []string, entries int) {
	logging.Trace("menu.loaded", map[string]interface{}{
		"path":       path,
		"categories": categories,
		"entries":    entries,
	})
}

func (MenuTracer) Fallback(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("menu.fallback", payload)
}

func (SettingsTracer) Loaded(path string, persisted bool) {
	logging.Trace("settings.loaded", map[string]interface{}{"path": path, "persisted": persisted})
}

func (SettingsTracer) Defaults(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("settings.defaults", payload)
}

func (ReloadTracer) Event(kind, path string) {
	logging.Trace("reload.event", map[string]interface{}{"kind": kind, "path": path})
}

func (ReloadTracer) Rebuild(categories int) {
	logging.Trace("reload.rebuild", map[string]interface{}{"categories": categories})
}

func (ReloadTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("reload.error", map[string]interface{}{"error": err.Error()})
}
