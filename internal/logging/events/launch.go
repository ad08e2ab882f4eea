package events

import "github.com/atomicstack/arcmenu/internal/logging"

type LaunchTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type IconTracer struct{}

type HistoryTracer struct{}

var (
	Launch  = LaunchTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
	Icon    = IconTracer{}
	History = HistoryTracer{}
)

func (LaunchTracer) Start(name string, argv []string) {
	logging.Trace("launch.start", map[string]interface{}{"name": name, "argv": argv})
}

func (LaunchTracer) Tmux(name string, argv []string) {
	logging.Trace("launch.tmux", map[string]interface{}{"name": name, "argv": argv})
}

func (LaunchTracer) Error(name string, err error) {
	if err == nil {
		return
	}
	logging.Trace("launch.error", map[string]interface{}{"name": name, "error": err.Error()})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}

func (IconTracer) Miss(name string, size int) {
	logging.Trace("icon.miss", map[string]interface{}{"name": name, "size": size})
}

func (IconTracer) Resolved(name string, size int, path string) {
	logging.Trace("icon.resolved", map[string]interface{}{"name": name, "size": size, "path": path})
}

func (IconTracer) ScaleFallback(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("icon.scale-fallback", payload)
}

func (HistoryTracer) Record(id, name string) {
	logging.Trace("history.record", map[string]interface{}{"id": id, "name": name})
}

func (HistoryTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("history.error", map[string]interface{}{"error": err.Error()})
}
