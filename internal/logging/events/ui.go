package events

import "github.com/atomicstack/arcmenu/internal/logging"

type CategoryTracer struct{}

type GridTracer struct{}

type FilterTracer struct{}

type PromptTracer struct{}

var (
	Category = CategoryTracer{}
	Grid     = GridTracer{}
	Filter   = FilterTracer{}
	Prompt   = PromptTracer{}
)

func (CategoryTracer) Activate(name string) {
	logging.Trace("category.activate", map[string]interface{}{"category": name})
}

func (CategoryTracer) HoverArm(name string, token uint64) {
	logging.Trace("category.hover.arm", map[string]interface{}{"category": name, "token": token})
}

func (CategoryTracer) HoverCommit(name string) {
	logging.Trace("category.hover.commit", map[string]interface{}{"category": name})
}

func (CategoryTracer) HoverCancel(name string) {
	logging.Trace("category.hover.cancel", map[string]interface{}{"category": name})
}

func (CategoryTracer) RestoreArm(token uint64) {
	logging.Trace("category.restore.arm", map[string]interface{}{"token": token})
}

func (CategoryTracer) Restore(name string) {
	logging.Trace("category.restore", map[string]interface{}{"category": name})
}

func (CategoryTracer) Stale(timer string, token uint64) {
	logging.Trace("category.timer.stale", map[string]interface{}{"timer": timer, "token": token})
}

func (GridTracer) Start(category string, gen uint64, total int) {
	logging.Trace("grid.start", map[string]interface{}{"category": category, "gen": gen, "total": total})
}

func (GridTracer) Batch(gen uint64, start, count int) {
	logging.Trace("grid.batch", map[string]interface{}{"gen": gen, "start": start, "count": count})
}

func (GridTracer) Stale(gen, current uint64) {
	logging.Trace("grid.stale", map[string]interface{}{"gen": gen, "current": current})
}

func (GridTracer) Done(gen uint64, total int) {
	logging.Trace("grid.done", map[string]interface{}{"gen": gen, "total": total})
}

func (FilterTracer) Cleared(category string) {
	logging.Trace("filter.clear", map[string]interface{}{"category": category})
}

func (FilterTracer) WordBackspace(query string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"query": query})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) CursorWord(pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) Append(query string) {
	logging.Trace("filter.append", map[string]interface{}{"query": query})
}

func (FilterTracer) Backspace(query string) {
	logging.Trace("filter.backspace", map[string]interface{}{"query": query})
}

func (FilterTracer) Results(query string, matches int) {
	logging.Trace("filter.results", map[string]interface{}{"query": query, "matches": matches})
}

func (PromptTracer) Open(entry string) {
	logging.Trace("prompt.open", map[string]interface{}{"entry": entry})
}

func (PromptTracer) Close(reason string) {
	logging.Trace("prompt.close", map[string]interface{}{"reason": reason})
}
