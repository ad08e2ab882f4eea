package command

import (
	"testing"

	"github.com/atomicstack/arcmenu/internal/launch"
	"github.com/atomicstack/arcmenu/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func TestExecuteRunsHandler(t *testing.T) {
	var got menu.Entry
	handler := func(_ launch.Context, entry menu.Entry) tea.Cmd {
		got = entry
		return func() tea.Msg {
			return launch.ActionResult{ID: "entry:launch", Entry: entry, Info: "ok"}
		}
	}
	cmd := New().Execute(launch.Context{}, Request{ID: "entry:launch", Label: "Launch", Handler: handler, Entry: menu.Entry{Name: "Htop"}})
	msg := cmd()
	res, ok := msg.(launch.ActionResult)
	if !ok || res.Info != "ok" {
		t.Fatalf("unexpected message %#v", msg)
	}
	if got.Name != "Htop" {
		t.Fatalf("expected entry passed to handler, got %+v", got)
	}
}

func TestExecuteNilHandlerAndNoOp(t *testing.T) {
	bus := New()
	if msg := bus.Execute(launch.Context{}, Request{ID: "x"})(); msg != nil {
		t.Fatalf("expected nil for missing handler, got %#v", msg)
	}
	noop := func(launch.Context, menu.Entry) tea.Cmd { return nil }
	if msg := bus.Execute(launch.Context{}, Request{ID: "y", Handler: noop})(); msg != nil {
		t.Fatalf("expected nil for no-op handler, got %#v", msg)
	}
}

func TestFromNode(t *testing.T) {
	node, ok := launch.BuildRegistry().Find("entry:copy")
	if !ok {
		t.Fatal("expected entry:copy")
	}
	req := FromNode(node, menu.Entry{Name: "Htop"})
	if req.ID != "entry:copy" || req.Label != "Copy command" || req.Handler == nil || req.Entry.Name != "Htop" {
		t.Fatalf("unexpected request %+v", req)
	}
	if req := FromNode(nil, menu.Entry{Name: "x"}); req.Handler != nil {
		t.Fatalf("expected empty request for nil node")
	}
}
