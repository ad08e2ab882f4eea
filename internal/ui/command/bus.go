package command

import (
	"fmt"

	"github.com/atomicstack/arcmenu/internal/launch"
	"github.com/atomicstack/arcmenu/internal/logging/events"
	"github.com/atomicstack/arcmenu/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler launch.Action
	Entry   menu.Entry
}

// Bus coordinates the execution of launcher actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
// A nil handler, or a handler with nothing to do, yields a nil message.
func (b *Bus) Execute(ctx launch.Context, req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		cmd := req.Handler(ctx, req.Entry)
		if cmd == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		msg := cmd()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}

// FromNode builds a request for a registered action.
func FromNode(node *launch.Node, entry menu.Entry) Request {
	if node == nil {
		return Request{Entry: entry}
	}
	return Request{ID: node.ID, Label: node.Label, Handler: node.Action, Entry: entry}
}
