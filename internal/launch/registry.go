package launch

import "strings"

// CloseKind says when the UI should close after an action is chosen.
type CloseKind int

const (
	CloseNever CloseKind = iota
	CloseAfterLaunch
	CloseAfterAction
)

// Node describes a registered action.
type Node struct {
	ID     string
	Label  string
	Key    string
	Action Action
	Close  CloseKind
}

// Registry exposes lookup utilities for action definitions.
type Registry struct {
	nodes  map[string]*Node
	groups map[string][]*Node
}

// BuildRegistry registers the entry actions (offered from the context
// prompt) and the launcher buttons.
func BuildRegistry() *Registry {
	defs := []*Node{
		{ID: "entry:launch", Label: "Launch", Action: LaunchAction, Close: CloseAfterLaunch},
		{ID: "entry:terminal", Label: "Launch in terminal", Action: TerminalAction, Close: CloseAfterLaunch},
		{ID: "entry:copy", Label: "Copy command", Action: CopyAction},
		{ID: "button:search", Label: "Web search", Key: "ctrl+g", Action: WebSearchAction, Close: CloseAfterAction},
		{ID: "button:config", Label: "Settings", Key: "ctrl+s", Action: ConfigToolAction, Close: CloseAfterAction},
		{ID: "button:profile", Label: "Profile", Key: "ctrl+o", Action: ProfileManagerAction, Close: CloseAfterAction},
		{ID: "button:shutdown", Label: "Shutdown", Key: "ctrl+x", Action: ShutdownAction, Close: CloseAfterAction},
	}
	r := &Registry{
		nodes:  make(map[string]*Node, len(defs)),
		groups: make(map[string][]*Node),
	}
	for _, node := range defs {
		r.nodes[node.ID] = node
		group, _ := parentKey(node.ID)
		r.groups[group] = append(r.groups[group], node)
	}
	return r
}

// Find locates a node by ID.
func (r *Registry) Find(id string) (*Node, bool) {
	node, ok := r.nodes[id]
	return node, ok
}

// Group lists the nodes registered under a prefix ("entry" or "button") in
// registration order.
func (r *Registry) Group(name string) []*Node {
	return append([]*Node(nil), r.groups[name]...)
}

// ByKey returns the node bound to a key chord.
func (r *Registry) ByKey(key string) (*Node, bool) {
	if key == "" {
		return nil, false
	}
	for _, node := range r.nodes {
		if node.Key == key {
			return node, true
		}
	}
	return nil, false
}

func parentKey(id string) (string, string) {
	idx := strings.LastIndex(id, ":")
	if idx < 0 {
		return "", id
	}
	return id[:idx], id[idx+1:]
}
