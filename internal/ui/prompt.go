package ui

import (
	"github.com/atomicstack/arcmenu/internal/launch"
	"github.com/atomicstack/arcmenu/internal/logging/events"
	"github.com/atomicstack/arcmenu/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

const cancelLabel = "Cancel"

// contextPrompt is the per-entry action list opened with a right click.
// While it is open losing focus does not close the launcher.
type contextPrompt struct {
	entry   menu.Entry
	choices []promptChoice
	cursor  int
}

type promptChoice struct {
	label string
	node  *launch.Node
}

// choiceAt maps a row of the grid area to a choice index. Row 0 holds the
// title.
func (p *contextPrompt) choiceAt(row int) int {
	idx := row - 1
	if idx < 0 || idx >= len(p.choices) {
		return -1
	}
	return idx
}

func (m *Model) openPrompt(entry menu.Entry) {
	nodes := m.registry.Group("entry")
	choices := make([]promptChoice, 0, len(nodes)+1)
	for _, node := range nodes {
		choices = append(choices, promptChoice{label: node.Label, node: node})
	}
	choices = append(choices, promptChoice{label: cancelLabel})
	m.prompt = &contextPrompt{entry: entry, choices: choices}
	m.suppressBlurClose = true
	m.hoverTile = -1
	events.Prompt.Open(entry.Name)
}

// closePrompt dismisses the prompt. Every path out of the prompt ends here
// so blur handling is restored.
func (m *Model) closePrompt(reason string) {
	if m.prompt == nil {
		m.suppressBlurClose = false
		return
	}
	m.prompt = nil
	m.suppressBlurClose = false
	events.Prompt.Close(reason)
}

type promptResult struct {
	Cmd  tea.Cmd
	Info string
	Err  error
}

// withPrompt centralises the common prompt flow: close the prompt, reset the
// status line, and execute the provided action. The action can return a
// promptResult to control follow-up behaviour (command to run,
// informational message, or error).
func (m *Model) withPrompt(reason string, action func() promptResult) tea.Cmd {
	m.closePrompt(reason)
	m.forceClearInfo()
	m.errMsg = ""
	if action == nil {
		return nil
	}
	result := action()
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		return nil
	}
	if result.Info != "" {
		m.setInfo(result.Info)
	}
	return result.Cmd
}

func (m *Model) choosePrompt(idx int) tea.Cmd {
	p := m.prompt
	if p == nil || idx < 0 || idx >= len(p.choices) {
		return nil
	}
	choice := p.choices[idx]
	return m.withPrompt(choice.label, func() promptResult {
		if choice.node == nil {
			return promptResult{}
		}
		return promptResult{Cmd: m.runNode(choice.node, p.entry)}
	})
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	p := m.prompt
	switch msg.String() {
	case "esc":
		m.closePrompt("esc")
		return nil
	case "ctrl+c":
		m.closePrompt("quit")
		return m.quit("ctrl+c")
	case "enter":
		return m.choosePrompt(p.cursor)
	case "up", "shift+tab", "ctrl+p":
		p.cursor = (p.cursor - 1 + len(p.choices)) % len(p.choices)
	case "down", "tab", "ctrl+n":
		p.cursor = (p.cursor + 1) % len(p.choices)
	}
	return nil
}

func (m *Model) handlePromptMouse(ev tea.MouseMsg, h hit) tea.Cmd {
	p := m.prompt
	if ev.Action == tea.MouseActionMotion {
		if h.choice >= 0 {
			p.cursor = h.choice
		}
		return nil
	}
	if ev.Action != tea.MouseActionPress {
		return nil
	}
	if ev.Button == tea.MouseButtonLeft && h.choice >= 0 {
		return m.choosePrompt(h.choice)
	}
	if ev.Button == tea.MouseButtonLeft || ev.Button == tea.MouseButtonRight {
		m.closePrompt("dismiss")
	}
	return nil
}
