package ui

import (
	"time"

	"github.com/atomicstack/arcmenu/internal/history"
	"github.com/atomicstack/arcmenu/internal/launch"
	"github.com/atomicstack/arcmenu/internal/logging/events"
	"github.com/atomicstack/arcmenu/internal/menu"
	"github.com/atomicstack/arcmenu/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

type closeMsg struct {
	seq    uint64
	reason string
}

// runNode executes a registered action for entry and schedules the close
// the action asks for. The close is armed before the action reports back.
func (m *Model) runNode(node *launch.Node, entry menu.Entry) tea.Cmd {
	if node == nil {
		return nil
	}
	cmds := []tea.Cmd{m.bus.Execute(m.actionContext(), command.FromNode(node, entry))}
	behavior := m.settings.Behavior()
	switch node.Close {
	case launch.CloseAfterLaunch:
		cmds = append(cmds, m.scheduleClose(behavior.LaunchClose, node.ID))
	case launch.CloseAfterAction:
		cmds = append(cmds, m.scheduleClose(behavior.ActionClose, node.ID))
	}
	return tea.Batch(cmds...)
}

func (m *Model) launchTile(entry menu.Entry) tea.Cmd {
	node, ok := m.registry.Find("entry:launch")
	if !ok {
		return nil
	}
	return m.runNode(node, entry)
}

func (m *Model) launchSelected() tea.Cmd {
	tile, ok := m.grid.Selected()
	if !ok {
		return nil
	}
	return m.launchTile(tile.Entry)
}

func (m *Model) runButton(node *launch.Node) tea.Cmd {
	if node.ID == "button:search" && !m.query.Active() {
		m.setInfo("Type something to search the web for")
		return nil
	}
	return m.runNode(node, menu.Entry{})
}

func (m *Model) scheduleClose(d time.Duration, reason string) tea.Cmd {
	m.closing = true
	m.closeSeq++
	return m.after(d, closeMsg{seq: m.closeSeq, reason: reason})
}

func (m *Model) cancelClose() {
	if !m.closing {
		return
	}
	m.closing = false
	m.closeSeq++
}

func (m *Model) quit(reason string) tea.Cmd {
	m.closePrompt("quit")
	events.App.Quit(reason)
	return tea.Quit
}

func (m *Model) handleCloseMsg(msg tea.Msg) tea.Cmd {
	closing, ok := msg.(closeMsg)
	if !ok {
		return nil
	}
	if !m.closing || closing.seq != m.closeSeq {
		return nil
	}
	return m.quit(closing.reason)
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(launch.ActionResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		// a failed action keeps the launcher open so the error is visible
		m.cancelClose()
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	if result.Info != "" && (m.verbose || !m.closing) {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	switch result.ID {
	case "entry:launch", "entry:terminal":
		return m.recordLaunch(result.Entry)
	}
	return nil
}

// recordLaunch adds a started entry to the history and refreshes the recent
// category. It writes inline so a pending close cannot drop the record.
func (m *Model) recordLaunch(entry menu.Entry) tea.Cmd {
	store := m.history
	opts := m.settings.History()
	if store == nil || !opts.Enabled {
		return nil
	}
	if _, err := store.Record(entry); err != nil {
		return nil
	}
	entries, err := store.Entries(opts.Limit)
	if err != nil {
		events.History.Error(err)
		return nil
	}
	m.recent = entries
	m.sidebar.SetNames(m.displayNames())
	m.clampSidebarOffset(m.layout().bodyHeight)
	if m.selection.Current == history.Category && !m.query.Active() {
		return m.showCategory(history.Category)
	}
	return nil
}

func (m *Model) handleBlurMsg(msg tea.Msg) tea.Cmd {
	if m.suppressBlurClose || !m.settings.Behavior().CloseOnBlur {
		return nil
	}
	return m.quit("blur")
}
