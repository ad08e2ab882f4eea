package ui

import (
	"strings"

	"github.com/atomicstack/arcmenu/internal/backend"
	"github.com/atomicstack/arcmenu/internal/icon"
	"github.com/atomicstack/arcmenu/internal/logging/events"
	"github.com/atomicstack/arcmenu/internal/menu"
	"github.com/atomicstack/arcmenu/internal/settings"
	"github.com/atomicstack/arcmenu/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

type reloadedMsg struct {
	reloaded Reloaded
	err      error
}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	events.Reload.Event(evt.Kind.String(), evt.Path)
	if evt.Err != nil {
		m.backendLastErr = evt.Err.Error()
		events.Reload.Error(evt.Err)
		return nil
	}
	m.backendLastErr = ""
	switch evt.Kind {
	case backend.KindProfile:
		if m.resolver != nil {
			m.resolver.Forget(strings.TrimSpace(m.settings.Paths().ProfilePic))
		}
		return m.loadProfileCmd()
	case backend.KindMenu, backend.KindSettings:
		return m.reloadCmd()
	}
	return nil
}

func (m *Model) reloadCmd() tea.Cmd {
	loader := m.reload
	if loader == nil {
		return nil
	}
	return func() tea.Msg {
		reloaded, err := loader()
		return reloadedMsg{reloaded: reloaded, err: err}
	}
}

func (m *Model) handleReloadedMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(reloadedMsg)
	if !ok {
		return nil
	}
	if done.err != nil {
		m.backendLastErr = done.err.Error()
		events.Reload.Error(done.err)
		return nil
	}
	if m.backend != nil && len(done.reloaded.Targets) > 0 {
		m.backend.SetTargets(done.reloaded.Targets)
	}
	return m.rebuild(done.reloaded.Settings, done.reloaded.Categories)
}

// rebuild replaces settings and categories wholesale. The launcher and the
// icon resolver are rebuilt from the new settings, the selection returns to
// the first category and any search or prompt is dropped.
func (m *Model) rebuild(cfg settings.Config, categories *menu.CategoryMap) tea.Cmd {
	if cfg != nil {
		m.settings = cfg
		m.styles = theme.New(cfg.Colors())
		m.populator.BatchSize = cfg.Behavior().BatchSize
		launchOpts := cfg.Launch()
		m.launcher = m.launcher.Reconfigured(launchOpts.Terminal, launchOpts.TerminalMode)
		iconOpts := cfg.Icons()
		m.resolver = m.resolver.Reconfigured(icon.Options{
			Paths:  iconOpts.Paths,
			Theme:  iconOpts.Theme,
			Scaler: iconOpts.Scaler,
		})
	}
	if categories != nil {
		m.categories = categories
	}
	m.closePrompt("reload")
	if m.query.Clear() {
		m.filterCursorDirty = true
	}
	m.loadRecent()
	names := m.displayNames()
	m.sidebar.SetNames(names)
	first := ""
	if len(names) > 0 {
		first = names[0]
	}
	m.selection.Reset(first)
	m.sidebar.Focus(first)
	m.sidebarOffset = 0
	m.sidebarIcons = nil
	m.syncGrid()
	events.Reload.Rebuild(m.categories.Len())
	return tea.Batch(
		m.showCategory(first),
		m.loadSidebarIconsCmd(),
		m.loadProfileCmd(),
	)
}
