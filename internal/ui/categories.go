package ui

import (
	"strings"

	"github.com/atomicstack/arcmenu/internal/icon"
	"github.com/atomicstack/arcmenu/internal/logging/events"
	"github.com/atomicstack/arcmenu/internal/menu"
	uistate "github.com/atomicstack/arcmenu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

const (
	sidebarIconSize = 8
	profileIconSize = 16
	iconWorkers     = 4
)

type hoverTimerMsg struct {
	token uint64
}

type restoreTimerMsg struct {
	token uint64
}

type populateBatchMsg struct {
	batch uistate.Batch
	icons []*icon.Icon
}

type sidebarIconsMsg struct {
	icons map[string]*icon.Icon
}

type profileLoadedMsg struct {
	path string
	icon *icon.Icon
}

// showCategory starts populating the grid with category. Any population
// still in flight becomes stale.
func (m *Model) showCategory(category string) tea.Cmd {
	batch := m.populator.Start(category, m.entriesFor(category))
	m.bestMatch = -1
	m.hoverTile = -1
	return m.populateCmd(batch)
}

func (m *Model) showResults(results []menu.Entry) tea.Cmd {
	batch := m.populator.Start(uistate.SearchCategory, results)
	m.bestMatch = -1
	m.hoverTile = -1
	return m.populateCmd(batch)
}

// refreshDisplay shows the displayed category unless a search owns the grid.
func (m *Model) refreshDisplay() tea.Cmd {
	if m.query.Active() {
		return nil
	}
	return m.showCategory(m.selection.Current)
}

func (m *Model) populateCmd(batch uistate.Batch) tea.Cmd {
	resolver := m.resolver
	size := m.iconSize()
	return func() tea.Msg {
		return populateBatchMsg{batch: batch, icons: resolveIcons(resolver, batch.Entries, size)}
	}
}

// resolveIcons looks the icons of entries up concurrently. The result is
// index-aligned with entries.
func resolveIcons(resolver *icon.Resolver, entries []menu.Entry, size int) []*icon.Icon {
	if resolver == nil || size <= 0 || len(entries) == 0 {
		return nil
	}
	icons := make([]*icon.Icon, len(entries))
	var g errgroup.Group
	g.SetLimit(iconWorkers)
	for i, entry := range entries {
		name := entry.Icon
		if strings.TrimSpace(name) == "" {
			name = entry.Name
		}
		g.Go(func() error {
			icons[i] = resolver.Resolve(name, size)
			return nil
		})
	}
	_ = g.Wait()
	return icons
}

func (m *Model) handlePopulateBatchMsg(msg tea.Msg) tea.Cmd {
	batchMsg, ok := msg.(populateBatchMsg)
	if !ok {
		return nil
	}
	next, done := m.populator.Step(batchMsg.batch, batchMsg.icons)
	m.applyBestMatch()
	if done {
		return nil
	}
	return m.populateCmd(next)
}

// applyBestMatch moves the cursor onto the best search match once its tile
// has been appended.
func (m *Model) applyBestMatch() {
	if m.bestMatch < 0 || m.bestMatch >= len(m.grid.Tiles) {
		return
	}
	m.grid.Select(m.bestMatch)
	m.bestMatch = -1
	m.grid.EnsureCursorVisible(m.layout().visibleRows)
}

// activateCategory commits name as the selection. A running search is
// cleared so the category is shown.
func (m *Model) activateCategory(name string) tea.Cmd {
	if name == "" {
		return nil
	}
	m.selection.Activate(name)
	m.sidebar.Focus(name)
	m.ensureSidebarVisible()
	if m.query.Clear() {
		m.filterCursorDirty = true
		events.Filter.Cleared(name)
	}
	return m.showCategory(name)
}

func (m *Model) activateRelative(delta int) tea.Cmd {
	names := m.sidebar.Names
	if len(names) == 0 {
		return nil
	}
	idx := m.sidebar.IndexOf(m.selection.Selected)
	if idx < 0 {
		idx = 0
	} else {
		idx = (idx + delta + len(names)) % len(names)
	}
	return m.activateCategory(names[idx])
}

func (m *Model) handleHoverTimerMsg(msg tea.Msg) tea.Cmd {
	timer, ok := msg.(hoverTimerMsg)
	if !ok {
		return nil
	}
	if !m.selection.HoverExpired(timer.token) {
		return nil
	}
	return m.refreshDisplay()
}

func (m *Model) handleRestoreTimerMsg(msg tea.Msg) tea.Cmd {
	timer, ok := msg.(restoreTimerMsg)
	if !ok {
		return nil
	}
	if !m.selection.RestoreExpired(timer.token) {
		return nil
	}
	return m.refreshDisplay()
}

func (m *Model) loadSidebarIconsCmd() tea.Cmd {
	resolver := m.resolver
	if resolver == nil || len(m.sidebar.Names) == 0 {
		return nil
	}
	names := append([]string(nil), m.sidebar.Names...)
	return func() tea.Msg {
		icons := make([]*icon.Icon, len(names))
		var g errgroup.Group
		g.SetLimit(iconWorkers)
		for i, name := range names {
			g.Go(func() error {
				icons[i] = resolver.Resolve(menu.CategoryIcon(name), sidebarIconSize)
				return nil
			})
		}
		_ = g.Wait()
		out := make(map[string]*icon.Icon, len(names))
		for i, name := range names {
			out[name] = icons[i]
		}
		return sidebarIconsMsg{icons: out}
	}
}

func (m *Model) handleSidebarIconsMsg(msg tea.Msg) tea.Cmd {
	iconsMsg, ok := msg.(sidebarIconsMsg)
	if !ok {
		return nil
	}
	m.sidebarIcons = iconsMsg.icons
	return nil
}

func (m *Model) loadProfileCmd() tea.Cmd {
	resolver := m.resolver
	path := strings.TrimSpace(m.settings.Paths().ProfilePic)
	if resolver == nil || path == "" {
		return nil
	}
	return func() tea.Msg {
		return profileLoadedMsg{path: path, icon: resolver.Resolve(path, profileIconSize)}
	}
}

func (m *Model) handleProfileLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(profileLoadedMsg)
	if !ok {
		return nil
	}
	if loaded.path != strings.TrimSpace(m.settings.Paths().ProfilePic) {
		return nil
	}
	m.profile = loaded.icon
	return nil
}
