package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

const wheelStep = 1

// handleMouseMsg maps pointer motion onto the category hover state machine
// and clicks onto activation, launching and the context prompt.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	h := m.hitTest(ev.X, ev.Y)
	if m.prompt != nil {
		return m.handlePromptMouse(ev, h)
	}
	trackCmd := m.trackPointer(h)
	if ev.Action != tea.MouseActionPress {
		return trackCmd
	}
	var cmd tea.Cmd
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.scroll(h, -wheelStep)
	case tea.MouseButtonWheelDown:
		m.scroll(h, wheelStep)
	case tea.MouseButtonLeft:
		cmd = m.click(h)
	case tea.MouseButtonRight:
		if h.area == areaGrid && h.tile >= 0 {
			m.grid.Select(h.tile)
			m.openPrompt(m.grid.Tiles[h.tile].Entry)
		}
	case tea.MouseButtonMiddle:
		cmd = m.quit("middle-click")
	}
	return tea.Batch(trackCmd, cmd)
}

// trackPointer feeds the pointer position to the selection state machine,
// arming the hover or restore timer when it asks for one.
func (m *Model) trackPointer(h hit) tea.Cmd {
	switch h.area {
	case areaSidebar:
		if h.category == "" {
			m.selection.SurfaceEnter()
			m.selection.PointerLeaveRow()
			return nil
		}
		if token, armed := m.selection.PointerEnter(h.category); armed {
			return m.after(m.settings.Behavior().HoverDelay, hoverTimerMsg{token: token})
		}
		return nil
	case areaGrid:
		m.hoverTile = h.tile
		m.selection.SurfaceEnter()
		m.selection.PointerLeaveRow()
		return nil
	}
	m.hoverTile = -1
	if !m.selection.InSurface {
		return nil
	}
	if token, armed := m.selection.SurfaceLeave(); armed {
		return m.after(m.settings.Behavior().RestoreDelay, restoreTimerMsg{token: token})
	}
	return nil
}

func (m *Model) click(h hit) tea.Cmd {
	switch h.area {
	case areaSidebar:
		return m.activateCategory(h.category)
	case areaGrid:
		if h.tile < 0 {
			return nil
		}
		m.grid.Select(h.tile)
		return m.launchTile(m.grid.Tiles[h.tile].Entry)
	case areaBottom:
		if h.button == "" {
			return nil
		}
		node, ok := m.registry.Find(h.button)
		if !ok {
			return nil
		}
		return m.runButton(node)
	}
	return nil
}

func (m *Model) scroll(h hit, delta int) {
	switch h.area {
	case areaSidebar:
		m.scrollSidebar(delta)
	case areaGrid:
		m.grid.Scroll(delta, m.layout().visibleRows)
	}
}
