package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

const promptKey = "ctrl+k"

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.prompt != nil {
		return m.handlePromptKey(keyMsg)
	}
	if node, ok := m.registry.ByKey(keyMsg.String()); ok {
		return m.runButton(node)
	}
	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return m.quit(keyMsg.String())
	case "enter":
		return m.launchSelected()
	case "alt+enter":
		return m.activateCategory(m.sidebar.Name())
	case promptKey:
		if tile, ok := m.grid.Selected(); ok {
			m.openPrompt(tile.Entry)
		}
		return nil
	case "tab":
		m.sidebar.Move(1)
		m.ensureSidebarVisible()
		return nil
	case "shift+tab":
		m.sidebar.Move(-1)
		m.ensureSidebarVisible()
		return nil
	case "ctrl+n":
		return m.activateRelative(1)
	case "ctrl+p":
		return m.activateRelative(-1)
	}
	if m.handleGridKey(keyMsg) {
		return nil
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	return nil
}

// handleGridKey moves the tile cursor. It reports whether the key belongs to
// grid navigation.
func (m *Model) handleGridKey(msg tea.KeyMsg) bool {
	g := m.grid
	rows := m.layout().visibleRows
	switch msg.Type {
	case tea.KeyUp:
		g.MoveUp()
	case tea.KeyDown:
		g.MoveDown()
	case tea.KeyLeft:
		g.MoveLeft()
	case tea.KeyRight:
		g.MoveRight()
	case tea.KeyPgUp:
		if g.Cursor >= 0 {
			g.Select(max(g.Cursor-rows*g.Cols, g.Cursor%g.Cols))
		}
		g.Scroll(-rows, rows)
	case tea.KeyPgDown:
		if g.Cursor >= 0 {
			g.Select(min(g.Cursor+rows*g.Cols, len(g.Tiles)-1))
		}
		g.Scroll(rows, rows)
	case tea.KeyHome:
		g.Select(0)
	case tea.KeyEnd:
		g.Select(len(g.Tiles) - 1)
	default:
		return false
	}
	m.hoverTile = -1
	g.EnsureCursorVisible(rows)
	return true
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncGrid()
	m.ensureSidebarVisible()
	return nil
}
