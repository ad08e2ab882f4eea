package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/arcmenu/internal/icon"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	headerRows    = 2
	sidebarWidth  = 22
	tileMinWidth  = 12
	tileLabelRows = 2
	buttonGap     = 1
)

// layout is the screen geometry shared by the renderer and mouse hit
// testing. Rows and columns are zero-based terminal cells.
type layout struct {
	width       int
	height      int
	bodyTop     int
	bodyHeight  int
	sidebar     int
	gridLeft    int
	gridWidth   int
	tileWidth   int
	tileHeight  int
	iconRows    int
	cols        int
	visibleRows int
	statusRow   int
	promptRow   int
	buttonRow   int
	footerRow   int
	buttons     []buttonSpan
}

type buttonSpan struct {
	id    string
	label string
	from  int
	to    int
}

func (m *Model) layout() layout {
	l := layout{width: m.width, height: m.height}
	if l.width <= 0 {
		l.width = defaultWidth
	}
	if l.height <= 0 {
		l.height = defaultHeight
	}
	bottom := 3
	if m.showFooter {
		bottom++
	}
	l.bodyTop = headerRows + 1
	l.bodyHeight = l.height - l.bodyTop - bottom
	if l.bodyHeight < 1 {
		l.bodyHeight = 1
	}
	l.statusRow = l.bodyTop + l.bodyHeight
	l.promptRow = l.statusRow + 1
	l.buttonRow = l.promptRow + 1
	l.footerRow = -1
	if m.showFooter {
		l.footerRow = l.buttonRow + 1
	}

	l.sidebar = sidebarWidth
	if l.sidebar > l.width/2 {
		l.sidebar = l.width / 2
	}
	l.gridLeft = l.sidebar + 1
	l.gridWidth = l.width - l.gridLeft
	if l.gridWidth < 1 {
		l.gridWidth = 1
	}

	iconCols, iconRows := icon.CellSize(m.iconSize())
	l.iconRows = iconRows
	l.tileWidth = iconCols
	if l.tileWidth < tileMinWidth {
		l.tileWidth = tileMinWidth
	}
	l.tileWidth += 2
	l.tileHeight = iconRows + tileLabelRows
	l.cols = l.gridWidth / l.tileWidth
	if l.cols < 1 {
		l.cols = 1
	}
	l.visibleRows = l.bodyHeight / l.tileHeight
	if l.visibleRows < 1 {
		l.visibleRows = 1
	}
	l.buttons = m.buttonSpans()
	return l
}

func (m *Model) buttonSpans() []buttonSpan {
	nodes := m.registry.Group("button")
	spans := make([]buttonSpan, 0, len(nodes))
	x := 0
	for _, node := range nodes {
		label := fmt.Sprintf(" %s %s ", keyHint(node.Key), node.Label)
		w := lipgloss.Width(label)
		spans = append(spans, buttonSpan{id: node.ID, label: label, from: x, to: x + w})
		x += w + buttonGap
	}
	return spans
}

// keyHint abbreviates ctrl+g as ^G.
func keyHint(key string) string {
	if rest, ok := strings.CutPrefix(key, "ctrl+"); ok {
		return "^" + strings.ToUpper(rest)
	}
	return key
}

type area int

const (
	areaNone area = iota
	areaHeader
	areaSidebar
	areaGrid
	areaBottom
)

// hit describes what lies under a terminal cell.
type hit struct {
	area     area
	category string
	tile     int
	button   string
	choice   int
}

func (m *Model) hitTest(x, y int) hit {
	l := m.layout()
	h := hit{tile: -1, choice: -1}
	switch {
	case y < 0 || x < 0 || x >= l.width || y >= l.height:
		return h
	case y < l.bodyTop:
		h.area = areaHeader
	case y < l.bodyTop+l.bodyHeight:
		row := y - l.bodyTop
		if x < l.sidebar {
			h.area = areaSidebar
			idx := m.sidebarOffset + row
			if idx >= 0 && idx < len(m.sidebar.Names) {
				h.category = m.sidebar.Names[idx]
			}
			return h
		}
		if x < l.gridLeft {
			h.area = areaSidebar
			return h
		}
		h.area = areaGrid
		if m.prompt != nil {
			h.choice = m.prompt.choiceAt(row)
			return h
		}
		col := (x - l.gridLeft) / l.tileWidth
		if idx, ok := m.grid.TileAt(row/l.tileHeight, col); ok && row/l.tileHeight < l.visibleRows {
			h.tile = idx
		}
	default:
		h.area = areaBottom
		if y == l.buttonRow {
			for _, span := range l.buttons {
				if x >= span.from && x < span.to {
					h.button = span.id
					break
				}
			}
		}
	}
	return h
}

// inSurface reports whether a hit is over the sidebar or the grid.
func (h hit) inSurface() bool {
	return h.area == areaSidebar || h.area == areaGrid
}

func (m *Model) ensureSidebarVisible() {
	rows := m.layout().bodyHeight
	cursor := m.sidebar.Cursor
	if cursor < m.sidebarOffset {
		m.sidebarOffset = cursor
	}
	if cursor >= m.sidebarOffset+rows {
		m.sidebarOffset = cursor - rows + 1
	}
	m.clampSidebarOffset(rows)
}

func (m *Model) scrollSidebar(delta int) {
	m.sidebarOffset += delta
	m.clampSidebarOffset(m.layout().bodyHeight)
}

func (m *Model) clampSidebarOffset(rows int) {
	maxOffset := len(m.sidebar.Names) - rows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.sidebarOffset > maxOffset {
		m.sidebarOffset = maxOffset
	}
	if m.sidebarOffset < 0 {
		m.sidebarOffset = 0
	}
}

// syncGrid applies the current geometry to the grid.
func (m *Model) syncGrid() {
	l := m.layout()
	m.grid.SetCols(l.cols)
	m.grid.EnsureCursorVisible(l.visibleRows)
}
