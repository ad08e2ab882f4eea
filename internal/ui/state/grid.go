package state

import (
	"github.com/atomicstack/arcmenu/internal/icon"
	"github.com/atomicstack/arcmenu/internal/menu"
)

// Tile is one rendered entry in the application grid.
type Tile struct {
	Entry menu.Entry
	Icon  *icon.Icon
}

// Grid holds the tiles of the category on display, a keyboard cursor and a
// row-based viewport.
type Grid struct {
	Category  string
	Tiles     []Tile
	Cursor    int
	Cols      int
	Offset    int
	Finalized bool
}

// NewGrid returns an empty grid laid out in cols columns.
func NewGrid(cols int) *Grid {
	g := &Grid{Cursor: -1}
	g.SetCols(cols)
	return g
}

// Reset clears the grid for category.
func (g *Grid) Reset(category string) {
	g.Category = category
	g.Tiles = nil
	g.Cursor = -1
	g.Offset = 0
	g.Finalized = false
}

// SetCols changes the column count, keeping at least one.
func (g *Grid) SetCols(cols int) {
	if cols < 1 {
		cols = 1
	}
	g.Cols = cols
}

// Rows returns the number of rows the tiles occupy.
func (g *Grid) Rows() int {
	if len(g.Tiles) == 0 {
		return 0
	}
	return (len(g.Tiles) + g.Cols - 1) / g.Cols
}

// Selected returns the tile under the cursor.
func (g *Grid) Selected() (Tile, bool) {
	if g.Cursor < 0 || g.Cursor >= len(g.Tiles) {
		return Tile{}, false
	}
	return g.Tiles[g.Cursor], true
}

// Select moves the cursor to index when it names a tile.
func (g *Grid) Select(index int) bool {
	if index < 0 || index >= len(g.Tiles) || index == g.Cursor {
		return false
	}
	g.Cursor = index
	return true
}

// MoveDown moves the cursor one row down. Nothing happens without a
// selection or past the last tile.
func (g *Grid) MoveDown() bool {
	if g.Cursor < 0 {
		return false
	}
	return g.Select(g.Cursor + g.Cols)
}

// MoveUp moves the cursor one row up.
func (g *Grid) MoveUp() bool {
	if g.Cursor < 0 {
		return false
	}
	return g.Select(g.Cursor - g.Cols)
}

// MoveRight advances the cursor, selecting the first tile when nothing is
// selected yet.
func (g *Grid) MoveRight() bool {
	if g.Cursor < 0 {
		return g.Select(0)
	}
	return g.Select(g.Cursor + 1)
}

// MoveLeft steps the cursor back, wrapping from the first tile (or from no
// selection) to the last one.
func (g *Grid) MoveLeft() bool {
	if g.Cursor > 0 {
		return g.Select(g.Cursor - 1)
	}
	return g.Select(len(g.Tiles) - 1)
}

// Scroll moves the viewport by delta rows within visibleRows.
func (g *Grid) Scroll(delta, visibleRows int) bool {
	old := g.Offset
	g.Offset += delta
	g.clampOffset(visibleRows)
	return g.Offset != old
}

// EnsureCursorVisible adjusts the viewport so the cursor row is inside the
// visibleRows window.
func (g *Grid) EnsureCursorVisible(visibleRows int) {
	if len(g.Tiles) == 0 {
		g.Cursor = -1
		g.Offset = 0
		return
	}
	if g.Cursor >= len(g.Tiles) {
		g.Cursor = len(g.Tiles) - 1
	}
	g.clampOffset(visibleRows)
	if g.Cursor < 0 || visibleRows <= 0 {
		return
	}
	row := g.Cursor / g.Cols
	if row < g.Offset {
		g.Offset = row
	}
	if row > g.Offset+visibleRows-1 {
		g.Offset = row - visibleRows + 1
	}
	g.clampOffset(visibleRows)
}

// TileAt maps a viewport position (row within the window, column) to a tile
// index.
func (g *Grid) TileAt(row, col int) (int, bool) {
	if row < 0 || col < 0 || col >= g.Cols {
		return -1, false
	}
	index := (g.Offset+row)*g.Cols + col
	if index >= len(g.Tiles) {
		return -1, false
	}
	return index, true
}

func (g *Grid) clampOffset(visibleRows int) {
	maxOffset := g.Rows() - visibleRows
	if visibleRows <= 0 || maxOffset < 0 {
		maxOffset = 0
	}
	if g.Offset > maxOffset {
		g.Offset = maxOffset
	}
	if g.Offset < 0 {
		g.Offset = 0
	}
}
