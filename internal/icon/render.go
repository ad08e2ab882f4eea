package icon

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"
	alphaCut  = 0x8000
)

// CellSize converts an icon size in pixels into the terminal cells used to
// draw it. Each cell shows two vertical pixels.
func CellSize(size int) (cols, rows int) {
	if size <= 0 {
		return 0, 0
	}
	cols = size / 4
	if cols < 2 {
		cols = 2
	}
	rows = (cols + 1) / 2
	return cols, rows
}

// renderHalfBlocks draws img, which must already be cols×rows*2 pixels, as
// rows of half-block characters. Transparent pixels stay uncoloured.
func renderHalfBlocks(img image.Image, cols, rows int) []string {
	b := img.Bounds()
	lines := make([]string, rows)
	for row := 0; row < rows; row++ {
		var sb strings.Builder
		for col := 0; col < cols; col++ {
			top := img.At(b.Min.X+col, b.Min.Y+row*2)
			bottom := img.At(b.Min.X+col, b.Min.Y+row*2+1)
			sb.WriteString(cell(top, bottom))
		}
		lines[row] = sb.String()
	}
	return lines
}

func cell(top, bottom color.Color) string {
	topHex, topOK := hex(top)
	bottomHex, bottomOK := hex(bottom)
	switch {
	case topOK && bottomOK:
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(topHex)).
			Background(lipgloss.Color(bottomHex)).
			Render(upperHalf)
	case topOK:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(topHex)).Render(upperHalf)
	case bottomOK:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(bottomHex)).Render(lowerHalf)
	}
	return " "
}

// hex returns the colour as #rrggbb, or false when it is mostly transparent.
func hex(c color.Color) (string, bool) {
	r, g, b, a := c.RGBA()
	if a < alphaCut {
		return "", false
	}
	// un-premultiply
	r = r * 0xffff / a
	g = g * 0xffff / a
	b = b * 0xffff / a
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8), true
}

var placeholderStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#ECEFF4")).
	Background(lipgloss.Color("#4C566A")).
	Bold(true)

// placeholder draws a solid block with the first letter of label centred,
// used when no image could be loaded.
func placeholder(label string, cols, rows int) []string {
	letter := "?"
	for _, r := range strings.TrimSpace(label) {
		letter = strings.ToUpper(string(r))
		break
	}
	lines := make([]string, rows)
	mid := rows / 2
	for row := range lines {
		text := strings.Repeat(" ", cols)
		if row == mid {
			left := (cols - 1) / 2
			text = strings.Repeat(" ", left) + letter + strings.Repeat(" ", cols-left-1)
		}
		lines[row] = placeholderStyle.Render(text)
	}
	return lines
}
