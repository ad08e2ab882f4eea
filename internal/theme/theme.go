package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/atomicstack/arcmenu/internal/settings"
	"github.com/charmbracelet/lipgloss"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Hostname          *lipgloss.Style
	OS                *lipgloss.Style
	Kernel            *lipgloss.Style
	Border            *lipgloss.Style
	Sidebar           *lipgloss.Style
	SidebarItem       *lipgloss.Style
	SidebarHover      *lipgloss.Style
	SidebarSelected   *lipgloss.Style
	SidebarIndicator  *lipgloss.Style
	SidebarCursor     *lipgloss.Style
	Tile              *lipgloss.Style
	TileHover         *lipgloss.Style
	TileSelected      *lipgloss.Style
	Button            *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
	PromptTitle       *lipgloss.Style
	PromptItem        *lipgloss.Style
	PromptSelected    *lipgloss.Style
}

var defaultStyles = FromColors(settings.Defaults().Colors())

// Default exposes the style set built from the default palette.
func Default() *Styles {
	return &defaultStyles
}

// New builds styles from the configured palette.
func New(colors settings.Colors) *Styles {
	s := FromColors(colors)
	return &s
}

// FromColors maps the palette onto the UI styles. Colours that cannot be
// parsed fall back to terminal defaults.
func FromColors(c settings.Colors) Styles {
	text := Color(c.TextNormal, "#D8DEE9")
	selectedText := Color(c.SelectedText, "#ECEFF4")
	hover := Color(c.HoverBackground, "#1a1a1a")
	selected := Color(c.SelectedBackground, "#333333")
	categories := Color(c.CategoriesBackground, "#000000")
	border := Color(c.Border, "#1a1a1a")
	accent := Color(c.TextHeaderHostname, "#88C0D0")

	return Styles{
		Hostname: ptr(lipgloss.NewStyle().Foreground(accent).Bold(true)),
		OS:       ptr(lipgloss.NewStyle().Foreground(Color(c.TextHeaderOS, "#D8DEE9"))),
		Kernel:   ptr(lipgloss.NewStyle().Foreground(Color(c.TextHeaderKernel, "#D0883A"))),
		Border:   ptr(lipgloss.NewStyle().Foreground(border)),
		Sidebar: ptr(
			lipgloss.NewStyle().Background(categories),
		),
		SidebarItem: ptr(
			lipgloss.NewStyle().Foreground(text),
		),
		SidebarHover: ptr(
			lipgloss.NewStyle().Foreground(text).Background(hover),
		),
		SidebarSelected: ptr(
			lipgloss.NewStyle().Foreground(selectedText).Background(selected).Bold(true),
		),
		SidebarIndicator: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		),
		SidebarCursor: ptr(
			lipgloss.NewStyle().Foreground(accent),
		),
		Tile: ptr(
			lipgloss.NewStyle().Foreground(text),
		),
		TileHover: ptr(
			lipgloss.NewStyle().Foreground(text).Background(hover),
		),
		TileSelected: ptr(
			lipgloss.NewStyle().Foreground(selectedText).Background(selected).Bold(true),
		),
		Button: ptr(
			lipgloss.NewStyle().
				Foreground(Color(c.ButtonText, "#ECEFF4")).
				Background(Color(c.ButtonBackground, "#000000")),
		),
		Error: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		),
		Info: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		Footer: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		),
		Filter: ptr(
			lipgloss.NewStyle().Foreground(text),
		),
		FilterPrompt: ptr(
			lipgloss.NewStyle().Foreground(accent).Bold(true),
		),
		FilterPlaceholder: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		),
		Cursor: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(accent).Blink(true),
		),
		PromptTitle: ptr(
			lipgloss.NewStyle().Foreground(accent).Bold(true),
		),
		PromptItem: ptr(
			lipgloss.NewStyle().Foreground(text),
		),
		PromptSelected: ptr(
			lipgloss.NewStyle().Foreground(selectedText).Background(selected).Bold(true),
		),
	}
}

// Color converts a CSS-style colour (#rgb, #rrggbb, rgb(), rgba()) into a
// terminal colour. Translucent rgba values are blended over black, which is
// what a translucent popup over a dark desktop looks like.
func Color(value, fallback string) lipgloss.Color {
	if hex, ok := ParseHex(value); ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(fallback)
}

// ParseHex normalises value to #rrggbb.
func ParseHex(value string) (string, bool) {
	v := strings.TrimSpace(strings.ToLower(value))
	switch {
	case strings.HasPrefix(v, "#"):
		return parseHash(v[1:])
	case strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		return parseFunc(v[len("rgba("):len(v)-1], 4)
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseFunc(v[len("rgb("):len(v)-1], 3)
	}
	return "", false
}

func parseHash(digits string) (string, bool) {
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(digits) != 6 {
		return "", false
	}
	if _, err := strconv.ParseUint(digits, 16, 32); err != nil {
		return "", false
	}
	return "#" + digits, true
}

func parseFunc(body string, want int) (string, bool) {
	parts := strings.Split(body, ",")
	if len(parts) != want {
		return "", false
	}
	var rgb [3]float64
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return "", false
		}
		rgb[i] = clampChannel(n)
	}
	alpha := 1.0
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return "", false
		}
		alpha = math.Max(0, math.Min(1, a))
	}
	return fmt.Sprintf("#%02x%02x%02x",
		int(math.Round(rgb[0]*alpha)),
		int(math.Round(rgb[1]*alpha)),
		int(math.Round(rgb[2]*alpha))), true
}

func clampChannel(n float64) float64 {
	return math.Max(0, math.Min(255, n))
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
