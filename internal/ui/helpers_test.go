package ui

import (
	"testing"

	"github.com/atomicstack/arcmenu/internal/launch"
	"github.com/atomicstack/arcmenu/internal/menu"
	"github.com/atomicstack/arcmenu/internal/settings"
	"github.com/atomicstack/arcmenu/internal/sysinfo"
	"github.com/atomicstack/arcmenu/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

// With an 80x24 terminal and icons disabled the body starts at row 3, the
// sidebar spans columns 0-21, tiles are 14 columns wide from column 23 and
// two rows tall.
const (
	testBodyTop  = 3
	testGridLeft = 23
	testTileW    = 14
	testTileH    = 2
)

type launchRecorder struct {
	started [][]string
	copied  []string
	err     error
}

func (r *launchRecorder) start(argv []string) error {
	r.started = append(r.started, append([]string(nil), argv...))
	return r.err
}

func (r *launchRecorder) copy(text string) error {
	r.copied = append(r.copied, text)
	return nil
}

func testCategories() *menu.CategoryMap {
	c := menu.NewCategoryMap()
	c.Add("Internet", menu.Entry{Name: "Firefox", Exec: "firefox %u", Comment: "Web browser"})
	c.Add("Internet", menu.Entry{Name: "Transmission", Exec: "transmission-gtk"})
	c.Add("System", menu.Entry{Name: "Htop", Exec: "htop", Terminal: true, Comment: "Process viewer"})
	c.Add("System", menu.Entry{Name: "Firewall", Exec: "gufw"})
	c.Add("Fun", menu.Entry{Name: "Mines", Exec: "gnomine", Comment: "Find the hidden fire"})
	return c
}

func newTestHarness(t *testing.T, mutate func(*Options)) (*Harness, *launchRecorder) {
	t.Helper()
	testutil.CaptureLogs(t)
	rec := &launchRecorder{}
	opts := Options{
		Settings:   settings.Defaults(),
		Categories: testCategories(),
		Width:      80,
		Height:     24,
		Launcher:   launch.New(launch.Options{TerminalMode: launch.ModeWrapper, Start: rec.start}),
		Host:       sysinfo.Info{Hostname: "box", OS: "Debian GNU/Linux 12", Kernel: "6.1.0"},
		Copy:       rec.copy,
	}
	if mutate != nil {
		mutate(&opts)
	}
	h := NewHarness(NewModel(opts))
	h.Init()
	return h, rec
}

func tileNames(m *Model) []string {
	names := make([]string, 0, len(m.grid.Tiles))
	for _, tile := range m.grid.Tiles {
		names = append(names, tile.Entry.Name)
	}
	return names
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func press(x, y int, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: button}
}

// sidebarRow returns a point on the sidebar row of the idx-th category.
func sidebarRow(idx int) (int, int) {
	return 5, testBodyTop + idx
}

// tilePoint returns a point on the tile at viewport row, col.
func tilePoint(row, col int) (int, int) {
	return testGridLeft + col*testTileW + 2, testBodyTop + row*testTileH
}

func typeText(h *Harness, text string) {
	for _, r := range text {
		if r == ' ' {
			h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}
