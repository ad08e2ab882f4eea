package state

import (
	"fmt"
	"testing"

	"github.com/atomicstack/arcmenu/internal/icon"
	"github.com/atomicstack/arcmenu/internal/menu"
	"github.com/google/go-cmp/cmp"
)

func makeEntries(n int) []menu.Entry {
	entries := make([]menu.Entry, n)
	for i := range entries {
		entries[i] = menu.Entry{Name: fmt.Sprintf("app%02d", i), Exec: fmt.Sprintf("app%02d", i)}
	}
	return entries
}

func gridWith(n, cols int) *Grid {
	g := NewGrid(cols)
	for _, e := range makeEntries(n) {
		g.Tiles = append(g.Tiles, Tile{Entry: e})
	}
	return g
}

func TestPopulatorBatchesInOrder(t *testing.T) {
	p := NewPopulator(NewGrid(4), 10)
	batch := p.Start("System", makeEntries(37))

	var sizes []int
	for {
		sizes = append(sizes, len(batch.Entries))
		next, done := p.Step(batch, nil)
		if done {
			break
		}
		batch = next
	}
	if diff := cmp.Diff([]int{10, 10, 10, 7}, sizes); diff != "" {
		t.Fatalf("unexpected batch sizes (-want +got):\n%s", diff)
	}
	g := p.Grid()
	if len(g.Tiles) != 37 || !g.Finalized || !p.Done() {
		t.Fatalf("expected 37 finalized tiles, got %d (finalized=%v)", len(g.Tiles), g.Finalized)
	}
	for i, tile := range g.Tiles {
		if want := fmt.Sprintf("app%02d", i); tile.Entry.Name != want {
			t.Fatalf("tile %d: expected %s, got %s", i, want, tile.Entry.Name)
		}
	}
}

func TestPopulatorIgnoresStaleGeneration(t *testing.T) {
	p := NewPopulator(NewGrid(4), 10)
	first := p.Start("System", makeEntries(25))
	next, _ := p.Step(first, nil)

	restart := p.Start("Internet", makeEntries(3))
	if restart.Gen == next.Gen {
		t.Fatal("expected new generation")
	}
	if _, done := p.Step(next, nil); !done {
		t.Fatal("expected stale batch to report done")
	}
	if len(p.Grid().Tiles) != 0 || p.Grid().Category != "Internet" {
		t.Fatalf("expected stale batch to append nothing, got %d tiles", len(p.Grid().Tiles))
	}
	if _, done := p.Step(restart, nil); !done {
		t.Fatal("expected three entries to fit one batch")
	}
	if len(p.Grid().Tiles) != 3 {
		t.Fatalf("expected 3 tiles, got %d", len(p.Grid().Tiles))
	}
}

func TestPopulatorAttachesIcons(t *testing.T) {
	p := NewPopulator(NewGrid(4), 0)
	if p.BatchSize != DefaultBatchSize {
		t.Fatalf("expected default batch size, got %d", p.BatchSize)
	}
	batch := p.Start("System", makeEntries(2))
	ic := &icon.Icon{Name: "app00", Size: 16}
	p.Step(batch, []*icon.Icon{ic})
	tiles := p.Grid().Tiles
	if tiles[0].Icon != ic || tiles[1].Icon != nil {
		t.Fatalf("unexpected icons %+v", tiles)
	}
}

func TestPopulatorEmptyCategory(t *testing.T) {
	p := NewPopulator(NewGrid(4), 10)
	batch := p.Start("Empty", nil)
	if _, done := p.Step(batch, nil); !done || !p.Grid().Finalized {
		t.Fatal("expected empty population to finish at once")
	}
}

func TestPopulatorIgnoresReplayedBatch(t *testing.T) {
	p := NewPopulator(NewGrid(4), 5)
	batch := p.Start("System", makeEntries(8))
	p.Step(batch, nil)
	p.Step(batch, nil)
	if len(p.Grid().Tiles) != 5 {
		t.Fatalf("expected replay ignored, got %d tiles", len(p.Grid().Tiles))
	}
}

func TestGridNavigation(t *testing.T) {
	g := gridWith(10, 4)
	if g.MoveDown() || g.MoveUp() {
		t.Fatal("expected vertical moves to need a selection")
	}
	if !g.MoveRight() || g.Cursor != 0 {
		t.Fatalf("expected first tile selected, got %d", g.Cursor)
	}
	if !g.MoveDown() || g.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", g.Cursor)
	}
	if !g.MoveDown() || g.Cursor != 8 {
		t.Fatalf("expected cursor 8, got %d", g.Cursor)
	}
	if g.MoveDown() {
		t.Fatal("expected no move past the last row")
	}
	if !g.MoveUp() || g.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", g.Cursor)
	}
	g.Cursor = 0
	if !g.MoveLeft() || g.Cursor != 9 {
		t.Fatalf("expected wrap to last tile, got %d", g.Cursor)
	}
	if g.MoveRight() {
		t.Fatal("expected no move past the last tile")
	}
}

func TestGridMoveLeftWithoutSelectionWraps(t *testing.T) {
	g := gridWith(3, 4)
	if !g.MoveLeft() || g.Cursor != 2 {
		t.Fatalf("expected last tile, got %d", g.Cursor)
	}
	empty := NewGrid(4)
	if empty.MoveLeft() || empty.MoveRight() {
		t.Fatal("expected no movement on empty grid")
	}
}

func TestGridViewport(t *testing.T) {
	g := gridWith(20, 4)
	g.Cursor = 17
	g.EnsureCursorVisible(2)
	if g.Offset != 3 {
		t.Fatalf("expected offset 3, got %d", g.Offset)
	}
	g.Cursor = 2
	g.EnsureCursorVisible(2)
	if g.Offset != 0 {
		t.Fatalf("expected offset 0, got %d", g.Offset)
	}
	if !g.Scroll(10, 2) || g.Offset != 3 {
		t.Fatalf("expected scroll clamped to 3, got %d", g.Offset)
	}
	if idx, ok := g.TileAt(1, 2); !ok || idx != 18 {
		t.Fatalf("expected tile 18, got %d (%v)", idx, ok)
	}
	if _, ok := g.TileAt(1, 4); ok {
		t.Fatal("expected column out of range")
	}
	if _, ok := g.TileAt(2, 0); ok {
		t.Fatal("expected row past the tiles to miss")
	}
}

func TestSidebarMoveWraps(t *testing.T) {
	var s Sidebar
	s.SetNames([]string{"System", "Internet", "Fun"})
	if !s.Move(-1) || s.Name() != "Fun" {
		t.Fatalf("expected wrap to Fun, got %q", s.Name())
	}
	if !s.Move(1) || s.Name() != "System" {
		t.Fatalf("expected wrap to System, got %q", s.Name())
	}
	s.Focus("Internet")
	s.SetNames([]string{"Internet", "Help"})
	if s.Cursor != 0 || s.Name() != "Internet" {
		t.Fatalf("expected cursor kept on Internet, got %d", s.Cursor)
	}
	if s.IndexOf("Fun") != -1 {
		t.Fatal("expected Fun removed")
	}
}
