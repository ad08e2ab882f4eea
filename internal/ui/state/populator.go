package state

import (
	"github.com/atomicstack/arcmenu/internal/icon"
	"github.com/atomicstack/arcmenu/internal/logging/events"
	"github.com/atomicstack/arcmenu/internal/menu"
)

// DefaultBatchSize is the number of tiles added per continuation.
const DefaultBatchSize = 10

// Batch asks for the next run of tiles of generation Gen, starting at
// Start. Entries are the entries to build.
type Batch struct {
	Gen     uint64
	Start   int
	Entries []menu.Entry
}

// Populator fills a Grid incrementally. Every Start begins a new generation;
// batches from an older generation are ignored, which is how an in-flight
// population is cancelled.
type Populator struct {
	BatchSize int

	grid   *Grid
	source []menu.Entry
	gen    uint64
}

// NewPopulator fills grid in runs of batchSize.
func NewPopulator(grid *Grid, batchSize int) *Populator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Populator{BatchSize: batchSize, grid: grid}
}

// Generation returns the current generation.
func (p *Populator) Generation() uint64 {
	return p.gen
}

// Grid returns the grid being filled.
func (p *Populator) Grid() *Grid {
	return p.grid
}

// Start clears the grid, shows category and returns the first batch.
func (p *Populator) Start(category string, entries []menu.Entry) Batch {
	p.gen++
	p.source = menu.CloneEntries(entries)
	p.grid.Reset(category)
	events.Grid.Start(category, p.gen, len(p.source))
	return p.batchAt(0)
}

// Step appends the tiles of b with the supplied icons (which may be nil or
// shorter than the batch). It returns the follow-up batch and false, or a
// zero batch and true once the grid is complete. A stale batch appends
// nothing and reports true.
func (p *Populator) Step(b Batch, icons []*icon.Icon) (Batch, bool) {
	if b.Gen != p.gen {
		events.Grid.Stale(b.Gen, p.gen)
		return Batch{}, true
	}
	if p.grid.Finalized || b.Start != len(p.grid.Tiles) {
		return Batch{}, p.grid.Finalized
	}
	for i, entry := range b.Entries {
		tile := Tile{Entry: entry}
		if i < len(icons) {
			tile.Icon = icons[i]
		}
		p.grid.Tiles = append(p.grid.Tiles, tile)
	}
	events.Grid.Batch(b.Gen, b.Start, len(b.Entries))
	next := b.Start + len(b.Entries)
	if next < len(p.source) && len(b.Entries) > 0 {
		return p.batchAt(next), false
	}
	p.finalize()
	return Batch{}, true
}

// Done reports whether the current generation has been fully appended.
func (p *Populator) Done() bool {
	return p.grid.Finalized
}

func (p *Populator) batchAt(start int) Batch {
	end := start + p.BatchSize
	if end > len(p.source) {
		end = len(p.source)
	}
	return Batch{Gen: p.gen, Start: start, Entries: menu.CloneEntries(p.source[start:end])}
}

// finalize is the closing layout pass: the cursor is clamped and the grid
// marked complete.
func (p *Populator) finalize() {
	g := p.grid
	g.Finalized = true
	if g.Cursor >= len(g.Tiles) {
		g.Cursor = len(g.Tiles) - 1
	}
	events.Grid.Done(p.gen, len(g.Tiles))
}
