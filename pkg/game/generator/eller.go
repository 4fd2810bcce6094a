package generator

import (
	"github.com/zyedidia/generic/mapset"

	"mazegen/pkg/engine/world"
)

// EllerGenerator builds mazes one row at a time, bottom row first, by
// randomly merging per-row connectivity sets.
//
// Cells sharing a set ID are always connected through removed walls, and
// every set in a row reaches into the next row, so the finished grid is a
// single spanning tree of passages.
type EllerGenerator struct{}

// Name returns the name of this generator
func (e *EllerGenerator) Name() string {
	return "Eller"
}

// Generate creates a new width x height maze. Samples are drawn from rng in a
// fixed order, so an identical stream always yields an identical grid.
func (e *EllerGenerator) Generate(width, height int, difficulty Difficulty, rng Source) (*world.Grid, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilSource
	}

	b := newEllerBuilder(width, height, difficulty, rng)
	b.run()

	return b.grid, nil
}

// ellerBuilder holds the state of one Generate call.
type ellerBuilder struct {
	grid     *world.Grid
	rng      Source
	chance   float64
	nextID   int
	registry *SetRegistry

	// afterPhase, when set, is called after every phase with the row it worked on.
	afterPhase func(phase string, y int)
}

func newEllerBuilder(width, height int, difficulty Difficulty, rng Source) *ellerBuilder {
	return &ellerBuilder{
		grid:   world.NewGrid(width, height),
		rng:    rng,
		chance: difficulty.WallRemoveChance(),
		nextID: 1,
	}
}

func (b *ellerBuilder) run() {
	height := b.grid.Height()

	b.seedFirstRow()
	b.phaseDone("seed", 0)
	for y := 0; y < height-1; y++ {
		b.joinRow(y)
		b.phaseDone("join", y)
		b.extendDown(y)
		b.phaseDone("extend", y)
		b.seedRow(y + 1)
		b.phaseDone("seed", y+1)
	}
	b.closeRow(height - 1)
	b.phaseDone("close", height-1)
}

func (b *ellerBuilder) phaseDone(phase string, y int) {
	if b.afterPhase != nil {
		b.afterPhase(phase, y)
	}
}

func (b *ellerBuilder) freshID() int {
	id := b.nextID
	b.nextID++
	return id
}

// seedFirstRow gives every column of row 0 its own set.
func (b *ellerBuilder) seedFirstRow() {
	b.registry = NewSetRegistry(b.grid, 0)
	for x := 0; x < b.grid.Width(); x++ {
		id := b.freshID()
		b.grid.Set(x, 0, id)
		b.registry.Add(id, x)
	}
}

// joinRow randomly removes walls between horizontally adjacent cells of
// different sets, left to right so merges can chain.
func (b *ellerBuilder) joinRow(y int) {
	for x := 0; x < b.grid.Width()-1; x++ {
		if b.rng.Float64() >= b.chance {
			continue
		}
		b.merge(x, y)
	}
}

// extendDown carries sets from row y into row y+1. The first column of each
// set always goes through; later columns go through at random.
func (b *ellerBuilder) extendDown(y int) {
	connected := mapset.New[int]()
	for x := 0; x < b.grid.Width(); x++ {
		id := b.grid.Get(x, y)
		// Always draw, even when the set is forced through.
		roll := b.rng.Float64()
		if roll < b.chance || !connected.Has(id) {
			b.grid.Set(x, y+1, id)
			b.grid.OpenWall(x, y, world.North)
			connected.Put(id)
		}
	}
}

// seedRow builds the registry for row y, giving fresh sets to the cells
// that extendDown left unassigned.
func (b *ellerBuilder) seedRow(y int) {
	b.registry = NewSetRegistry(b.grid, y)
	for x := 0; x < b.grid.Width(); x++ {
		id := b.grid.Get(x, y)
		if id == 0 {
			id = b.freshID()
			b.grid.Set(x, y, id)
		}
		b.registry.Add(id, x)
	}
}

// closeRow merges every pair of adjacent distinct sets in the last row.
func (b *ellerBuilder) closeRow(y int) {
	for x := 0; x < b.grid.Width()-1; x++ {
		b.merge(x, y)
	}
}

// merge joins (x, y) and (x+1, y) if they belong to different sets of the
// current row. The wall is only opened when the sets were actually merged.
func (b *ellerBuilder) merge(x, y int) bool {
	left, right := b.grid.Get(x, y), b.grid.Get(x+1, y)
	if left == right {
		return false
	}
	if !b.registry.Merge(left, right) {
		return false
	}
	b.grid.OpenWall(x, y, world.East)
	return true
}
