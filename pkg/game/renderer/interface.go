package renderer

import (
	"fmt"

	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/tiles"
)

// TileRenderer defines the interface for tile placement backends.
// Implementations can include TUI (terminal), image export, game engines, etc.
type TileRenderer interface {
	// AssetCount returns how many tile assets the backend can place.
	// Indices at or beyond this count are skipped by Draw.
	AssetCount() int

	// PlaceTile puts asset index at grid position (x, y).
	PlaceTile(x, y, index int) error
}

// Draw classifies every cell of grid and asks r to place the matching tile,
// bottom row first. Cells whose index the backend cannot serve are skipped;
// the number of skipped cells is returned.
func Draw(grid *world.Grid, r TileRenderer, classify tiles.Classifier) (skipped int, err error) {
	if classify == nil {
		classify = tiles.Classify
	}
	count := r.AssetCount()

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			index := classify(grid, x, y).Index()
			if index < 0 || index >= count {
				skipped++
				continue
			}
			if err := r.PlaceTile(x, y, index); err != nil {
				return skipped, fmt.Errorf("place tile %d at (%d,%d): %w", index, x, y, err)
			}
		}
	}
	return skipped, nil
}
