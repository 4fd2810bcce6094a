// Package tiles turns a generated maze grid into per-cell tile indices.
//
// A tile index is a 4-bit wall mask: bit3 = up, bit2 = left, bit1 = down,
// bit0 = right, a set bit meaning that side is blocked. The mask value is used
// directly as the index into a renderer's asset table.
package tiles

import (
	"errors"
	"fmt"
	"strings"

	"mazegen/pkg/engine/world"
)

// Count is the number of distinct masks, and so the size of a complete asset table.
const Count = 16

// ErrOutOfBounds is returned by ClassifyChecked for coordinates outside the grid.
var ErrOutOfBounds = errors.New("tiles: position out of grid bounds")

// Mask is a wall bitmask in [0,15].
type Mask uint8

// Blocked reports whether the dir side is blocked
func (m Mask) Blocked(dir world.Direction) bool {
	return uint8(m)&dir.Bit() != 0
}

// Index returns the asset table index for this mask
func (m Mask) Index() int {
	return int(m)
}

// BlockedSides returns the blocked directions in up, left, down, right order
func (m Mask) BlockedSides() []world.Direction {
	var sides []world.Direction
	for _, dir := range maskOrder {
		if m.Blocked(dir) {
			sides = append(sides, dir)
		}
	}
	return sides
}

// String lists the blocked sides in up, left, down, right order, e.g. "up|left".
// A fully open cell is "open".
func (m Mask) String() string {
	sides := m.BlockedSides()
	if len(sides) == 0 {
		return OpenName
	}
	parts := make([]string, len(sides))
	for i, dir := range sides {
		parts[i] = dir.String()
	}
	return strings.Join(parts, "|")
}

// OpenName is the String of a mask with no blocked side.
const OpenName = "open"

// maskOrder is the high-to-low bit order of a Mask.
var maskOrder = []world.Direction{world.North, world.West, world.South, world.East}

// Classify computes the wall mask of in-bounds cell (x, y). A side is blocked
// when the neighbour there is outside the grid or unassigned. Set IDs are not
// compared: two assigned neighbours are open to each other.
func Classify(grid *world.Grid, x, y int) Mask {
	var m Mask
	for _, dir := range maskOrder {
		nx, ny, ok := grid.Neighbor(x, y, dir)
		if !ok || !grid.IsAssigned(nx, ny) {
			m |= Mask(dir.Bit())
		}
	}
	return m
}

// ClassifyChecked is Classify with a bounds check.
func ClassifyChecked(grid *world.Grid, x, y int) (Mask, error) {
	if !grid.IsValidPosition(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, grid.Width(), grid.Height())
	}
	return Classify(grid, x, y), nil
}

// PassageMask computes the same bit layout from the walls generation removed:
// a side is blocked unless a passage leads through it.
func PassageMask(grid *world.Grid, x, y int) Mask {
	return Mask(^grid.Passages(x, y) & 0b1111)
}

// Classifier is the signature shared by Classify and PassageMask.
type Classifier func(grid *world.Grid, x, y int) Mask

// ClassifyAll applies classify to every cell. The result is indexed [x][y].
func ClassifyAll(grid *world.Grid, classify Classifier) [][]Mask {
	out := make([][]Mask, grid.Width())
	for x := range out {
		out[x] = make([]Mask, grid.Height())
	}
	grid.ForEachCell(func(x, y, _ int) {
		out[x][y] = classify(grid, x, y)
	})
	return out
}
