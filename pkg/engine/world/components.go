package world

import (
	"github.com/zyedidia/generic/mapset"
)

// ConnectedComponents finds all contiguous regions of assigned cells
// (value ≥ 1) using 4-neighbour adjacency. Two assigned neighbours are always
// considered linked, whatever their set IDs.
//
// Each component is a slice of row-major cell indices in BFS order; use
// Coordinate to convert an index back to (x, y).
//
// Time: O(W·H), Memory: O(W·H).
func (g *Grid) ConnectedComponents() [][]int {
	return g.components(g.IsAssigned, func(_, _ int, _ Direction, nx, ny int) bool {
		return g.IsAssigned(nx, ny)
	})
}

// PassageComponents finds the regions reachable through removed walls.
// Every cell, assigned or not, belongs to exactly one component.
func (g *Grid) PassageComponents() [][]int {
	return g.components(g.IsValidPosition, func(x, y int, dir Direction, _, _ int) bool {
		return g.IsOpen(x, y, dir)
	})
}

func (g *Grid) components(include func(x, y int) bool, linked func(x, y int, dir Direction, nx, ny int) bool) [][]int {
	seen := mapset.New[int]()
	var comps [][]int

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i0 := g.Index(x, y)
			if seen.Has(i0) || !include(x, y) {
				continue
			}

			queue := []int{i0}
			seen.Put(i0)

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := g.Coordinate(queue[qi])
				for _, dir := range AllDirections() {
					vx, vy, ok := g.Neighbor(ux, uy, dir)
					if !ok || !linked(ux, uy, dir, vx, vy) {
						continue
					}
					vi := g.Index(vx, vy)
					if !seen.Has(vi) {
						seen.Put(vi)
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}
