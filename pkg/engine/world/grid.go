// Package world provides the 2D grid primitives shared by maze generation,
// tile classification and rendering.
package world

// Grid holds the connectivity data of a maze.
//
// Cells are addressed (x, y) with x the column (0 = left) and y the row
// (0 = bottom). A value of 0 means the cell is unassigned; a positive value is
// the ID of the connectivity set the cell belongs to. Alongside each cell the
// grid records which of its walls have been removed.
type Grid struct {
	width  int
	height int

	cells    []int
	passages []uint8
}

// NewGrid creates a new grid with the given dimensions, all cells unassigned
// and all walls standing.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.cells = make([]int, width*height)
	g.passages = make([]uint8, width*height)
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index converts (x, y) to the row-major cell index.
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major cell index back to (x, y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Get returns the set ID at (x, y), or 0 if the position is out of bounds
func (g *Grid) Get(x, y int) int {
	if !g.IsValidPosition(x, y) {
		return 0
	}
	return g.cells[g.Index(x, y)]
}

// Set assigns a set ID to (x, y). Returns false if out of bounds.
func (g *Grid) Set(x, y, id int) bool {
	if !g.IsValidPosition(x, y) {
		return false
	}
	g.cells[g.Index(x, y)] = id
	return true
}

// IsAssigned returns true if (x, y) is in bounds and belongs to a set
func (g *Grid) IsAssigned(x, y int) bool {
	return g.Get(x, y) > 0
}

// Neighbor returns the position next to (x, y) in the given direction and
// whether it lies inside the grid.
func (g *Grid) Neighbor(x, y int, dir Direction) (nx, ny int, ok bool) {
	if !dir.IsValid() {
		return x, y, false
	}
	dx, dy := dir.Delta()
	nx, ny = x+dx, y+dy
	return nx, ny, g.IsValidPosition(nx, ny)
}

// OpenWall removes the wall between (x, y) and its neighbour in dir.
// Returns false if either cell is out of bounds.
func (g *Grid) OpenWall(x, y int, dir Direction) bool {
	if !g.IsValidPosition(x, y) {
		return false
	}
	nx, ny, ok := g.Neighbor(x, y, dir)
	if !ok {
		return false
	}
	g.passages[g.Index(x, y)] |= dir.Bit()
	g.passages[g.Index(nx, ny)] |= dir.Opposite().Bit()
	return true
}

// IsOpen reports whether the wall on the dir side of (x, y) has been removed
func (g *Grid) IsOpen(x, y int, dir Direction) bool {
	return g.Passages(x, y)&dir.Bit() != 0
}

// Passages returns the removed-wall bits of (x, y) using the Direction.Bit layout
func (g *Grid) Passages(x, y int) uint8 {
	if !g.IsValidPosition(x, y) {
		return 0
	}
	return g.passages[g.Index(x, y)]
}

// PassageCount returns the number of removed walls in the whole grid
func (g *Grid) PassageCount() int {
	n := 0
	for _, p := range g.passages {
		// Count each wall once, from its lower/left side.
		if p&North.Bit() != 0 {
			n++
		}
		if p&East.Bit() != 0 {
			n++
		}
	}
	return n
}

// Row returns a copy of the set IDs in row y, or nil if y is out of bounds
func (g *Grid) Row(y int) []int {
	if y < 0 || y >= g.height {
		return nil
	}
	row := make([]int, g.width)
	copy(row, g.cells[y*g.width:(y+1)*g.width])
	return row
}

// ForEachCell iterates over all cells bottom row first, left to right,
// calling the provided function for each
func (g *Grid) ForEachCell(fn func(x, y, id int)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[g.Index(x, y)])
		}
	}
}

// Equal reports whether two grids have identical dimensions, set IDs and passages
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] || g.passages[i] != other.passages[i] {
			return false
		}
	}
	return true
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.width <= 0 || g.height <= 0 {
		return "Grid has invalid dimensions"
	}

	for _, id := range g.cells {
		if id <= 0 {
			return "Grid has unassigned cells"
		}
	}

	if len(g.ConnectedComponents()) != 1 {
		return "Grid is not a single connected region"
	}

	return ""
}
