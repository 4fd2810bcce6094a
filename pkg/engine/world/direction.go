package world

// Direction represents a cardinal direction on the maze grid.
// North points towards increasing y (up), East towards increasing x.
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "up"
	case East:
		return "right"
	case South:
		return "down"
	case West:
		return "left"
	default:
		return "unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the x and y offsets for this direction.
// Rows grow upwards, so North is +1 on y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Bit returns the wall bit for this direction: up=8, left=4, down=2, right=1.
func (d Direction) Bit() uint8 {
	switch d {
	case North:
		return 0b1000
	case West:
		return 0b0100
	case South:
		return 0b0010
	case East:
		return 0b0001
	default:
		return 0
	}
}
