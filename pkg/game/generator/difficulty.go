package generator

import "fmt"

// Difficulty selects how many walls generation removes.
type Difficulty int

// Difficulty levels. Any other value behaves like Normal.
const (
	Easy   Difficulty = 1
	Normal Difficulty = 2
	Hard   Difficulty = 3
)

// WallRemoveChance returns the probability of opening a wall between two
// adjacent cells. Easy mazes are closer to an open field, hard ones keep
// more walls.
func (d Difficulty) WallRemoveChance() float64 {
	switch d {
	case Easy:
		return 0.7
	case Normal:
		return 0.5
	case Hard:
		return 0.3
	default:
		return 0.5
	}
}

// IsKnown reports whether d is one of the enumerated levels.
func (d Difficulty) IsKnown() bool {
	return d >= Easy && d <= Hard
}

// String returns the string representation of a difficulty
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("unknown(%d)", int(d))
	}
}
