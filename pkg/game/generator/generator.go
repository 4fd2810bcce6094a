package generator

import (
	"fmt"

	"mazegen/pkg/engine/world"
)

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate(width, height int, difficulty Difficulty, rng Source) (*world.Grid, error)
	Name() string
}

// Available generators
var (
	Eller = &EllerGenerator{}
)

// DefaultGenerator is the default maze generator
var DefaultGenerator GridGenerator = Eller

// Config describes a single maze to generate.
type Config struct {
	Width      int
	Height     int
	Difficulty Difficulty
	Seed       int64 // 0 = time-based
}

// DefaultConfig returns a 30x30 easy maze with a time-based seed.
func DefaultConfig() Config {
	return Config{
		Width:      30,
		Height:     30,
		Difficulty: Easy,
	}
}

// Validate checks the config dimensions.
func (c Config) Validate() error {
	return validateDimensions(c.Width, c.Height)
}

// Build generates the configured maze with gen, or DefaultGenerator if gen is nil.
func (c Config) Build(gen GridGenerator) (*world.Grid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if gen == nil {
		gen = DefaultGenerator
	}
	grid, err := gen.Generate(c.Width, c.Height, c.Difficulty, NewSeededSource(c.Seed))
	if err != nil {
		return nil, fmt.Errorf("%s generator: %w", gen.Name(), err)
	}
	return grid, nil
}

func validateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}
	return nil
}
