// Package terminal queries the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	// reservedLines is kept free below a drawn maze for the summary and prompt.
	reservedLines = 4
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if stdout is not a terminal.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// FitMaze shrinks a maze of width x height cells (one column per cell) so it
// fits on screen. Dimensions never drop below 1.
func FitMaze(width, height int) (int, int) {
	termWidth, termHeight := GetSize()
	return clamp(width, termWidth), clamp(height, termHeight-reservedLines)
}

func clamp(v, limit int) int {
	if limit < 1 {
		limit = 1
	}
	if v > limit {
		return limit
	}
	if v < 1 {
		return 1
	}
	return v
}
