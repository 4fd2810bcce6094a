package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/tiles"
)

// Tile glyphs indexed by wall mask. Each glyph draws the open sides of a cell.
var TileGlyphs = [tiles.Count]string{
	"┼", // 0  open
	"┤", // 1  right
	"┴", // 2  down
	"┘", // 3  down, right
	"├", // 4  left
	"│", // 5  left, right
	"└", // 6  left, down
	"╵", // 7  left, down, right
	"┬", // 8  up
	"┐", // 9  up, right
	"─", // 10 up, down
	"╴", // 11 up, down, right
	"┌", // 12 up, left
	"╷", // 13 up, left, right
	"╶", // 14 up, left, down
	"·", // 15 closed
}

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since side names are looked up dynamically from the mask.
var dynamicGet = gotext.Get

// IconVoid fills positions that received no tile
const IconVoid = " "

// Renderer is the terminal tile renderer. Tiles are collected with
// PlaceTile and written out with Flush, top row first.
type Renderer struct {
	glyphs []string
	plain  bool

	colorCorridor color.Style
	colorJunction color.Style
	colorDeadEnd  color.Style
	colorClosed   color.Style

	width  int
	height int
	canvas [][]string
}

// New creates a new TUI renderer using the full glyph table
func New() *Renderer {
	return NewWithGlyphs(TileGlyphs[:])
}

// NewWithGlyphs creates a TUI renderer with a custom asset table. Tables with
// fewer than 16 entries leave the missing tiles blank.
func NewWithGlyphs(glyphs []string) *Renderer {
	t := &Renderer{glyphs: glyphs}
	t.Init()
	return t
}

// Init initializes the TUI renderer colors
func (t *Renderer) Init() {
	t.colorCorridor = color.Style{color.FgGray}
	t.colorJunction = color.Style{color.FgCyan, color.OpBold}
	t.colorDeadEnd = color.Style{color.FgRed}
	t.colorClosed = color.Style{color.FgDarkGray}
}

// SetPlain disables ANSI colours
func (t *Renderer) SetPlain(plain bool) {
	t.plain = plain
}

// Reset clears the canvas and sizes it for a width x height grid
func (t *Renderer) Reset(width, height int) {
	t.width = width
	t.height = height
	t.canvas = make([][]string, height)
	for y := range t.canvas {
		t.canvas[y] = make([]string, width)
		for x := range t.canvas[y] {
			t.canvas[y][x] = IconVoid
		}
	}
}

// AssetCount returns the size of the glyph table
func (t *Renderer) AssetCount() int {
	return len(t.glyphs)
}

// PlaceTile stores the glyph for index at (x, y)
func (t *Renderer) PlaceTile(x, y, index int) error {
	if y < 0 || y >= t.height || x < 0 || x >= t.width {
		return fmt.Errorf("tile position (%d,%d) outside %dx%d canvas", x, y, t.width, t.height)
	}
	if index < 0 || index >= len(t.glyphs) {
		return fmt.Errorf("tile index %d outside asset table of %d", index, len(t.glyphs))
	}

	glyph := t.glyphs[index]
	if !t.plain {
		glyph = t.style(tiles.Mask(index)).Sprint(glyph)
	}
	t.canvas[y][x] = glyph
	return nil
}

// style picks a colour by how many sides of the cell are open.
func (t *Renderer) style(m tiles.Mask) color.Style {
	open := 0
	for _, dir := range world.AllDirections() {
		if !m.Blocked(dir) {
			open++
		}
	}
	switch open {
	case 0:
		return t.colorClosed
	case 1:
		return t.colorDeadEnd
	case 2:
		return t.colorCorridor
	default:
		return t.colorJunction
	}
}

// Flush writes the canvas to w, top row first
func (t *Renderer) Flush(w io.Writer) error {
	var sb strings.Builder
	for y := t.height - 1; y >= 0; y-- {
		sb.WriteString(strings.Join(t.canvas[y], ""))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteLegend writes one line per asset in the table: the glyph followed by
// the blocked sides it stands for, translated through the active catalogue.
func (t *Renderer) WriteLegend(w io.Writer) error {
	var sb strings.Builder
	for index, glyph := range t.glyphs {
		sb.WriteString(fmt.Sprintf("%2d %s  %s\n", index, glyph, describeMask(tiles.Mask(index))))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// describeMask names the blocked sides of m in the current language.
func describeMask(m tiles.Mask) string {
	sides := m.BlockedSides()
	if len(sides) == 0 {
		return dynamicGet(tiles.OpenName)
	}
	names := make([]string, len(sides))
	for i, dir := range sides {
		names[i] = dynamicGet(dir.String())
	}
	return strings.Join(names, ", ")
}
