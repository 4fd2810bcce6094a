package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazegen/pkg/game/generator"
	"mazegen/pkg/game/renderer"
	"mazegen/pkg/game/tiles"
)

func TestRenderer_DrawOccupancy(t *testing.T) {
	grid, err := generator.Eller.Generate(2, 2, generator.Normal, fixed(0.9))
	require.NoError(t, err)

	r := New()
	r.SetPlain(true)
	r.Reset(grid.Width(), grid.Height())

	skipped, err := renderer.Draw(grid, r, tiles.Classify)
	require.NoError(t, err)
	assert.Zero(t, skipped)

	var buf bytes.Buffer
	require.NoError(t, r.Flush(&buf))
	assert.Equal(t, "┌┐\n└┘\n", buf.String())
}

func TestRenderer_DrawPassages(t *testing.T) {
	grid, err := generator.Eller.Generate(2, 2, generator.Normal, fixed(0.9))
	require.NoError(t, err)

	r := New()
	r.SetPlain(true)
	r.Reset(2, 2)

	_, err = renderer.Draw(grid, r, tiles.PassageMask)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Flush(&buf))
	assert.Equal(t, "┌┐\n╵╵\n", buf.String())
}

func TestRenderer_ShortTableLeavesVoid(t *testing.T) {
	grid, err := generator.Eller.Generate(2, 2, generator.Normal, fixed(0.9))
	require.NoError(t, err)

	// Only indices 0..6 are available: 6 and 3 place, 12 and 9 are skipped.
	r := NewWithGlyphs(TileGlyphs[:7])
	r.SetPlain(true)
	r.Reset(2, 2)

	skipped, err := renderer.Draw(grid, r, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)

	var buf bytes.Buffer
	require.NoError(t, r.Flush(&buf))
	assert.Equal(t, "  \n└┘\n", buf.String())
}

func TestRenderer_PlaceTileRejectsBadInput(t *testing.T) {
	r := New()
	r.Reset(1, 1)
	assert.Error(t, r.PlaceTile(1, 0, 0))
	assert.Error(t, r.PlaceTile(0, 0, tiles.Count))
	assert.NoError(t, r.PlaceTile(0, 0, 15))
}

func TestTileGlyphsAreDistinct(t *testing.T) {
	seen := map[string]int{}
	for i, g := range TileGlyphs {
		if prev, ok := seen[g]; ok {
			t.Errorf("glyph %q used for masks %d and %d", g, prev, i)
		}
		seen[g] = i
	}
}

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func fixed(v float64) generator.Source { return fixedSource(v) }

func TestRenderer_WriteLegend(t *testing.T) {
	r := NewWithGlyphs(TileGlyphs[:3])

	var buf bytes.Buffer
	require.NoError(t, r.WriteLegend(&buf))
	assert.Equal(t, " 0 ┼  open\n 1 ┤  right\n 2 ┴  down\n", buf.String())
}

func TestRenderer_WriteLegendTranslates(t *testing.T) {
	prev := dynamicGet
	defer func() { dynamicGet = prev }()
	dynamicGet = func(s string, _ ...interface{}) string { return "<" + s + ">" }

	r := NewWithGlyphs([]string{"a", "b", "c", "d"})
	var buf bytes.Buffer
	require.NoError(t, r.WriteLegend(&buf))
	assert.Contains(t, buf.String(), " 0 a  <open>\n")
	assert.Contains(t, buf.String(), " 3 d  <down>, <right>\n")
}
