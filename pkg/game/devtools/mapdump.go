// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/tiles"
)

const mapDumpFilename = "maze.txt"

// DumpInfo describes how a dumped maze was produced.
type DumpInfo struct {
	Generator  string
	Difficulty string
	Seed       int64
}

// WriteMapDump writes a full debug dump of grid to w: metadata, set IDs and
// tile masks (hex, one digit per cell), both drawn top row first.
// Format is human- and LLM-readable (sections, key: value, consistent structure).
func WriteMapDump(w io.Writer, grid *world.Grid, info DumpInfo) error {
	if grid == nil {
		return fmt.Errorf("no grid")
	}

	ids := make(map[int]struct{})
	widest := 1
	grid.ForEachCell(func(_, _, id int) {
		ids[id] = struct{}{}
		if n := len(strconv.Itoa(id)); n > widest {
			widest = n
		}
	})

	ew := &errWriter{w: w}

	// --- Metadata ---
	ew.println("=== MAZE DUMP DEBUG (set ids, tile masks) ===")
	ew.println("")
	ew.println("--- Metadata ---")
	ew.printf("generator: %s\n", info.Generator)
	ew.printf("difficulty: %s\n", info.Difficulty)
	ew.printf("seed: %d\n", info.Seed)
	ew.printf("width: %d\n", grid.Width())
	ew.printf("height: %d\n", grid.Height())
	ew.printf("coordinate_system: x,y (0-based, x=column from left, y=row from bottom)\n")
	ew.printf("distinct_set_ids: %d\n", len(ids))
	ew.printf("components: %d\n", len(grid.ConnectedComponents()))
	ew.printf("passage_components: %d\n", len(grid.PassageComponents()))
	ew.printf("passages: %d\n", grid.PassageCount())
	ew.printf("validation: %q\n", grid.Validate())
	ew.println("")

	// --- Set IDs ---
	ew.println("--- Set IDs (top row first) ---")
	for y := grid.Height() - 1; y >= 0; y-- {
		for x := 0; x < grid.Width(); x++ {
			if x > 0 {
				ew.printf(" ")
			}
			ew.printf("%*d", widest, grid.Get(x, y))
		}
		ew.println("")
	}
	ew.println("")

	// --- Tiles ---
	ew.println("--- Tile masks, occupancy rule (hex; bit3=up bit2=left bit1=down bit0=right) ---")
	writeMasks(ew, grid, tiles.Classify)
	ew.println("")

	ew.println("--- Tile masks, passage rule ---")
	writeMasks(ew, grid, tiles.PassageMask)
	ew.println("")

	// --- Legend ---
	ew.println("--- Legend (mask: blocked sides) ---")
	for m := 0; m < tiles.Count; m++ {
		ew.printf("  %x: %s\n", m, tiles.Mask(m))
	}

	return ew.err
}

func writeMasks(ew *errWriter, grid *world.Grid, classify tiles.Classifier) {
	for y := grid.Height() - 1; y >= 0; y-- {
		for x := 0; x < grid.Width(); x++ {
			ew.printf("%x", classify(grid, x, y).Index())
		}
		ew.println("")
	}
}

// DumpMapToFile writes WriteMapDump output to maze.txt in the working
// directory and returns its absolute path.
func DumpMapToFile(grid *world.Grid, info DumpInfo) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}
	if err := dumpToPath(absPath, grid, info); err != nil {
		return "", err
	}
	return absPath, nil
}

// dumpToPath creates path and writes the dump into it. A failing Close is
// reported when the dump itself succeeded.
func dumpToPath(path string, grid *world.Grid, info DumpInfo) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteMapDump(f, grid, info); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// errWriter keeps the first write error so the dump code can stay linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, a ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, a...)
}

func (e *errWriter) println(s string) {
	e.printf("%s\n", s)
}
