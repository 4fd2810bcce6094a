package devtools

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/generator"
)

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func TestWriteMapDump_TwoColumnMaze(t *testing.T) {
	grid, err := generator.Eller.Generate(2, 2, generator.Normal, fixedSource(0.9))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var buf bytes.Buffer
	info := DumpInfo{Generator: "Eller", Difficulty: generator.Normal.String(), Seed: 5}
	if err := WriteMapDump(&buf, grid, info); err != nil {
		t.Fatalf("WriteMapDump: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"generator: Eller\n",
		"difficulty: normal\n",
		"seed: 5\n",
		"distinct_set_ids: 2\n",
		"components: 1\n",
		"passage_components: 1\n",
		"passages: 3\n",
		"validation: \"\"\n",
		"--- Set IDs (top row first) ---\n1 1\n1 2\n",
		"hex; bit3=up bit2=left bit1=down bit0=right) ---\nc9\n63\n",
		"--- Tile masks, passage rule ---\nc9\n77\n",
		"  f: up|left|down|right\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q\n%s", want, out)
		}
	}
}

func TestWriteMapDump_PadsWideIDs(t *testing.T) {
	g := world.NewGrid(2, 1)
	g.Set(0, 0, 7)
	g.Set(1, 0, 123)

	var buf bytes.Buffer
	if err := WriteMapDump(&buf, g, DumpInfo{}); err != nil {
		t.Fatalf("WriteMapDump: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  7 123\n") {
		t.Errorf("expected right-aligned IDs, got:\n%s", buf.String())
	}
}

func TestWriteMapDump_NilGrid(t *testing.T) {
	if err := WriteMapDump(&bytes.Buffer{}, nil, DumpInfo{}); err == nil {
		t.Error("expected error for nil grid")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteMapDump_PropagatesWriteError(t *testing.T) {
	g := world.NewGrid(1, 1)
	g.Set(0, 0, 1)
	if err := WriteMapDump(failingWriter{}, g, DumpInfo{}); err == nil || err.Error() != "disk full" {
		t.Errorf("err = %v, want disk full", err)
	}
}

func TestDumpToPath_WritesFile(t *testing.T) {
	g := world.NewGrid(1, 1)
	g.Set(0, 0, 1)

	path := filepath.Join(t.TempDir(), "maze.txt")
	if err := dumpToPath(path, g, DumpInfo{Generator: "Eller"}); err != nil {
		t.Fatalf("dumpToPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "generator: Eller\n") {
		t.Errorf("dump file missing metadata:\n%s", data)
	}
}

func TestDumpToPath_ReportsErrors(t *testing.T) {
	g := world.NewGrid(1, 1)
	missingDir := filepath.Join(t.TempDir(), "missing", "maze.txt")
	if err := dumpToPath(missingDir, g, DumpInfo{}); err == nil {
		t.Error("expected error creating a file in a missing directory")
	}

	path := filepath.Join(t.TempDir(), "maze.txt")
	if err := dumpToPath(path, nil, DumpInfo{}); err == nil {
		t.Error("expected error for nil grid")
	}
}

func TestDumpMapToFile_UsesWorkingDirectory(t *testing.T) {
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	g := world.NewGrid(2, 1)
	g.Set(0, 0, 1)
	g.Set(1, 0, 1)

	path, err := DumpMapToFile(g, DumpInfo{})
	if err != nil {
		t.Fatalf("DumpMapToFile: %v", err)
	}
	if filepath.Base(path) != mapDumpFilename || !filepath.IsAbs(path) {
		t.Errorf("path = %q, want absolute path ending in %s", path, mapDumpFilename)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("dump file not created: %v", err)
	}
}
