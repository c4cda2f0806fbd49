package life

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveStateFormat(t *testing.T) {
	b := newTestBoard(t, 4, 3)
	b.SetAlive(1, 0, true)
	b.SetAlive(0, 1, true)
	b.SetAlive(3, 2, true)

	var buf bytes.Buffer
	if err := b.SaveState(&buf); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	want := "0100\n1000\n0001\n"
	if buf.String() != want {
		t.Fatalf("got %q, expected %q", buf.String(), want)
	}
}

func TestSaveStateShape(t *testing.T) {
	b := newTestBoard(t, 10, 8)
	b.Randomize(0.5)

	var buf bytes.Buffer
	if err := b.SaveState(&buf); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %v lines, expected 8", len(lines))
	}
	for i, l := range lines {
		if len(l) != 10 {
			t.Fatalf("line %v has length %v, expected 10", i, len(l))
		}
	}
}

func TestStateRoundTrip(t *testing.T) {
	src := newTestBoard(t, 10, 8)
	src.Randomize(0.5)

	var buf bytes.Buffer
	if err := src.SaveState(&buf); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	dst := newTestBoard(t, 10, 8)
	if err := dst.LoadState(&buf); err != nil {
		t.Fatalf("LoadState: %v", err)
	}

	src.Walk(func(x int, y int, alive bool) {
		if dst.Alive(x, y) != alive {
			t.Fatalf("cell (%d,%d) alive=%v after round trip, expected %v", x, y, dst.Alive(x, y), alive)
		}
	})
}

func TestLoadStatePartial(t *testing.T) {
	b := newTestBoard(t, 5, 5)
	b.Randomize(1)

	//a 2x2 input only updates the overlapping region
	if err := b.LoadState(strings.NewReader("00\n00\n")); err != nil {
		t.Fatalf("LoadState: %v", err)
	}

	if got := b.CountAlive(); got != 21 {
		t.Fatalf("got %v live cells, expected 21", got)
	}
	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if b.Alive(p[0], p[1]) {
			t.Fatalf("cell (%d,%d) still alive, expected dead", p[0], p[1])
		}
	}
}

func TestLoadStatePermissiveChars(t *testing.T) {
	b := newTestBoard(t, 5, 2)
	b.Randomize(1)

	//anything that is not '1' counts as dead
	if err := b.LoadState(strings.NewReader("1x1*1\n0?10.\n")); err != nil {
		t.Fatalf("LoadState: %v", err)
	}

	want := map[[2]int]bool{{0, 0}: true, {2, 0}: true, {4, 0}: true, {2, 1}: true}
	assertAlive(t, b, want)
}

func TestLoadStateOversizedInput(t *testing.T) {
	b := newTestBoard(t, 3, 3)

	//rows and columns beyond the board are ignored
	in := "11111\n11111\n11111\n11111\n11111\n"
	if err := b.LoadState(strings.NewReader(in)); err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if got := b.CountAlive(); got != 9 {
		t.Fatalf("got %v live cells, expected 9", got)
	}
}

func TestLoadStateMissingFile(t *testing.T) {
	b := newTestBoard(t, 3, 3)
	b.Randomize(1)

	err := b.LoadStateFile(filepath.Join(t.TempDir(), "absent.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got err=%v, expected fs.ErrNotExist", err)
	}
	if got := b.CountAlive(); got != 9 {
		t.Fatalf("the failed load touched the board: %v live cells, expected 9", got)
	}
}

func TestStateFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.txt")

	src := newTestBoard(t, 6, 4)
	src.Randomize(0.5)
	if err := src.SaveStateFile(path); err != nil {
		t.Fatalf("SaveStateFile: %v", err)
	}

	dst := newTestBoard(t, 6, 4)
	if err := dst.LoadStateFile(path); err != nil {
		t.Fatalf("LoadStateFile: %v", err)
	}

	src.Walk(func(x int, y int, alive bool) {
		if dst.Alive(x, y) != alive {
			t.Fatalf("cell (%d,%d) alive=%v after file round trip, expected %v", x, y, dst.Alive(x, y), alive)
		}
	})
}
