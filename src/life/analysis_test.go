package life

import "testing"

func TestCountElements(t *testing.T) {
	cases := []struct {
		name          string
		columns, rows int
		cells         [][2]int
		singles       int
		clusters      int
	}{
		{"empty board", 5, 5, nil, 0, 0},
		{"one live cell", 5, 5, [][2]int{{2, 2}}, 1, 0},
		{"diagonal pair", 5, 5, [][2]int{{1, 1}, {2, 2}}, 0, 1},
		{"two distant cells", 7, 7, [][2]int{{0, 0}, {3, 3}}, 2, 0},
		{"pair joined across the vertical seam", 7, 7, [][2]int{{0, 2}, {6, 2}}, 0, 1},
		{"pair joined across the corner", 7, 7, [][2]int{{0, 0}, {6, 6}}, 0, 1},
		{"block and a single", 7, 7, [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}, {5, 5}}, 1, 1},
		{"one large group counts once", 7, 7, [][2]int{{1, 1}, {2, 1}, {3, 1}, {2, 2}, {2, 3}}, 0, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := newTestBoard(t, c.columns, c.rows)
			for _, p := range c.cells {
				b.SetAlive(p[0], p[1], true)
			}
			singles, clusters := b.CountElements()
			if singles != c.singles || clusters != c.clusters {
				t.Fatalf("got (%v, %v), expected (%v, %v)", singles, clusters, c.singles, c.clusters)
			}
		})
	}
}

func TestCountElementsLeavesBoardIntact(t *testing.T) {
	b := newTestBoard(t, 10, 10)
	b.Randomize(0.5)
	before := b.CountAlive()

	s1, c1 := b.CountElements()
	s2, c2 := b.CountElements()

	if s1 != s2 || c1 != c2 {
		t.Fatalf("repeated analysis disagrees: (%v, %v) vs (%v, %v)", s1, c1, s2, c2)
	}
	if got := b.CountAlive(); got != before {
		t.Fatalf("analysis mutated the board: %v live cells, expected %v", got, before)
	}
}
