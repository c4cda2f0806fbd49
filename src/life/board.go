package life

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

//Cell is a single automaton unit: the current liveness plus the staged
//next state written during the first pass of Advance
type Cell struct {
	Alive bool
	next  bool
}

//Options represents the Board's configurable options
//Columns and Rows derive from the field dimensions: Width/CellSize and
//Height/CellSize with integer division
type Options struct {
	Width       int
	Height      int
	CellSize    int
	LiveDensity float64
	Seed        int64 //0 means seed from the clock
}

//default options
const (
	DefWidth       = 50
	DefHeight      = 20
	DefCellSize    = 1
	DefLiveDensity = 0.5
)

var DefaultBoardOptions = Options{
	Width:       DefWidth,
	Height:      DefHeight,
	CellSize:    DefCellSize,
	LiveDensity: DefLiveDensity,
}

//ErrInvalidOptions reports a configuration that would produce a degenerate board
var ErrInvalidOptions = errors.New("invalid board options")

//Board owns a dense 2D grid of cells on a toroidal topology and drives
//synchronous generation advancement
//cells are stored in a flat row-major slice; the 8-neighbor index lists are
//built once at construction and never mutated afterwards
type Board struct {
	Columns int
	Rows    int

	cells     []Cell
	neighbors [][8]int
	rng       *rand.Rand
}

//NewBoard creates the Board, builds the toroidal neighbor topology and
//randomizes liveness with o.LiveDensity
func NewBoard(o *Options) (*Board, error) {
	if o == nil {
		o = &DefaultBoardOptions
	}
	if o.CellSize <= 0 {
		return nil, fmt.Errorf("%w: cell size %v", ErrInvalidOptions, o.CellSize)
	}
	columns := o.Width / o.CellSize
	rows := o.Height / o.CellSize
	if columns < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: %vx%v field with cell size %v gives a %vx%v board",
			ErrInvalidOptions, o.Width, o.Height, o.CellSize, columns, rows)
	}
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	b := &Board{
		Columns: columns,
		Rows:    rows,
		cells:   make([]Cell, columns*rows),
		rng:     rand.New(rand.NewSource(seed)),
	}
	b.connectNeighbors()
	b.Randomize(o.LiveDensity)
	return b, nil
}

//connectNeighbors builds the 8-neighbor index list for every cell
//the topology wraps on both axes, so every cell gets exactly 8 references
//regardless of its position
func (b *Board) connectNeighbors() {
	b.neighbors = make([][8]int, len(b.cells))
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Columns; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + b.Columns) % b.Columns
					ny := (y + dy + b.Rows) % b.Rows
					b.neighbors[b.index(x, y)][n] = b.index(nx, ny)
					n++
				}
			}
		}
	}
}

//index returns the flat slice index for coordinates x, y
func (b *Board) index(x, y int) int { return y*b.Columns + x }

//Randomize sets every cell alive with independent probability density
func (b *Board) Randomize(density float64) {
	for i := range b.cells {
		b.cells[i].Alive = b.rng.Float64() < density
		b.cells[i].next = false
	}
}

//Advance computes the next generation in two strict passes: every cell's
//next state is staged from the current snapshot, then all staged states are
//committed
//no transition ever reads an already-updated cell, which keeps the whole
//board update synchronous
func (b *Board) Advance() {
	b.stageNextStates()
	b.commitNextStates()
}

//stageNextStates computes the staged state for every cell from the current
//generation only
func (b *Board) stageNextStates() {
	for i := range b.cells {
		live := 0
		for _, n := range b.neighbors[i] {
			if b.cells[n].Alive {
				live++
			}
		}
		if b.cells[i].Alive {
			b.cells[i].next = live == 2 || live == 3
		} else {
			b.cells[i].next = live == 3
		}
	}
}

//commitNextStates applies the staged states
func (b *Board) commitNextStates() {
	for i := range b.cells {
		b.cells[i].Alive = b.cells[i].next
	}
}

//CountAlive calculates the count of live cells
func (b *Board) CountAlive() int {
	alive := 0
	b.Walk(func(x int, y int, a bool) {
		if a {
			alive++
		}
	})
	return alive
}

//Alive reports whether the cell at x, y is alive
func (b *Board) Alive(x int, y int) bool {
	return b.cells[b.index(x, y)].Alive
}

//SetAlive sets the liveness of the cell at x, y
func (b *Board) SetAlive(x int, y int, alive bool) {
	b.cells[b.index(x, y)].Alive = alive
}

//ToggleCell inverses the cell state at point x, y
//coordinates outside the board are ignored
func (b *Board) ToggleCell(x int, y int) {
	if x < 0 || y < 0 || x >= b.Columns || y >= b.Rows {
		return
	}
	b.cells[b.index(x, y)].Alive = !b.cells[b.index(x, y)].Alive
}

//Clear kills all cells
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
}

//Walk walks the entire board in row-major order and calls cb for each cell
func (b *Board) Walk(cb func(x int, y int, alive bool)) {
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Columns; x++ {
			cb(x, y, b.cells[b.index(x, y)].Alive)
		}
	}
}
