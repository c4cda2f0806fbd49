package life

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

//SaveState writes the board liveness as text: one line per row, one
//character per column, '1' for a live cell and '0' for a dead one
func (b *Board) SaveState(w io.Writer) error {
	buf := bufio.NewWriter(w)
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Columns; x++ {
			c := byte('0')
			if b.cells[b.index(x, y)].Alive {
				c = '1'
			}
			if err := buf.WriteByte(c); err != nil {
				return err
			}
		}
		if err := buf.WriteByte('\n'); err != nil {
			return err
		}
	}
	return buf.Flush()
}

//SaveStateFile writes the board state to the file at path
func (b *Board) SaveStateFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	if err := b.SaveState(f); err != nil {
		f.Close()
		return fmt.Errorf("save state: %w", err)
	}
	return f.Close()
}

//LoadState reads the text format produced by SaveState
//the input may be smaller than the board: only the overlapping region is
//updated and the rest of the board keeps its prior state, excess rows and
//columns in the input are ignored
//any character other than '1' counts as dead
func (b *Board) LoadState(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for y := 0; y < b.Rows && sc.Scan(); y++ {
		line := sc.Text()
		for x := 0; x < b.Columns && x < len(line); x++ {
			b.cells[b.index(x, y)].Alive = line[x] == '1'
		}
	}
	return sc.Err()
}

//LoadStateFile loads the board state from the file at path
//a missing file is reported through fs.ErrNotExist in the wrapped error and
//leaves the board untouched
func (b *Board) LoadStateFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	defer f.Close()
	if err := b.LoadState(f); err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	return nil
}
