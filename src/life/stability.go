package life

//GenerationsToStabilize advances the board until the total live cell count
//has stayed the same for window consecutive generations and returns the
//number of generations that took
//a window below 1 is treated as 1
//
//equality is checked on the population count only, never on the exact
//configuration: an oscillator whose phases share a live cell count is
//reported as stable
//the search is not guaranteed to terminate for every pattern (spaceships,
//long period oscillators); callers that need a hard bound must wrap the
//call with their own generation cap
func (b *Board) GenerationsToStabilize(window int) int {
	if window < 1 {
		window = 1
	}
	counts := make([]int, 0, window)
	for generation := 1; ; generation++ {
		b.Advance()
		if len(counts) == window {
			copy(counts, counts[1:])
			counts = counts[:window-1]
		}
		counts = append(counts, b.CountAlive())
		if len(counts) == window && constant(counts) {
			return generation
		}
	}
}

//constant reports whether all values in the window are equal
func constant(counts []int) bool {
	for _, c := range counts[1:] {
		if c != counts[0] {
			return false
		}
	}
	return true
}
