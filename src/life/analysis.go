package life

//CountElements classifies connected groups of live cells
//a group of exactly one cell counts as a single, a group of two or more
//counts as one cluster no matter its size
//adjacency is the same toroidal 8-neighborhood the automaton uses
func (b *Board) CountElements() (singles int, clusters int) {
	visited := make([]bool, len(b.cells))
	stack := make([]int, 0, len(b.cells))
	for i := range b.cells {
		if visited[i] || !b.cells[i].Alive {
			continue
		}
		//flood fill with an explicit frontier, the board can be too large
		//for recursion
		visited[i] = true
		stack = append(stack[:0], i)
		size := 0
		for len(stack) > 0 {
			c := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			for _, n := range b.neighbors[c] {
				if !visited[n] && b.cells[n].Alive {
					visited[n] = true
					stack = append(stack, n)
				}
			}
		}
		if size == 1 {
			singles++
		} else {
			clusters++
		}
	}
	return
}
