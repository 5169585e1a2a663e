package core

// Index returns the linear slice index for the cell at (row, col) in a grid
// of the given width, row-major.
func Index(width, row, col int) int { return row*width + col }

// Clear marks every cell in the buffer dead.
func Clear(cells []Cell) {
	for i := range cells {
		cells[i] = Cell{}
	}
}

// Population returns the number of live cells in the buffer.
func Population(cells []Cell) int {
	n := 0
	for i := range cells {
		if cells[i].Alive {
			n++
		}
	}
	return n
}

// ColorCount returns the number of distinct colors among live cells.
func ColorCount(cells []Cell) int {
	seen := make(map[Color]struct{})
	for i := range cells {
		if cells[i].Alive {
			seen[cells[i].Color] = struct{}{}
		}
	}
	return len(seen)
}
