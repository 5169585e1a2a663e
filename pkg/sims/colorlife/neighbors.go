package colorlife

import "chromalife/pkg/core"

// liveNeighborInfo counts the live cells among the 8 toroidally wrapped
// neighbors of (row, col) and collects their colors into scratch, duplicates
// preserved so a color held by three neighbors votes three times. The
// returned slice aliases scratch; no allocation occurs.
//
// Offsets are {dim-1, 0, 1} taken mod dim, so a dimension of 1 makes every
// cell its own neighbor in that axis. That falls straight out of the modulo
// arithmetic and is intentional.
func liveNeighborInfo(cells []core.Cell, w, h, row, col int, scratch *[8]core.Color) (int, []core.Color) {
	count := 0
	for _, dr := range [3]int{h - 1, 0, 1} {
		for _, dc := range [3]int{w - 1, 0, 1} {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := (row + dr) % h
			nc := (col + dc) % w
			cell := cells[core.Index(w, nr, nc)]
			if cell.Alive {
				scratch[count] = cell.Color
				count++
			}
		}
	}
	return count, scratch[:count]
}

// majorityColor picks the most frequent color among the neighbor votes.
// Colors are scanned in neighbor order; a later group dethrones the leader
// only with a strictly greater count, so ties keep the earliest-seen color.
// The result is a pure function of the ordered votes. The false return guards
// the empty case, unreachable under the birth rule.
func majorityColor(votes []core.Color) (core.Color, bool) {
	if len(votes) == 0 {
		return core.Color{}, false
	}
	best := votes[0]
	bestCount := 0
	for i, candidate := range votes {
		if i > 0 && candidate == best {
			continue
		}
		count := 0
		for _, v := range votes {
			if v == candidate {
				count++
			}
		}
		if count > bestCount {
			best = candidate
			bestCount = count
		}
	}
	return best, true
}
