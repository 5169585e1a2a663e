package colorlife

import "chromalife/pkg/core"

// randomGenesis force-populates one randomly placed square of the current
// grid with a fresh randomly colored cluster. The anchor is chosen so the
// square fits entirely on the board; when the grid is too small for the
// cluster the call is a silent no-op, an expected steady-state condition
// rather than an error.
func (e *Engine) randomGenesis() {
	cluster := e.cfg.GenesisClusterSize
	if e.w <= cluster || e.h <= cluster {
		return
	}

	startX := e.rng.IntN(e.w - cluster)
	startY := e.rng.IntN(e.h - cluster)
	color := e.rng.Color()

	for y := 0; y < cluster; y++ {
		for x := 0; x < cluster; x++ {
			if e.rng.Chance(e.cfg.GenesisDensity) {
				e.cur[core.Index(e.w, startY+y, startX+x)] = core.Cell{Color: color, Alive: true}
			}
		}
	}
}
