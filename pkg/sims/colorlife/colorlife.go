// Package colorlife implements Conway's Game of Life on a toroidal grid with
// color genetics: live cells carry an RGB color, newborn cells inherit the
// majority color of their three parents, and periodic genesis events seed
// fresh clusters of randomly colored life.
package colorlife

import (
	"golang.org/x/sync/errgroup"

	"chromalife/pkg/core"
)

// Engine owns the double-buffered grid and advances it one generation per
// Step call. It is not reentrant: only one Step may be in flight at a time,
// and readers must re-fetch Cells after each Step since the buffers swap.
type Engine struct {
	cfg Config

	w, h int
	cur  []core.Cell
	nxt  []core.Cell

	tickCounter int
	rng         *core.RNG
}

// New returns an engine with the provided dimensions and defaults otherwise.
func New(w, h int) (*Engine, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an engine for the provided configuration, populated
// with the initial generation. Construction is the only place errors can
// surface; a validly constructed engine never fails.
func NewWithConfig(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	total := cfg.Width * cfg.Height
	e := &Engine{
		cfg: cfg,
		w:   cfg.Width,
		h:   cfg.Height,
		cur: make([]core.Cell, total),
		nxt: make([]core.Cell, total),
		rng: core.NewRNG(cfg.Seed),
	}
	e.seed()
	return e, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "colorlife" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Cells exposes the current generation, row-major, valid until the next Step.
func (e *Engine) Cells() []core.Cell { return e.cur }

// Reset repopulates the board deterministically from the provided seed and
// restarts the genesis counter. Seed 0 falls back to the configured seed.
func (e *Engine) Reset(seed int64) {
	if seed == 0 {
		seed = e.cfg.Seed
	}
	e.rng = core.NewRNG(seed)
	e.tickCounter = 0
	e.seed()
	core.Clear(e.nxt)
}

// Step advances the simulation by one generation: genesis injection first
// (injected cells are inputs to this generation's rule), then the parallel
// rule pass into the back buffer, then the buffer swap. The swap must not
// happen before every worker has finished its band, or a torn generation
// would leak into later neighbor counts; eg.Wait is that barrier.
func (e *Engine) Step() {
	if e.cfg.GenesisInterval > 0 {
		e.tickCounter++
		if e.tickCounter >= e.cfg.GenesisInterval {
			e.tickCounter = 0
			e.randomGenesis()
		}
	}

	w, h := e.w, e.h
	cur, nxt := e.cur, e.nxt

	var (
		eg            errgroup.Group
		numWorkers    = e.cfg.workers()
		rowsPerWorker = (h + numWorkers - 1) / numWorkers
	)
	for i := 0; i < numWorkers; i++ {
		startRow := i * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, h)
		if startRow >= h {
			break
		}
		eg.Go(func() error {
			var scratch [8]core.Color
			for row := startRow; row < endRow; row++ {
				for col := 0; col < w; col++ {
					idx := core.Index(w, row, col)
					count, votes := liveNeighborInfo(cur, w, h, row, col, &scratch)
					nxt[idx] = nextCell(cur[idx], count, votes)
				}
			}
			return nil
		})
	}
	// Workers never return errors; Wait is purely the completion barrier.
	_ = eg.Wait()

	e.cur, e.nxt = e.nxt, e.cur
}

// nextCell applies the B3/S23 rule with color inheritance to a single cell.
func nextCell(current core.Cell, liveNeighbors int, votes []core.Color) core.Cell {
	if current.Alive {
		if liveNeighbors == 2 || liveNeighbors == 3 {
			return current
		}
		// Under- or overpopulation.
		return core.Cell{}
	}
	if liveNeighbors == 3 {
		if color, ok := majorityColor(votes); ok {
			return core.Cell{Color: color, Alive: true}
		}
	}
	return core.Cell{}
}

func init() {
	core.Register("colorlife", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
