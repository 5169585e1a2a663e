//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chromalife/internal/render"
	"chromalife/internal/ui"
	"chromalife/pkg/core"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	stats   *ui.Stats

	background color.Color

	scale      int
	paused     bool
	tickOnce   bool
	seed       int64
	generation int
	lastStep   time.Time
}

// NewGame constructs a Game for the provided simulation.
func NewGame(sim core.Sim, background core.Color, scale int, seed int64) *Game {
	size := sim.Size()
	stats := ui.NewStats()
	return &Game{
		sim:        sim,
		painter:    render.NewGridPainter(size.W, size.H),
		hud:        ui.NewHUD(sim, stats),
		stats:      stats,
		background: color.RGBA{R: background.R, G: background.G, B: background.B, A: 0xff},
		scale:      scale,
		seed:       seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.generation = 0
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.hud.Update()

	if (!g.paused) || g.tickOnce {
		start := time.Now()
		g.sim.Step()
		g.generation++
		g.stats.Update(g.generation, core.Population(g.sim.Cells()), time.Since(g.lastStep))
		g.lastStep = start
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.background, g.scale)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

// Run opens the game window and drives the simulation until quit.
func Run(sim core.Sim, opts *Options) error {
	background, err := ParseColor(opts.BgColor)
	if err != nil {
		return err
	}

	game := NewGame(sim, background, opts.Scale, opts.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle(fmt.Sprintf("chromalife — %s", sim.Name()))
	ebiten.SetTPS(opts.FPS)
	ebiten.SetWindowSize(size.W*opts.Scale, size.H*opts.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
