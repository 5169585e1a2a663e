//go:build ebiten

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chromalife/pkg/core"
)

// HUD draws a small read-only stats panel on top of the simulation.
type HUD struct {
	sim     core.Sim
	stats   *Stats
	visible bool
}

// NewHUD constructs a HUD bound to the provided simulation and counters.
func NewHUD(sim core.Sim, stats *Stats) *HUD {
	return &HUD{sim: sim, stats: stats, visible: true}
}

// Update handles the HUD toggle key.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders the panel onto the provided screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.visible {
		return
	}
	cells := h.sim.Cells()
	msg := fmt.Sprintf("gen %d | live %d | colors %d | %.1f gen/s",
		h.stats.TotalGenerations,
		core.Population(cells),
		core.ColorCount(cells),
		h.stats.GenerationsPerSecond,
	)
	ebitenutil.DebugPrint(screen, msg)
}
