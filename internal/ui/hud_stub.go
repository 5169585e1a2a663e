//go:build !ebiten

package ui

import "chromalife/pkg/core"

// HUD is a no-op placeholder used when the ebiten build tag is absent.
type HUD struct{}

// NewHUD constructs a stub HUD.
func NewHUD(core.Sim, *Stats) *HUD { return &HUD{} }

// Update is a no-op in headless builds.
func (h *HUD) Update() {}

// Draw is a no-op placeholder.
func (h *HUD) Draw(any) {}
