package term

import (
	"fmt"
	"strings"

	"chromalife/pkg/core"
)

// cube6 holds the xterm 6x6x6 color-cube channel levels.
var cube6 = [6]uint8{0, 95, 135, 175, 215, 255}

func nearestCubeIndex(v uint8) int {
	best := 0
	bestDist := 256
	for i, level := range cube6 {
		d := int(v) - int(level)
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// xterm256 quantizes an RGB color to the closest xterm-256 palette index.
// Near-gray colors map onto the grayscale ramp, which resolves finer steps
// than the 6x6x6 cube.
func xterm256(c core.Color) uint8 {
	maxC := max(c.R, max(c.G, c.B))
	minC := min(c.R, min(c.G, c.B))
	if maxC-minC < 10 {
		gray := (int(c.R) + int(c.G) + int(c.B)) / 3
		switch {
		case gray < 8:
			return 16 // cube black
		case gray > 238:
			return 231 // cube white
		default:
			return uint8(232 + (gray-8)/10)
		}
	}
	r := nearestCubeIndex(c.R)
	g := nearestCubeIndex(c.G)
	b := nearestCubeIndex(c.B)
	return uint8(16 + 36*r + 6*g + b)
}

const (
	halfBlock = '▀'
	sgrReset  = "\x1b[0m"
)

// renderHalfBlocks writes two grid rows as one terminal row of ▀ runes into
// sb: the foreground carries the top cell, the background the bottom cell.
// bottom may be nil for the odd final row of an odd-height grid.
func renderHalfBlocks(sb *strings.Builder, top, bottom []core.Cell, deadIndex uint8) {
	lastFg, lastBg := -1, -1
	for i := range top {
		fg := deadIndex
		if top[i].Alive {
			fg = xterm256(top[i].Color)
		}
		bg := deadIndex
		if bottom != nil && bottom[i].Alive {
			bg = xterm256(bottom[i].Color)
		}
		if int(fg) != lastFg {
			fmt.Fprintf(sb, "\x1b[38;5;%dm", fg)
			lastFg = int(fg)
		}
		if int(bg) != lastBg {
			fmt.Fprintf(sb, "\x1b[48;5;%dm", bg)
			lastBg = int(bg)
		}
		sb.WriteRune(halfBlock)
	}
	sb.WriteString(sgrReset)
}
