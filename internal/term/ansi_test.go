package term

import (
	"strings"
	"testing"

	"chromalife/pkg/core"
)

func TestXterm256Corners(t *testing.T) {
	cases := []struct {
		in   core.Color
		want uint8
	}{
		{core.Color{}, 16},                        // black -> cube black
		{core.Color{R: 255, G: 255, B: 255}, 231}, // white -> cube white
		{core.Color{R: 255}, 196},                 // pure red
		{core.Color{G: 255}, 46},                  // pure green
		{core.Color{B: 255}, 21},                  // pure blue
		{core.Color{R: 255, G: 255}, 226},         // yellow
		{core.Color{R: 128, G: 128, B: 128}, 244}, // mid gray on the ramp
	}
	for _, tc := range cases {
		if got := xterm256(tc.in); got != tc.want {
			t.Fatalf("xterm256(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestRenderHalfBlocksRunsOfColor(t *testing.T) {
	red := core.Cell{Color: core.Color{R: 255}, Alive: true}
	top := []core.Cell{red, red, {}}
	bottom := []core.Cell{{}, red, red}

	var sb strings.Builder
	renderHalfBlocks(&sb, top, bottom, 16)
	out := sb.String()

	if strings.Count(out, "▀") != 3 {
		t.Fatalf("expected 3 half-block runes, got %q", out)
	}
	if !strings.Contains(out, "\x1b[38;5;196m") || !strings.Contains(out, "\x1b[48;5;196m") {
		t.Fatalf("expected red fg and bg sequences in %q", out)
	}
	if !strings.HasSuffix(out, sgrReset) {
		t.Fatalf("row must end with a reset, got %q", out)
	}
	// Repeated colors must not repeat their escape sequences per cell.
	if strings.Count(out, "\x1b[38;5;196m") != 1 {
		t.Fatalf("foreground run not coalesced: %q", out)
	}
}

func TestRenderHalfBlocksOddFinalRow(t *testing.T) {
	green := core.Cell{Color: core.Color{G: 255}, Alive: true}
	var sb strings.Builder
	renderHalfBlocks(&sb, []core.Cell{green, {}}, nil, 16)
	out := sb.String()
	if strings.Count(out, "▀") != 2 {
		t.Fatalf("expected 2 half-block runes, got %q", out)
	}
	if !strings.Contains(out, "\x1b[48;5;16m") {
		t.Fatalf("missing bottom row must fall back to the dead index: %q", out)
	}
}
