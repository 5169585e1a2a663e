package render

import (
	"image/color"
	"testing"

	"chromalife/pkg/core"
)

func TestFillCellRGBA(t *testing.T) {
	cells := []core.Cell{
		{Color: core.Color{R: 10, G: 20, B: 30}, Alive: true},
		{},
		{Color: core.Color{R: 200, G: 100, B: 50}, Alive: true},
	}
	buf := make([]byte, 4*len(cells))
	fillCellRGBA(buf, cells, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	want := []byte{
		10, 20, 30, 255,
		1, 2, 3, 255,
		200, 100, 50, 255,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}
}
