package render

import (
	"image/color"

	"chromalife/pkg/core"
)

// fillCellRGBA converts cell data into RGBA pixels in buf. Live cells use
// their own color; dead cells use the background.
func fillCellRGBA(buf []byte, cells []core.Cell, background color.Color) {
	rBg, gBg, bBg, aBg := background.RGBA()
	for i := range cells {
		base := i * 4
		if cells[i].Alive {
			buf[base+0] = cells[i].Color.R
			buf[base+1] = cells[i].Color.G
			buf[base+2] = cells[i].Color.B
			buf[base+3] = 0xff
			continue
		}
		buf[base+0] = uint8(rBg >> 8)
		buf[base+1] = uint8(gBg >> 8)
		buf[base+2] = uint8(bBg >> 8)
		buf[base+3] = uint8(aBg >> 8)
	}
}
