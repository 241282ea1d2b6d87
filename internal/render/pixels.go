package render

import "image/color"

// ForestPalette maps forest sim cells to colours: 0-9 are unlit trees by
// height, 10-19 lit trees by height and 20 the scan cursor.
func ForestPalette() []color.RGBA {
	p := make([]color.RGBA, 21)
	for h := 0; h < 10; h++ {
		shade := uint8(30 + h*14)
		p[h] = color.RGBA{R: shade / 3, G: shade, B: shade / 3, A: 0xff}
		p[10+h] = color.RGBA{R: 0xff, G: uint8(150 + h*10), B: uint8(h * 8), A: 0xff}
	}
	p[20] = color.RGBA{R: 0x40, G: 0x90, B: 0xff, A: 0xff}
	return p
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values
// past the end of the palette use its last colour.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
