package render

import "image/color"

// fillBlockRGBA paints each shade as a cell×cell square separated by gap
// pixels of bg, producing an image of cols*(cell+gap)-gap pixels per row.
func fillBlockRGBA(buf []byte, shades []uint8, cols, cell, gap int, palette []color.RGBA, bg color.RGBA) {
	if cols <= 0 || cell <= 0 || len(palette) == 0 {
		return
	}
	rows := len(shades) / cols
	pitch := cell + gap
	width := cols*pitch - gap
	height := rows*pitch - gap
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			col := bg
			if px%pitch < cell && py%pitch < cell {
				idx := int(shades[(py/pitch)*cols+px/pitch])
				if idx >= len(palette) {
					idx = len(palette) - 1
				}
				col = palette[idx]
			}
			base := (py*width + px) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
