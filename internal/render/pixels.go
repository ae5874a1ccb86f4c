package render

import (
	"image"
	"image/color"

	"tileworld/internal/core"
)

// fillTerrainRGBA writes one pixel per cell using the terrain table colors.
// Unset cells are written as transparent black.
func fillTerrainRGBA(buf []byte, cells []core.Cell) {
	for i := range cells {
		base := i * 4
		col := core.Terrains[cells[i].Terrain].Color
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillSolid clears buf to a single color.
func fillSolid(buf []byte, c color.RGBA) {
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// Minimap renders the grid at one pixel per cell.
func Minimap(grid *core.Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, grid.W, grid.H))
	fillTerrainRGBA(img.Pix, grid.Cells())
	return img
}
