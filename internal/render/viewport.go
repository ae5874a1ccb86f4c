package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"tileworld/internal/core"
)

// Void fills the parts of the viewport buffer that fall outside the world.
var Void = color.RGBA{A: 255}

// Viewport caches a 3x3 composition of the sections around the observer's
// section. The buffer is rebuilt only when the center section changes.
type Viewport struct {
	sections *Sections
	buf      *image.RGBA

	last  core.SectionID
	valid bool

	rebuilds int
}

// NewViewport allocates the 3x3 buffer for sections.
func NewViewport(sections *Sections) *Viewport {
	sw, sh := sections.grid.SectionPixelSize()
	return &Viewport{
		sections: sections,
		buf:      image.NewRGBA(image.Rect(0, 0, 3*sw, 3*sh)),
	}
}

// Compose returns the buffer centered on section id. A repeated id returns
// the cached buffer untouched.
func (v *Viewport) Compose(id core.SectionID) *image.RGBA {
	if v.valid && v.last == id {
		return v.buf
	}

	fillSolid(v.buf.Pix, Void)
	sw, sh := v.sections.grid.SectionPixelSize()
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			src := v.sections.Surface(core.SectionID{Row: id.Row + dr, Col: id.Col + dc})
			if src == nil {
				continue
			}
			x0, y0 := (dc+1)*sw, (dr+1)*sh
			draw.Draw(v.buf, image.Rect(x0, y0, x0+sw, y0+sh), src, image.Point{}, draw.Src)
		}
	}

	v.last = id
	v.valid = true
	v.rebuilds++
	return v.buf
}

// Crop returns the w*h rectangle of the buffer for a view centered on world
// pixel (px, py). Compose must have been called for the section holding the
// point. The rectangle may extend past the buffer for views wider than a
// section; SubImage clips it.
func (v *Viewport) Crop(px, py, w, h int) image.Rectangle {
	sw, sh := v.sections.grid.SectionPixelSize()
	x := px - w/2 - (v.last.Col-1)*sw
	y := py - h/2 - (v.last.Row-1)*sh
	return image.Rect(x, y, x+w, y+h)
}

// Invalidate forces the next Compose to rebuild.
func (v *Viewport) Invalidate() { v.valid = false }

// Section returns the center of the cached buffer and whether it is valid.
func (v *Viewport) Section() (core.SectionID, bool) { return v.last, v.valid }

// Rebuilds counts how many times the buffer was composed from scratch.
func (v *Viewport) Rebuilds() int { return v.rebuilds }

// Buffer exposes the composed pixels without rebuilding.
func (v *Viewport) Buffer() *image.RGBA { return v.buf }
