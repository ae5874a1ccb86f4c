//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"tileworld/internal/core"
	"tileworld/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the world view: section
// boundaries (key 1) and a minimap (key 2).
type Overlay struct {
	showSections bool
	showMinimap  bool

	pixel *ebiten.Image

	minimap     *ebiten.Image
	minimapGrid *core.Grid
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSections = !o.showSections
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showMinimap = !o.showMinimap
	}
}

// Draw renders the enabled layers. origin is the world pixel shown at the
// top-left of the view and observer the observer's world pixel.
func (o *Overlay) Draw(screen *ebiten.Image, grid *core.Grid, view image.Rectangle, origin, observer image.Point) {
	if grid == nil {
		return
	}
	if o.showSections {
		o.drawSections(screen, grid, view, origin)
	}
	if o.showMinimap {
		o.drawMinimap(screen, grid, observer)
	}
}

func (o *Overlay) drawSections(screen *ebiten.Image, grid *core.Grid, view image.Rectangle, origin image.Point) {
	sw, sh := grid.SectionPixelSize()
	pw, ph := grid.PixelSize()
	col := color.RGBA{R: 255, G: 255, B: 255, A: 90}
	for x := 0; x <= pw; x += sw {
		sx := x - origin.X
		if sx >= view.Min.X && sx < view.Max.X {
			o.fillRect(screen, image.Rect(sx, view.Min.Y, sx+1, view.Max.Y), col)
		}
	}
	for y := 0; y <= ph; y += sh {
		sy := y - origin.Y
		if sy >= view.Min.Y && sy < view.Max.Y {
			o.fillRect(screen, image.Rect(view.Min.X, sy, view.Max.X, sy+1), col)
		}
	}
}

func (o *Overlay) drawMinimap(screen *ebiten.Image, grid *core.Grid, observer image.Point) {
	if o.minimap == nil || o.minimapGrid != grid {
		if o.minimap != nil {
			o.minimap.Dispose()
		}
		o.minimap = ebiten.NewImage(grid.W, grid.H)
		o.minimap.WritePixels(render.Minimap(grid).Pix)
		o.minimapGrid = grid
	}

	const margin = 8
	frame := image.Rect(margin-1, margin-1, margin+grid.W+1, margin+grid.H+1)
	o.fillRect(screen, frame, color.RGBA{A: 200})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(margin, margin)
	screen.DrawImage(o.minimap, op)

	bx := margin + observer.X/grid.TileSize
	by := margin + observer.Y/grid.TileSize
	o.fillRect(screen, image.Rect(bx-1, by-1, bx+2, by+2), color.RGBA{R: 255, G: 40, B: 40, A: 255})
}

func (o *Overlay) fillRect(screen *ebiten.Image, r image.Rectangle, col color.RGBA) {
	if o.pixel == nil || r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

// FillRect paints a solid rectangle with the overlay's 1x1 brush.
func (o *Overlay) FillRect(screen *ebiten.Image, r image.Rectangle, col color.RGBA) {
	o.fillRect(screen, r, col)
}
