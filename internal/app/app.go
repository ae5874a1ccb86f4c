//go:build ebiten

package app

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"tileworld/internal/core"
	"tileworld/internal/items"
	"tileworld/internal/ui"
	"tileworld/internal/world"
	"tileworld/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// walkSpeed is the observer's movement in world pixels per tick on open
// ground.
const walkSpeed = 4.0

// Game adapts a world to the ebiten.Game interface: an observer walks the
// world and the view follows it through the section cache.
type Game struct {
	world   *world.World
	hud     *ui.HUD
	overlay *ui.Overlay

	// view mirrors the world's 3x3 viewport buffer on the GPU.
	view    *ebiten.Image
	lastBuf *image.RGBA
	lastID  core.SectionID

	x, y         float64
	viewW, viewH int
	hudWidth     int
}

// New constructs a Game for w, placing the observer at the world center.
func New(w *world.World, cfg *Config) *Game {
	g := &Game{
		world:    w,
		overlay:  ui.NewOverlay(),
		viewW:    cfg.ViewW,
		viewH:    cfg.ViewH,
		hudWidth: cfg.HUDWidth,
	}
	g.hud = ui.NewHUD(w, fmt.Sprintf("%s world", w.Config().Recipe), cfg.HUDWidth)
	g.centerObserver()
	return g
}

func (g *Game) centerObserver() {
	pw, ph := g.world.PixelSize()
	g.x, g.y = float64(pw)/2, float64(ph)/2
}

// Reset regenerates the world with seed. A failed regeneration keeps the
// current world.
func (g *Game) Reset(seed int64) {
	if err := g.world.Regenerate(seed); err != nil {
		logger.Log.WithError(err).Warn("reset failed")
		return
	}
	g.lastBuf = nil
	g.centerObserver()
}

// Update handles input and moves the observer.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.world.Config().Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy++
	}
	if dx != 0 || dy != 0 {
		g.move(dx*walkSpeed, dy*walkSpeed)
	}

	g.overlay.Update()
	g.hud.SetStatus(g.status()...)
	g.hud.Update(g.viewW)
	return nil
}

// move advances the observer, slowed by passable items and stopped by
// blocking ones or the world edge. An observer already inside a blocking
// item may walk out of it.
func (g *Game) move(dx, dy float64) {
	nx, ny := int(g.x+dx), int(g.y+dy)
	if _, err := g.world.CellAt(nx, ny); err != nil {
		return
	}
	speed := g.world.SpeedAt(nx, ny)
	if speed <= 0 {
		if g.world.SpeedAt(int(g.x), int(g.y)) > 0 {
			return
		}
		speed = 1
	}
	g.x += dx * speed
	g.y += dy * speed
}

func (g *Game) status() []string {
	px, py := int(g.x), int(g.y)
	lines := []string{fmt.Sprintf("Observer %d,%d", px, py)}
	if cell, err := g.world.CellAt(px, py); err == nil {
		lines = append(lines, fmt.Sprintf("Block %d,%d %s", cell.X, cell.Y, cell.Terrain))
		lines = append(lines, fmt.Sprintf("Section %d,%d", cell.Section.Row, cell.Section.Col))
	}
	if it := g.world.ItemAt(px, py); it != nil {
		lines = append(lines, "On "+items.Name(it.Type))
	}
	return lines
}

// Draw renders the cropped viewport, the items around the observer and the
// observer itself.
func (g *Game) Draw(screen *ebiten.Image) {
	px, py := int(g.x), int(g.y)
	buf, crop, err := g.world.Viewport(px, py, g.viewW, g.viewH)
	if err != nil {
		return
	}
	id, _ := g.world.SectionOfPixel(px, py)
	if buf != g.lastBuf || id != g.lastID {
		if g.view == nil || g.view.Bounds() != buf.Bounds() {
			g.view = ebiten.NewImage(buf.Bounds().Dx(), buf.Bounds().Dy())
		}
		g.view.WritePixels(buf.Pix)
		g.lastBuf, g.lastID = buf, id
	}

	clipped := crop.Intersect(g.view.Bounds())
	if !clipped.Empty() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(clipped.Min.X-crop.Min.X), float64(clipped.Min.Y-crop.Min.Y))
		screen.DrawImage(g.view.SubImage(clipped).(*ebiten.Image), op)
	}

	viewRect := image.Rect(0, 0, g.viewW, g.viewH)
	origin := image.Pt(px-g.viewW/2, py-g.viewH/2)
	for _, it := range g.world.ObjectsAround(id) {
		r := image.Rect(it.X-it.Width/2, it.Y-it.Height/2, it.X+it.Width/2, it.Y+it.Height/2).Sub(origin)
		g.overlay.FillRect(screen, r.Intersect(viewRect), itemColor(it))
	}
	c := image.Pt(g.viewW/2, g.viewH/2)
	g.overlay.FillRect(screen, image.Rect(c.X-3, c.Y-3, c.X+3, c.Y+3), color.RGBA{R: 250, G: 250, B: 250, A: 255})

	g.overlay.Draw(screen, g.world.Grid(), viewRect, origin, image.Pt(px, py))
	g.hud.Draw(screen, g.viewW, g.viewH)
}

func itemColor(it *core.Item) color.RGBA {
	switch {
	case it.Type == core.ItemTree:
		return color.RGBA{R: 20, G: 90, B: 30, A: 200}
	case !it.Pass:
		return color.RGBA{R: 90, G: 90, B: 95, A: 200}
	case it.CanPickup:
		return color.RGBA{R: 230, G: 200, B: 80, A: 200}
	default:
		return color.RGBA{R: 120, G: 80, B: 40, A: 200}
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewW + g.hudWidth, g.viewH
}
