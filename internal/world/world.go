package world

import (
	"fmt"
	"image"
	"os"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"tileworld/internal/core"
	"tileworld/internal/items"
	"tileworld/internal/render"
	"tileworld/internal/terrain"
	prng "tileworld/pkg/core"
	"tileworld/pkg/logger"
)

// state is everything one generation produced. A World swaps whole states so
// a failed regeneration leaves the previous world in place.
type state struct {
	cfg      Config
	grid     *core.Grid
	sections *render.Sections
	viewport *render.Viewport
	spawner  *items.Spawner
}

// World is a generated tile world with its section cache. It is not safe for
// concurrent use.
type World struct {
	atlas *render.Atlas
	st    *state
}

// New validates cfg, loads or generates the tile atlas and builds the first
// world.
func New(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	atlas, err := loadAtlas(cfg)
	if err != nil {
		return nil, err
	}
	w := &World{atlas: atlas}
	st, err := w.build(cfg)
	if err != nil {
		return nil, err
	}
	w.st = st
	return w, nil
}

func loadAtlas(cfg Config) (*render.Atlas, error) {
	if cfg.Atlas == "" {
		return render.GenerateAtlas(cfg.TileSize, cfg.Seed), nil
	}
	f, err := os.Open(cfg.Atlas)
	if err != nil {
		return nil, fmt.Errorf("open atlas: %w", err)
	}
	defer f.Close()
	return render.LoadAtlas(f, cfg.TileSize)
}

func (w *World) build(cfg Config) (*state, error) {
	start := time.Now()

	grid, err := core.NewGrid(cfg.Width, cfg.Height, cfg.TileSize, cfg.SectionW, cfg.SectionH)
	if err != nil {
		return nil, err
	}
	rng := prng.NewRNG(cfg.Seed)
	if err := terrain.Shape(grid, rng, cfg.GradientSize, cfg.Recipe, cfg.options()); err != nil {
		return nil, fmt.Errorf("shape terrain: %w", err)
	}

	sections, err := render.NewSections(grid, w.atlas)
	if err != nil {
		return nil, err
	}
	spawner := items.NewSpawner(rng, cfg.TileSize)
	sections.Render(spawner)

	fields := logrus.Fields{
		"width":    cfg.Width,
		"height":   cfg.Height,
		"recipe":   cfg.Recipe,
		"seed":     cfg.Seed,
		"items":    len(spawner.Objects()),
		"duration": time.Since(start).String(),
	}
	for t, n := range grid.Counts() {
		fields[t.String()] = n
	}
	logger.Log.WithFields(fields).Info("world generated")

	return &state{
		cfg:      cfg,
		grid:     grid,
		sections: sections,
		viewport: render.NewViewport(sections),
		spawner:  spawner,
	}, nil
}

// Regenerate rebuilds the world with a new seed. On failure the current
// world is kept and the error returned.
func (w *World) Regenerate(seed int64) error {
	cfg := w.st.cfg
	cfg.Seed = seed
	return w.Reconfigure(cfg)
}

// Reconfigure rebuilds the world from cfg. The tile size may not change
// since the atlas is shared across generations.
func (w *World) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.TileSize != w.atlas.TileSize {
		return fmt.Errorf("%w: tile size %d differs from atlas %d", render.ErrAtlasSize, cfg.TileSize, w.atlas.TileSize)
	}
	st, err := w.build(cfg)
	if err != nil {
		logger.Log.WithError(err).WithField("seed", cfg.Seed).Warn("regeneration failed, keeping previous world")
		return err
	}
	w.st = st
	return nil
}

// Config returns the parameters of the current world.
func (w *World) Config() Config { return w.st.cfg }

// Grid exposes the current grid.
func (w *World) Grid() *core.Grid { return w.st.grid }

// Sections exposes the current section cache.
func (w *World) Sections() *render.Sections { return w.st.sections }

// PixelSize reports the world extent in pixels.
func (w *World) PixelSize() (int, int) { return w.st.grid.PixelSize() }

// CellAt returns the block under world pixel (px, py).
func (w *World) CellAt(px, py int) (*core.Cell, error) {
	return w.st.grid.CellAt(px, py)
}

// SectionOfPixel returns the section under world pixel (px, py).
func (w *World) SectionOfPixel(px, py int) (core.SectionID, error) {
	return w.st.grid.SectionOfPixel(px, py)
}

// SectionOfBlock returns the section holding block (bx, by).
func (w *World) SectionOfBlock(bx, by int) (core.SectionID, error) {
	return w.st.grid.SectionOfBlock(bx, by)
}

// Viewport returns the composed 3x3 buffer around the section holding
// (px, py) and the w*h rectangle of it centered on that pixel.
func (w *World) Viewport(px, py, vw, vh int) (*image.RGBA, image.Rectangle, error) {
	id, err := w.st.grid.SectionOfPixel(px, py)
	if err != nil {
		return nil, image.Rectangle{}, err
	}
	vp := w.st.viewport
	prevRebuilds := vp.Rebuilds()
	buf := vp.Compose(id)
	if vp.Rebuilds() != prevRebuilds {
		logger.Log.WithFields(logrus.Fields{"row": id.Row, "col": id.Col}).Debug("viewport rebuilt")
	}
	return buf, vp.Crop(px, py, vw, vh), nil
}

// ViewportOrigin returns the world pixel at the buffer's top-left corner for
// the section most recently composed.
func (w *World) ViewportOrigin() image.Point {
	id, _ := w.st.viewport.Section()
	sw, sh := w.st.grid.SectionPixelSize()
	return image.Pt((id.Col-1)*sw, (id.Row-1)*sh)
}

// Objects returns every spawned item in spawn order.
func (w *World) Objects() []*core.Item { return w.st.spawner.Objects() }

// ObjectsAround returns the items in the 3x3 section neighborhood of id,
// ordered for drawing: lower Z first, then top to bottom.
func (w *World) ObjectsAround(id core.SectionID) []*core.Item {
	var out []*core.Item
	for _, it := range w.st.spawner.Objects() {
		if abs(it.Section.Row-id.Row) <= 1 && abs(it.Section.Col-id.Col) <= 1 {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Z != out[j].Z {
			return out[i].Z < out[j].Z
		}
		return out[i].Y < out[j].Y
	})
	return out
}

// ItemAt returns the topmost item covering world pixel (px, py), or nil.
// Items may overhang their cell, so the neighbors are searched too.
func (w *World) ItemAt(px, py int) *core.Item {
	cell, err := w.st.grid.CellAt(px, py)
	if err != nil {
		return nil
	}
	var hit *core.Item
	check := func(c *core.Cell) {
		for _, it := range c.Items {
			if it.Contains(px, py) && (hit == nil || it.Z > hit.Z) {
				hit = it
			}
		}
	}
	check(cell)
	for _, n := range w.st.grid.Neighbors(cell.X, cell.Y) {
		check(n)
	}
	return hit
}

// SpeedAt is the movement multiplier at world pixel (px, py): 0 outside the
// world or on a blocking item, the item's slowdown on a passable one, 1
// elsewhere.
func (w *World) SpeedAt(px, py int) float64 {
	if _, err := w.st.grid.CellAt(px, py); err != nil {
		return 0
	}
	if it := w.ItemAt(px, py); it != nil {
		return it.SpeedFactor()
	}
	return 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
