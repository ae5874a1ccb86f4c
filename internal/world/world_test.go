package world

import (
	"errors"
	"image"
	"os"
	"testing"

	"tileworld/internal/core"
	"tileworld/internal/render"
	"tileworld/internal/terrain"
	"tileworld/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Silence()
	os.Exit(m.Run())
}

func scenarioConfig() Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 100, 100
	cfg.TileSize = 10
	cfg.GradientSize = 5
	cfg.Seed = 42
	return cfg
}

func newWorld(t *testing.T, cfg Config) *World {
	t.Helper()
	w, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func TestScenario(t *testing.T) {
	w := newWorld(t, scenarioConfig())

	if got := w.Grid().TerrainAt(0, 0); got != core.TerrainOcean {
		t.Fatalf("corner should be ocean, got %s", got)
	}
	switch got := w.Grid().TerrainAt(50, 50); got {
	case core.TerrainRock, core.TerrainMountain, core.TerrainLava:
	default:
		t.Fatalf("center should be mountainous, got %s", got)
	}

	byPixel, err := w.SectionOfPixel(999, 999)
	if err != nil {
		t.Fatalf("SectionOfPixel: %v", err)
	}
	byBlock, err := w.SectionOfBlock(99, 99)
	if err != nil {
		t.Fatalf("SectionOfBlock: %v", err)
	}
	if byPixel != byBlock {
		t.Fatalf("measurement modes disagree: %+v vs %+v", byPixel, byBlock)
	}

	if _, err := w.CellAt(-1, 0); !errors.Is(err, core.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if w.Grid().Unset() != 0 {
		t.Fatal("every cell must be set after construction")
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if w.Sections().State(core.SectionID{Row: y, Col: x}) != render.Rendered {
				t.Fatalf("section (%d,%d) not rendered", y, x)
			}
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Width = 110
	if _, err := New(cfg); !errors.Is(err, core.ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
	cfg = scenarioConfig()
	cfg.Recipe = "volcanic"
	if _, err := New(cfg); !errors.Is(err, terrain.ErrUnknownRecipe) {
		t.Fatalf("expected ErrUnknownRecipe, got %v", err)
	}
}

func TestViewportAtOriginHasVoidBorder(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Width, cfg.Height = 50, 50
	w := newWorld(t, cfg)

	buf, rect, err := w.Viewport(0, 0, 100, 80)
	if err != nil {
		t.Fatalf("Viewport: %v", err)
	}
	sw, sh := w.Grid().SectionPixelSize()
	for x := 0; x < 3*sw; x += 7 {
		if buf.RGBAAt(x, 0) != render.Void || buf.RGBAAt(x, sh-1) != render.Void {
			t.Fatalf("top row should be void at x=%d", x)
		}
	}
	for y := 0; y < 3*sh; y += 7 {
		if buf.RGBAAt(0, y) != render.Void || buf.RGBAAt(sw-1, y) != render.Void {
			t.Fatalf("left column should be void at y=%d", y)
		}
	}
	if buf.RGBAAt(sw, sh) == render.Void {
		t.Fatal("focal section should not be void")
	}
	if want := image.Rect(sw-50, sh-40, sw+50, sh+40); rect != want {
		t.Fatalf("crop %v, want %v", rect, want)
	}
	if o := w.ViewportOrigin(); o != image.Pt(-sw, -sh) {
		t.Fatalf("origin %v", o)
	}

	if _, _, err := w.Viewport(-5, 0, 10, 10); !errors.Is(err, core.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestViewportReusesBufferWithinSection(t *testing.T) {
	w := newWorld(t, scenarioConfig())
	a, _, err := w.Viewport(300, 300, 50, 50)
	if err != nil {
		t.Fatalf("Viewport: %v", err)
	}
	b, ra, err := w.Viewport(310, 320, 50, 50)
	if err != nil {
		t.Fatalf("Viewport: %v", err)
	}
	if a != b {
		t.Fatal("same section should return the cached buffer")
	}
	if ra.Min != image.Pt(310-25, 320-25) {
		t.Fatalf("crop moved wrong: %v", ra)
	}
}

func TestDeterminism(t *testing.T) {
	a := newWorld(t, scenarioConfig())
	b := newWorld(t, scenarioConfig())
	ac, bc := a.Grid().Cells(), b.Grid().Cells()
	for i := range ac {
		if ac[i].Terrain != bc[i].Terrain {
			t.Fatalf("cell %d differs between identical seeds", i)
		}
	}
	ao, bo := a.Objects(), b.Objects()
	if len(ao) != len(bo) {
		t.Fatalf("item counts differ: %d vs %d", len(ao), len(bo))
	}
	for i := range ao {
		if ao[i].Type != bo[i].Type || ao[i].X != bo[i].X || ao[i].Y != bo[i].Y {
			t.Fatalf("item %d differs", i)
		}
	}

	cfg := scenarioConfig()
	cfg.Seed = 43
	c := newWorld(t, cfg)
	same := true
	for i, cell := range c.Grid().Cells() {
		if cell.Terrain != ac[i].Terrain {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds should produce different terrain")
	}
}

func TestRegenerateSwapsOnlyOnSuccess(t *testing.T) {
	w := newWorld(t, scenarioConfig())
	grid := w.Grid()

	bad := w.Config()
	bad.Recipe = "missing"
	if err := w.Reconfigure(bad); !errors.Is(err, terrain.ErrUnknownRecipe) {
		t.Fatalf("expected ErrUnknownRecipe, got %v", err)
	}
	if w.Grid() != grid || w.Config().Recipe != "coast" {
		t.Fatal("failed regeneration must keep the previous world")
	}

	bad = w.Config()
	bad.TileSize = 12
	if err := w.Reconfigure(bad); !errors.Is(err, render.ErrAtlasSize) {
		t.Fatalf("expected ErrAtlasSize, got %v", err)
	}

	if err := w.Regenerate(7); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	if w.Grid() == grid || w.Config().Seed != 7 {
		t.Fatal("successful regeneration should swap the world")
	}
}

func TestObjectQueries(t *testing.T) {
	w := newWorld(t, scenarioConfig())
	objects := w.Objects()
	if len(objects) == 0 {
		t.Fatal("a 100x100 world should spawn items")
	}

	around := w.ObjectsAround(core.SectionID{Row: 0, Col: 0})
	for i, it := range around {
		if it.Section.Row > 1 || it.Section.Col > 1 {
			t.Fatalf("item from section %+v outside the neighborhood", it.Section)
		}
		if i > 0 && around[i-1].Z > it.Z {
			t.Fatal("items should be ordered by Z")
		}
	}

	it := objects[0]
	hit := w.ItemAt(it.X, it.Y)
	if hit == nil || !hit.Contains(it.X, it.Y) {
		t.Fatalf("ItemAt(%d,%d) missed the spawned item", it.X, it.Y)
	}
	if got := w.SpeedAt(it.X, it.Y); got != hit.SpeedFactor() {
		t.Fatalf("SpeedAt %v, want %v", got, hit.SpeedFactor())
	}
	if w.SpeedAt(-1, -1) != 0 {
		t.Fatal("outside the world nothing moves")
	}
	if w.ItemAt(-1, 0) != nil {
		t.Fatal("no item outside the world")
	}
}

func TestParameters(t *testing.T) {
	w := newWorld(t, scenarioConfig())
	snap := w.Parameters()
	if p, ok := snap.Lookup("seed"); !ok || p.Value != "42" {
		t.Fatalf("seed parameter %+v", p)
	}
	if p, ok := snap.Lookup("recipe"); !ok || p.Value != "coast" || p.Type != core.ParamTypeString {
		t.Fatalf("recipe parameter %+v", p)
	}
	if _, ok := snap.Lookup("count_ocean"); !ok {
		t.Fatal("terrain histogram missing")
	}

	if !w.SetIntParameter("gradient", 4) || w.Config().GradientSize != 4 {
		t.Fatal("gradient change should regenerate")
	}
	if w.SetIntParameter("gradient", 0) {
		t.Fatal("zero gradient must be rejected")
	}
	if !w.SetFloatParameter("grass_chance", 0.1) || w.Config().GrassChance != 0.1 {
		t.Fatal("grass chance change should regenerate")
	}
	if w.SetFloatParameter("grass_chance", 2) || w.SetFloatParameter("nope", 1) || w.SetIntParameter("nope", 1) {
		t.Fatal("invalid settings must be rejected")
	}
	if len(w.ParameterControls()) == 0 {
		t.Fatal("expected adjustable controls")
	}
}
