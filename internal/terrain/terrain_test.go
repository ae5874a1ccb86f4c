package terrain

import (
	"errors"
	"testing"

	"tileworld/internal/core"
	prng "tileworld/pkg/core"
)

func newGrid(t *testing.T, w, h int) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(w, h, 4, 25, 25)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestRecipesCoverEveryCell(t *testing.T) {
	sizes := [][2]int{{25, 25}, {50, 25}, {100, 100}, {200, 75}}
	for _, name := range Names() {
		for _, size := range sizes {
			for seed := int64(1); seed <= 3; seed++ {
				grid := newGrid(t, size[0], size[1])
				if err := Shape(grid, prng.NewRNG(seed), 5, name, Options{}); err != nil {
					t.Fatalf("%s %dx%d seed %d: %v", name, size[0], size[1], seed, err)
				}
				if n := grid.Unset(); n != 0 {
					t.Fatalf("%s %dx%d seed %d: %d cells unset", name, size[0], size[1], seed, n)
				}
			}
		}
	}
}

func TestEdgesStayOcean(t *testing.T) {
	for _, name := range Names() {
		grid := newGrid(t, 100, 75)
		if err := Shape(grid, prng.NewRNG(7), 5, name, Options{}); err != nil {
			t.Fatalf("Shape: %v", err)
		}
		for x := 0; x < grid.W; x++ {
			if grid.TerrainAt(x, 0) != core.TerrainOcean || grid.TerrainAt(x, grid.H-1) != core.TerrainOcean {
				t.Fatalf("%s: column %d edge is not ocean", name, x)
			}
		}
		for y := 0; y < grid.H; y++ {
			if grid.TerrainAt(0, y) != core.TerrainOcean || grid.TerrainAt(grid.W-1, y) != core.TerrainOcean {
				t.Fatalf("%s: row %d edge is not ocean", name, y)
			}
		}
	}
}

func TestCoastScenario(t *testing.T) {
	grid := newGrid(t, 100, 100)
	if err := Shape(grid, prng.NewRNG(42), 5, "coast", Options{}); err != nil {
		t.Fatalf("Shape: %v", err)
	}
	if got := grid.TerrainAt(0, 0); got != core.TerrainOcean {
		t.Fatalf("corner should be ocean, got %s", got)
	}
	switch got := grid.TerrainAt(50, 50); got {
	case core.TerrainRock, core.TerrainMountain, core.TerrainLava:
	default:
		t.Fatalf("center should be part of the mountain range, got %s", got)
	}
	counts := grid.Counts()
	for _, terrain := range []core.Terrain{core.TerrainShallow, core.TerrainBeach, core.TerrainDirt} {
		if counts[terrain] == 0 {
			t.Fatalf("expected some %s cells", terrain)
		}
	}
}

func TestShapeIsDeterministic(t *testing.T) {
	a := newGrid(t, 100, 50)
	b := newGrid(t, 100, 50)
	if err := Shape(a, prng.NewRNG(99), 5, "coast", Options{}); err != nil {
		t.Fatalf("Shape: %v", err)
	}
	if err := Shape(b, prng.NewRNG(99), 5, "coast", Options{}); err != nil {
		t.Fatalf("Shape: %v", err)
	}
	ac, bc := a.Cells(), b.Cells()
	for i := range ac {
		if ac[i].Terrain != bc[i].Terrain {
			t.Fatalf("cell %d differs: %s vs %s", i, ac[i].Terrain, bc[i].Terrain)
		}
	}
}

func TestPassesNeverUnsetCells(t *testing.T) {
	grid := newGrid(t, 100, 100)
	s := NewShaper(grid, prng.NewRNG(3), 5)
	g := s.Gradient()

	snapshot := func() []core.Terrain {
		out := make([]core.Terrain, len(grid.Cells()))
		for i, c := range grid.Cells() {
			out[i] = c.Terrain
		}
		return out
	}
	passes := []func(){
		func() { s.Edges(0, core.TerrainOcean, core.TerrainShallow, true) },
		func() { s.Edges(g, core.TerrainShallow, core.TerrainBeach, false) },
		func() { s.Edges(3*g, core.TerrainBeach, core.TerrainDirt, false) },
		func() { s.MountainRange(50, 50) },
		func() { s.Fill(4*g, 100-4*g, 4*g, 100-4*g, core.TerrainDirt, false) },
		func() { s.Scatter(0.05, 5, core.TerrainGrass, core.TerrainDirt) },
	}
	prev := snapshot()
	for i, pass := range passes {
		pass()
		next := snapshot()
		for j := range prev {
			if prev[j] != core.TerrainUnset && next[j] == core.TerrainUnset {
				t.Fatalf("pass %d cleared cell %d", i, j)
			}
		}
		prev = next
	}
}

func TestBlobRespectsOverwriteSet(t *testing.T) {
	grid := newGrid(t, 50, 50)
	s := NewShaper(grid, prng.NewRNG(11), 5)
	s.Fill(0, 50, 0, 50, core.TerrainDirt, true)
	s.Fill(20, 30, 20, 30, core.TerrainRock, true)

	s.Blob(25, 25, 20, 1, core.TerrainLava, Overwrite(core.TerrainRock))

	for _, c := range grid.Cells() {
		inside := c.X >= 20 && c.X < 30 && c.Y >= 20 && c.Y < 30
		if !inside && c.Terrain != core.TerrainDirt {
			t.Fatalf("blob painted over dirt at (%d,%d)", c.X, c.Y)
		}
	}
	if grid.TerrainAt(25, 25) != core.TerrainLava {
		t.Fatalf("blob center should be lava, got %s", grid.TerrainAt(25, 25))
	}
}

func TestBlobClampsToGrid(t *testing.T) {
	grid := newGrid(t, 25, 25)
	s := NewShaper(grid, prng.NewRNG(5), 5)
	s.Blob(0, 0, 40, 2, core.TerrainRock, Overwrite())
	s.Blob(24, 24, 40, 0, core.TerrainRock, Overwrite())
	if grid.TerrainAt(0, 0) != core.TerrainRock {
		t.Fatal("blob at the corner should paint its center")
	}
}

func TestLayerBandShape(t *testing.T) {
	grid := newGrid(t, 50, 25)
	s := NewShaper(grid, prng.NewRNG(8), 5)
	s.LayerTop(0, 50, 0, core.TerrainOcean, core.TerrainShallow, true)
	for x := 0; x < 50; x++ {
		for y := 0; y < 5; y++ {
			if grid.TerrainAt(x, y) != core.TerrainOcean {
				t.Fatalf("rows above the gradient must be ocean, (%d,%d) is %s", x, y, grid.TerrainAt(x, y))
			}
		}
		for y := 10; y < 25; y++ {
			if grid.IsSet(x, y) {
				t.Fatalf("band deeper than 2g at (%d,%d)", x, y)
			}
		}
	}
}

func TestScatterOnlyGrowsOverTarget(t *testing.T) {
	grid := newGrid(t, 50, 50)
	s := NewShaper(grid, prng.NewRNG(21), 5)
	s.Fill(0, 50, 0, 50, core.TerrainBeach, true)
	s.Fill(10, 40, 10, 40, core.TerrainDirt, true)
	if n := s.Scatter(1, 3, core.TerrainGrass, core.TerrainDirt); n == 0 {
		t.Fatal("chance 1 should grow blobs")
	}
	for _, c := range grid.Cells() {
		inside := c.X >= 10 && c.X < 40 && c.Y >= 10 && c.Y < 40
		if !inside && c.Terrain != core.TerrainBeach {
			t.Fatalf("grass leaked onto beach at (%d,%d)", c.X, c.Y)
		}
	}
}

func TestShapeErrors(t *testing.T) {
	grid := newGrid(t, 25, 25)
	if err := Shape(grid, prng.NewRNG(1), 5, "missing", Options{}); !errors.Is(err, ErrUnknownRecipe) {
		t.Fatalf("expected ErrUnknownRecipe, got %v", err)
	}

	Register("partial", func(s *Shaper, _ Options) {
		s.Fill(0, 10, 0, 10, core.TerrainDirt, false)
	})
	defer delete(recipes, "partial")

	if err := Shape(grid, prng.NewRNG(1), 5, "partial", Options{}); !errors.Is(err, core.ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
}

func TestOptionsOverrideGrass(t *testing.T) {
	chance, size := Options{}.grass(0.05, 5)
	if chance != 0.05 || size != 5 {
		t.Fatalf("zero options should keep defaults, got %v %d", chance, size)
	}
	chance, size = Options{GrassChance: 0.2, GrassSize: 2}.grass(0.05, 5)
	if chance != 0.2 || size != 2 {
		t.Fatalf("overrides ignored, got %v %d", chance, size)
	}
}
