package terrain

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"tileworld/internal/core"
	prng "tileworld/pkg/core"
)

// Shaper assigns terrain categories to a grid through ordered passes. Every
// pass clamps its writes to the grid, and every write goes through
// core.Grid.Set so category and color never disagree.
type Shaper struct {
	grid     *core.Grid
	rng      *prng.RNG
	gradient int
}

// NewShaper binds a shaper to grid, drawing randomness from rng. gradient is
// the base band width of the edge layering passes.
func NewShaper(grid *core.Grid, rng *prng.RNG, gradient int) *Shaper {
	return &Shaper{grid: grid, rng: rng, gradient: gradient}
}

// Grid returns the grid being shaped.
func (s *Shaper) Grid() *core.Grid { return s.grid }

// Gradient returns the band width parameter.
func (s *Shaper) Gradient() int { return s.gradient }

// Overwrite builds an allow-list of categories a pass may paint over.
func Overwrite(ts ...core.Terrain) mapset.Set[core.Terrain] {
	return mapset.Of(ts...)
}

// LayerTop paints a band 2g deep downward from row startY across columns
// [startX, endX).
func (s *Shaper) LayerTop(startX, endX, startY int, typ, fill core.Terrain, overwrite bool) {
	s.layer(startX, endX, func(line, depth int) (int, int) {
		return line, startY + depth
	}, typ, fill, overwrite)
}

// LayerRight paints a band 2g deep leftward from column startX across rows
// [startY, endY).
func (s *Shaper) LayerRight(startX, startY, endY int, typ, fill core.Terrain, overwrite bool) {
	s.layer(startY, endY, func(line, depth int) (int, int) {
		return startX - depth, line
	}, typ, fill, overwrite)
}

// LayerBelow paints a band 2g deep upward from row startY across columns
// [startX, endX).
func (s *Shaper) LayerBelow(startX, endX, startY int, typ, fill core.Terrain, overwrite bool) {
	s.layer(startX, endX, func(line, depth int) (int, int) {
		return line, startY - depth
	}, typ, fill, overwrite)
}

// LayerLeft paints a band 2g deep rightward from column startX across rows
// [startY, endY).
func (s *Shaper) LayerLeft(startX, startY, endY int, typ, fill core.Terrain, overwrite bool) {
	s.layer(startY, endY, func(line, depth int) (int, int) {
		return startX + depth, line
	}, typ, fill, overwrite)
}

// Edges runs the four layering passes inset by offset blocks from each edge.
func (s *Shaper) Edges(offset int, typ, fill core.Terrain, overwrite bool) {
	w, h := s.grid.W, s.grid.H
	s.LayerTop(offset, w-offset, offset, typ, fill, overwrite)
	s.LayerRight(w-1-offset, offset, h-offset, typ, fill, overwrite)
	s.LayerBelow(offset, w-offset, h-1-offset, typ, fill, overwrite)
	s.LayerLeft(offset, offset, h-offset, typ, fill, overwrite)
}

// layer walks lines [from, to) and paints depths [0, 2g) along each. The cut
// between typ and fill sits at g plus the average of this line's and the
// previous line's random push.
func (s *Shaper) layer(from, to int, cell func(line, depth int) (int, int), typ, fill core.Terrain, overwrite bool) {
	g := s.gradient
	prevPush := g
	for line := from; line < to; line++ {
		push := s.rng.Scaled(float64(g))
		middle := prng.Round(float64(push+prevPush) / 2)

		for depth := 0; depth < 2*g; depth++ {
			x, y := cell(line, depth)
			if !s.grid.InBounds(x, y) {
				continue
			}
			if !overwrite && s.grid.IsSet(x, y) {
				continue
			}
			if depth < g+middle {
				s.grid.Set(x, y, typ)
			} else if fill != core.TerrainUnset && s.grid.TerrainAt(x, y) != typ {
				s.grid.Set(x, y, fill)
			}
		}

		prevPush = push
	}
}

// Blob grows a random smoothed shape of radius d around (cx, cy). Cells are
// painted with typ when unset or when their category is in overwrite.
func (s *Shaper) Blob(cx, cy, d, smooth int, typ core.Terrain, overwrite mapset.Set[core.Terrain]) {
	fd := float64(d)
	startX := prng.Round(float64(cx) - fd - fd*s.rng.Float64())
	endX := prng.Round(float64(cx) + fd + fd*s.rng.Float64())
	startY := cy - d
	endY := cy + d
	half := fd / 2

	var prevA, prevB float64
	for x := startX; x <= endX; x++ {
		xFactor := fd - math.Abs(float64(cx-x))
		taper := math.Min(half, xFactor)
		evenedA := float64(s.rng.Scaled(fd)) + taper
		evenedB := float64(s.rng.Scaled(fd)) + taper

		for i := 0; i < smooth; i++ {
			evenedA = float64(prng.Round((evenedA + prevA) / 2))
			evenedB = float64(prng.Round((evenedB + prevB) / 2))
		}

		if x >= 0 && x < s.grid.W {
			for y := max(startY, 0); y <= endY && y < s.grid.H; y++ {
				current := s.grid.TerrainAt(x, y)
				if current != core.TerrainUnset && !overwrite.Has(current) {
					continue
				}
				fy, fcy := float64(y), float64(cy)
				if (y == cy && (evenedA > 0 || evenedB > 0)) ||
					(y < cy && fy >= fcy-evenedA) ||
					(y > cy && fy <= fcy+evenedB) {
					s.grid.Set(x, y, typ)
				}
			}
		}

		prevA = evenedA
		prevB = evenedB
	}
}

// Fill paints the rectangle [x0, x1) x [y0, y1), only over unset cells
// unless overwrite is set.
func (s *Shaper) Fill(x0, x1, y0, y1 int, typ core.Terrain, overwrite bool) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, s.grid.W), min(y1, s.grid.H)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if overwrite || !s.grid.IsSet(x, y) {
				s.grid.Set(x, y, typ)
			}
		}
	}
}

// Scatter rolls chance for every cell of category over, in row-major order,
// and grows a blob of typ with a random radius up to size on success. The
// blob may only paint over cells of category over.
func (s *Shaper) Scatter(chance float64, size int, typ, over core.Terrain) int {
	allowed := Overwrite(over)
	grown := 0
	for y := 0; y < s.grid.H; y++ {
		for x := 0; x < s.grid.W; x++ {
			if s.grid.TerrainAt(x, y) != over {
				continue
			}
			if s.rng.Float64() <= chance {
				s.Blob(x, y, s.rng.Scaled(float64(size)), 1, typ, allowed)
				grown++
			}
		}
	}
	return grown
}

// MountainRange stacks rock, mountain and lava blobs at (cx, cy). Each layer
// may only paint over the one beneath it.
func (s *Shaper) MountainRange(cx, cy int) {
	g := s.gradient
	s.Blob(cx, cy, g*4, 1, core.TerrainRock, mapset.Set[core.Terrain]{})
	s.Blob(cx, cy, g*2, 1, core.TerrainMountain, Overwrite(core.TerrainRock))
	s.Blob(cx, cy, prng.Round(float64(g)/3), 1, core.TerrainLava, Overwrite(core.TerrainMountain))
}
