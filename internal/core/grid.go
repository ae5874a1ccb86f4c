package core

import (
	"fmt"
	"image/color"
)

// Direction names one of the eight neighbor slots of a cell.
type Direction int

const (
	Above Direction = iota
	Below
	Left
	Right
	UpperLeft
	UpperRight
	LowerLeft
	LowerRight

	directionCount
)

var directionOffsets = [directionCount][2]int{
	Above:      {0, -1},
	Below:      {0, 1},
	Left:       {-1, 0},
	Right:      {1, 0},
	UpperLeft:  {-1, -1},
	UpperRight: {1, -1},
	LowerLeft:  {-1, 1},
	LowerRight: {1, 1},
}

// Directions lists all neighbor slots.
var Directions = []Direction{Above, Below, Left, Right, UpperLeft, UpperRight, LowerLeft, LowerRight}

// Opposite returns the slot pointing back from the neighbor.
func (d Direction) Opposite() Direction {
	switch d {
	case Above:
		return Below
	case Below:
		return Above
	case Left:
		return Right
	case Right:
		return Left
	case UpperLeft:
		return LowerRight
	case LowerRight:
		return UpperLeft
	case UpperRight:
		return LowerLeft
	default:
		return UpperRight
	}
}

// Cell is one block of the world grid.
type Cell struct {
	X, Y    int
	Terrain Terrain
	Color   color.RGBA
	Section SectionID
	Items   []*Item
}

// Grid stores the world's cells in row-major order. Neighbor relations are
// index arithmetic resolved once at construction.
type Grid struct {
	W, H     int
	TileSize int

	// SectionW and SectionH are the section extent in blocks.
	SectionW, SectionH int

	cells     []Cell
	neighbors [][directionCount]int32
}

// NewGrid allocates a w*h grid of unset cells. w and h must be positive
// multiples of the section extent and tileSize must be positive.
func NewGrid(w, h, tileSize, sectionW, sectionH int) (*Grid, error) {
	if sectionW <= 0 || sectionH <= 0 {
		return nil, fmt.Errorf("%w: section %dx%d", ErrInvalidDimensions, sectionW, sectionH)
	}
	if w <= 0 || h <= 0 || w%sectionW != 0 || h%sectionH != 0 {
		return nil, fmt.Errorf("%w: grid %dx%d is not a positive multiple of section %dx%d", ErrInvalidDimensions, w, h, sectionW, sectionH)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size %d", ErrInvalidDimensions, tileSize)
	}

	g := &Grid{
		W:         w,
		H:         h,
		TileSize:  tileSize,
		SectionW:  sectionW,
		SectionH:  sectionH,
		cells:     make([]Cell, w*h),
		neighbors: make([][directionCount]int32, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := g.Index(x, y)
			g.cells[i] = Cell{X: x, Y: y, Section: SectionID{Row: y / sectionH, Col: x / sectionW}}
			for d, off := range directionOffsets {
				nx, ny := x+off[0], y+off[1]
				if g.InBounds(nx, ny) {
					g.neighbors[i][d] = int32(g.Index(nx, ny))
				} else {
					g.neighbors[i][d] = -1
				}
			}
		}
	}
	return g, nil
}

// Size reports the grid dimensions in blocks.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether block (x, y) exists.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Cells exposes the backing slice so callers can iterate in row-major order.
func (g *Grid) Cells() []Cell { return g.cells }

// Cell returns the block at (x, y) or nil outside the grid.
func (g *Grid) Cell(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[g.Index(x, y)]
}

// Neighbor returns the adjacent cell in direction d, if any.
func (g *Grid) Neighbor(x, y int, d Direction) (*Cell, bool) {
	if !g.InBounds(x, y) || d < 0 || d >= directionCount {
		return nil, false
	}
	n := g.neighbors[g.Index(x, y)][d]
	if n < 0 {
		return nil, false
	}
	return &g.cells[n], true
}

// Neighbors returns the up-to-8 cells adjacent to (x, y).
func (g *Grid) Neighbors(x, y int) []*Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	out := make([]*Cell, 0, directionCount)
	for _, n := range g.neighbors[g.Index(x, y)] {
		if n >= 0 {
			out = append(out, &g.cells[n])
		}
	}
	return out
}

// Borders reports whether any neighbor of (x, y) has terrain t.
func (g *Grid) Borders(x, y int, t Terrain) bool {
	if !g.InBounds(x, y) {
		return false
	}
	for _, n := range g.neighbors[g.Index(x, y)] {
		if n >= 0 && g.cells[n].Terrain == t {
			return true
		}
	}
	return false
}

// Set writes the terrain category together with its display color.
func (g *Grid) Set(x, y int, t Terrain) {
	c := &g.cells[g.Index(x, y)]
	c.Terrain = t
	c.Color = Terrains[t].Color
}

// IsSet reports whether (x, y) already carries a category.
func (g *Grid) IsSet(x, y int) bool {
	return g.cells[g.Index(x, y)].Terrain != TerrainUnset
}

// TerrainAt returns the category at (x, y), or TerrainUnset outside the grid.
func (g *Grid) TerrainAt(x, y int) Terrain {
	if !g.InBounds(x, y) {
		return TerrainUnset
	}
	return g.cells[g.Index(x, y)].Terrain
}

// PixelSize reports the grid extent in pixels.
func (g *Grid) PixelSize() (int, int) {
	return g.W * g.TileSize, g.H * g.TileSize
}

// SectionPixelSize reports the pixel extent of one section.
func (g *Grid) SectionPixelSize() (int, int) {
	return g.SectionW * g.TileSize, g.SectionH * g.TileSize
}

// SectionCount reports how many sections the grid spans per axis.
func (g *Grid) SectionCount() Size {
	return Size{W: g.W / g.SectionW, H: g.H / g.SectionH}
}

// CellAt locates the block containing world pixel (px, py).
func (g *Grid) CellAt(px, py int) (*Cell, error) {
	pw, ph := g.PixelSize()
	if px < 0 || py < 0 || px >= pw || py >= ph {
		return nil, fmt.Errorf("%w: pixel (%d,%d) outside %dx%d", ErrOutOfBounds, px, py, pw, ph)
	}
	return &g.cells[g.Index(px/g.TileSize, py/g.TileSize)], nil
}

// SectionOfPixel returns the section containing world pixel (px, py).
func (g *Grid) SectionOfPixel(px, py int) (SectionID, error) {
	pw, ph := g.PixelSize()
	if px < 0 || py < 0 || px >= pw || py >= ph {
		return SectionID{}, fmt.Errorf("%w: pixel (%d,%d) outside %dx%d", ErrOutOfBounds, px, py, pw, ph)
	}
	sw, sh := g.SectionPixelSize()
	return SectionID{Row: py / sh, Col: px / sw}, nil
}

// SectionOfBlock returns the section containing block (bx, by).
func (g *Grid) SectionOfBlock(bx, by int) (SectionID, error) {
	if !g.InBounds(bx, by) {
		return SectionID{}, fmt.Errorf("%w: block (%d,%d) outside %dx%d", ErrOutOfBounds, bx, by, g.W, g.H)
	}
	return SectionID{Row: by / g.SectionH, Col: bx / g.SectionW}, nil
}

// Counts returns how many cells carry each category, unset included.
func (g *Grid) Counts() map[Terrain]int {
	out := make(map[Terrain]int, terrainCount)
	for i := range g.cells {
		out[g.cells[i].Terrain]++
	}
	return out
}

// Unset returns the number of cells no pass has written.
func (g *Grid) Unset() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Terrain == TerrainUnset {
			n++
		}
	}
	return n
}
