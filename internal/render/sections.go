package render

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"tileworld/internal/core"
)

// SectionState tracks whether a section surface holds the current terrain.
type SectionState uint8

const (
	Stale SectionState = iota
	Rendered
)

// ItemRoller places at most one item on a cell while it is rendered.
type ItemRoller interface {
	Roll(cell *core.Cell) *core.Item
}

// Sections owns one pre-rendered surface per section of the grid.
type Sections struct {
	grid  *core.Grid
	atlas *Atlas
	count core.Size

	surfaces []*image.RGBA
	states   []SectionState
}

// NewSections allocates a stale surface for every section of grid. The atlas
// tiles must match the grid's tile size.
func NewSections(grid *core.Grid, atlas *Atlas) (*Sections, error) {
	if atlas == nil || atlas.TileSize != grid.TileSize {
		return nil, fmt.Errorf("%w: atlas tiles do not match tile size %d", ErrAtlasSize, grid.TileSize)
	}
	count := grid.SectionCount()
	sw, sh := grid.SectionPixelSize()
	s := &Sections{
		grid:     grid,
		atlas:    atlas,
		count:    count,
		surfaces: make([]*image.RGBA, count.W*count.H),
		states:   make([]SectionState, count.W*count.H),
	}
	for i := range s.surfaces {
		s.surfaces[i] = image.NewRGBA(image.Rect(0, 0, sw, sh))
	}
	return s, nil
}

// Count reports the number of sections per axis.
func (s *Sections) Count() core.Size { return s.count }

// Has reports whether id addresses a section of the grid.
func (s *Sections) Has(id core.SectionID) bool {
	return id.Row >= 0 && id.Col >= 0 && id.Row < s.count.H && id.Col < s.count.W
}

func (s *Sections) index(id core.SectionID) int { return id.Row*s.count.W + id.Col }

// Surface returns the pixels of section id, or nil when id is outside the
// grid.
func (s *Sections) Surface(id core.SectionID) *image.RGBA {
	if !s.Has(id) {
		return nil
	}
	return s.surfaces[s.index(id)]
}

// State returns the render state of section id.
func (s *Sections) State(id core.SectionID) SectionState {
	if !s.Has(id) {
		return Stale
	}
	return s.states[s.index(id)]
}

// Render draws every section in row-major order. Within a section, cells are
// visited row by row; each gets its terrain tile and one roll of roller when
// it is non-nil.
func (s *Sections) Render(roller ItemRoller) {
	for row := 0; row < s.count.H; row++ {
		for col := 0; col < s.count.W; col++ {
			s.renderSection(core.SectionID{Row: row, Col: col}, roller)
		}
	}
}

func (s *Sections) renderSection(id core.SectionID, roller ItemRoller) {
	surface := s.surfaces[s.index(id)]
	ts := s.grid.TileSize
	x0, y0 := id.Col*s.grid.SectionW, id.Row*s.grid.SectionH

	for by := 0; by < s.grid.SectionH; by++ {
		for bx := 0; bx < s.grid.SectionW; bx++ {
			cell := s.grid.Cell(x0+bx, y0+by)
			dst := image.Rect(bx*ts, by*ts, (bx+1)*ts, (by+1)*ts)
			if src := s.atlas.Tile(cell.Terrain); !src.Empty() {
				draw.Draw(surface, dst, s.atlas.Image, src.Min, draw.Src)
			} else {
				draw.Draw(surface, dst, image.Transparent, image.Point{}, draw.Src)
			}
			if roller != nil {
				roller.Roll(cell)
			}
		}
	}
	s.states[s.index(id)] = Rendered
}
