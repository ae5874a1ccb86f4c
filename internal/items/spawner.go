package items

import (
	"tileworld/internal/core"
	prng "tileworld/pkg/core"
)

// Spawner rolls the terrain spawn bands for cells and keeps the flat list of
// every item it placed.
type Spawner struct {
	rng      *prng.RNG
	tileSize int
	objects  []*core.Item
}

// NewSpawner creates a spawner drawing from rng. tileSize sizes and places
// the spawned items.
func NewSpawner(rng *prng.RNG, tileSize int) *Spawner {
	return &Spawner{rng: rng, tileSize: tileSize}
}

// Roll draws once against the spawn bands of the cell's terrain. Bands are
// consecutive intervals [lo, lo+threshold]; the first interval holding the
// draw picks one of its types uniformly. The item is appended to the cell
// and to the object list. Roll returns nil when nothing spawned.
func (s *Spawner) Roll(cell *core.Cell) *core.Item {
	if cell == nil || !cell.Terrain.Valid() {
		return nil
	}
	bands := core.Terrains[cell.Terrain].Spawns
	if len(bands) == 0 {
		return nil
	}

	r := s.rng.Float64()
	lo := 0.0
	for _, band := range bands {
		if r >= lo && r <= lo+band.Threshold {
			t := band.Types[s.rng.IntN(len(band.Types))]
			it := s.place(t, cell)
			cell.Items = append(cell.Items, it)
			s.objects = append(s.objects, it)
			return it
		}
		lo += band.Threshold
	}
	return nil
}

// place anchors items at least half a tile in size on the cell origin and
// nudges smaller ones half a tile inward.
func (s *Spawner) place(t core.ItemType, cell *core.Cell) *core.Item {
	it := New(t, s.tileSize)
	it.X = cell.X * s.tileSize
	if it.Width*2 < s.tileSize {
		it.X += s.tileSize / 2
	}
	it.Y = cell.Y * s.tileSize
	if it.Height*2 < s.tileSize {
		it.Y += s.tileSize / 2
	}
	it.CellX, it.CellY = cell.X, cell.Y
	it.Section = cell.Section
	return it
}

// Objects returns every item spawned so far, in spawn order.
func (s *Spawner) Objects() []*core.Item { return s.objects }
