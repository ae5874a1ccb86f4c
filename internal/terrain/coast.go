package terrain

import (
	"tileworld/internal/core"
	prng "tileworld/pkg/core"
)

const (
	coastGrassChance = 0.05
	coastGrassSize   = 5
)

// coast rings the world with ocean, a shallow shelf and a beach before the
// dirt interior, then raises a mountain range at the center.
func coast(s *Shaper, opts Options) {
	g := s.Gradient()
	w, h := s.Grid().W, s.Grid().H

	s.Edges(0, core.TerrainOcean, core.TerrainShallow, true)
	s.Edges(g, core.TerrainShallow, core.TerrainBeach, false)
	s.Edges(3*g, core.TerrainBeach, core.TerrainDirt, false)

	s.MountainRange(prng.Round(float64(w)/2), prng.Round(float64(h)/2))

	s.Fill(4*g, w-4*g, 4*g, h-4*g, core.TerrainDirt, false)
	// Narrow grids leave gaps between the bands and the interior rectangle.
	s.Fill(0, w, 0, h, core.TerrainDirt, false)

	chance, size := opts.grass(coastGrassChance, coastGrassSize)
	s.Scatter(chance, size, core.TerrainGrass, core.TerrainDirt)
}

func init() {
	Register("coast", coast)
}
