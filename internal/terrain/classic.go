package terrain

import (
	"tileworld/internal/core"
	prng "tileworld/pkg/core"
)

const (
	classicGrassChance = 0.02
	classicGrassSize   = 5
)

// classic is the shelf-less variant: ocean runs straight into beach.
func classic(s *Shaper, opts Options) {
	g := s.Gradient()
	w, h := s.Grid().W, s.Grid().H

	s.Edges(0, core.TerrainOcean, core.TerrainBeach, true)
	s.Edges(2*g, core.TerrainBeach, core.TerrainDirt, false)

	s.MountainRange(prng.Round(float64(w)/2), prng.Round(float64(h)/2))

	s.Fill(4*g, w-4*g, 4*g, h-4*g, core.TerrainDirt, false)
	s.Fill(0, w, 0, h, core.TerrainDirt, false)

	chance, size := opts.grass(classicGrassChance, classicGrassSize)
	s.Scatter(chance, size, core.TerrainGrass, core.TerrainDirt)
}

func init() {
	Register("classic", classic)
}
