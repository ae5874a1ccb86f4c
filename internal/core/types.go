package core

import "image/color"

// Size describes the dimensions of a grid in blocks.
type Size struct {
	W int
	H int
}

// SectionID identifies a section by its row and column in the section grid.
type SectionID struct {
	Row int
	Col int
}

// Terrain enumerates the terrain categories in build order. The zero value
// marks a cell no pass has written yet.
type Terrain uint8

const (
	TerrainUnset Terrain = iota
	TerrainOcean
	TerrainShallow
	TerrainBeach
	TerrainDirt
	TerrainGrass
	TerrainRock
	TerrainMountain
	TerrainLava

	terrainCount
)

// TerrainCategories lists every assignable category in build order.
var TerrainCategories = []Terrain{
	TerrainOcean,
	TerrainShallow,
	TerrainBeach,
	TerrainDirt,
	TerrainGrass,
	TerrainRock,
	TerrainMountain,
	TerrainLava,
}

// AtlasIndex returns the horizontal tile slot of the category in the tile
// atlas, or -1 for unset cells.
func (t Terrain) AtlasIndex() int {
	if t == TerrainUnset || t >= terrainCount {
		return -1
	}
	return int(t) - 1
}

// Valid reports whether t is an assignable category.
func (t Terrain) Valid() bool {
	return t > TerrainUnset && t < terrainCount
}

func (t Terrain) String() string {
	if t >= terrainCount {
		return "invalid"
	}
	return Terrains[t].Name
}

// ItemType enumerates the decorations and resources the spawner can place.
type ItemType uint8

const (
	ItemTree ItemType = iota
	ItemBerry
	ItemBush
	ItemFern
	ItemFlowerA
	ItemFlowerB
	ItemMushroom
	ItemGrassA
	ItemGrassB
	ItemGrassC
	ItemGrassD
	ItemPlant
	ItemRockA
	ItemRockB
	ItemRockC
	ItemRockD
	ItemRockE
	ItemRocksA
	ItemRocksB
	ItemBone
	ItemLog
	ItemStickA
	ItemStickB
	ItemHemp
	ItemClay
	ItemRoots
	ItemHammer
	ItemKnife
	ItemAxe
	ItemRope

	ItemTypeCount
)

// SpawnBand is one row of a terrain spawn table: a roll landing inside the
// band's threshold picks one of Types uniformly.
type SpawnBand struct {
	Threshold float64
	Types     []ItemType
}

// TerrainInfo is the lookup entry for a terrain category.
type TerrainInfo struct {
	Name   string
	Color  color.RGBA
	Spawns []SpawnBand
}

var (
	looseRocks = []ItemType{ItemRockA, ItemRocksA, ItemRocksB}
	boulders   = []ItemType{ItemRockA, ItemRockB, ItemRockC, ItemRockD, ItemRockE, ItemRocksA, ItemRocksB}
	plants     = []ItemType{ItemBerry, ItemBush, ItemFern, ItemFlowerA, ItemFlowerB, ItemMushroom, ItemPlant, ItemLog}
)

// Terrains maps every category to its display color and spawn bands. Adding
// a category means adding a row here and a tile to the atlas.
var Terrains = [terrainCount]TerrainInfo{
	TerrainUnset:   {Name: "unset", Color: color.RGBA{A: 0}},
	TerrainOcean:   {Name: "ocean", Color: hexRGBA(0x0088cc)},
	TerrainShallow: {Name: "shallow", Color: hexRGBA(0x00aaff)},
	TerrainBeach: {
		Name:   "beach",
		Color:  hexRGBA(0xeeddaa),
		Spawns: []SpawnBand{{Threshold: .001, Types: looseRocks}},
	},
	TerrainDirt: {
		Name:   "dirt",
		Color:  hexRGBA(0xaa9955),
		Spawns: []SpawnBand{{Threshold: .01, Types: append(append([]ItemType(nil), looseRocks...), ItemBone)}},
	},
	TerrainGrass: {
		Name:  "grass",
		Color: hexRGBA(0x88cc33),
		Spawns: []SpawnBand{
			{Threshold: .001, Types: looseRocks},
			{Threshold: .01, Types: plants},
			{Threshold: .04, Types: []ItemType{ItemTree}},
		},
	},
	TerrainRock: {
		Name:   "rock",
		Color:  hexRGBA(0xaaaaaa),
		Spawns: []SpawnBand{{Threshold: .05, Types: boulders}},
	},
	TerrainMountain: {Name: "mountain", Color: hexRGBA(0x444444)},
	TerrainLava:     {Name: "lava", Color: hexRGBA(0x660000)},
}

// ParseTerrain looks a category up by name.
func ParseTerrain(name string) (Terrain, bool) {
	for _, t := range TerrainCategories {
		if Terrains[t].Name == name {
			return t, true
		}
	}
	return TerrainUnset, false
}

func hexRGBA(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
