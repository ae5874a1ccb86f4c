package items

import "tileworld/internal/core"

// Def is the static description of an item type. Width and Height are in
// half-tile units before Multiplier is applied.
type Def struct {
	Name string

	AtlasX, AtlasY int
	Z              int

	Width, Height int
	Multiplier    int

	Pass      bool
	PassSlow  float64
	CanPickup bool
	Stack     int
}

func def(name string, ax, ay int, opts ...func(*Def)) Def {
	s := Def{
		Name:       name,
		AtlasX:     ax,
		AtlasY:     ay,
		Width:      1,
		Height:     1,
		Multiplier: 1,
		PassSlow:   1,
		Stack:      1,
	}
	for _, o := range opts {
		o(&s)
	}
	return s
}

func layer(z int) func(*Def) { return func(s *Def) { s.Z = z } }
func double(s *Def) { s.Multiplier = 2 }
func pickup(s *Def) { s.CanPickup = true }
func stack(n int) func(*Def) { return func(s *Def) { s.Stack = n } }
func size(w, h int) func(*Def) { return func(s *Def) { s.Width, s.Height = w, h } }
func slow(f float64) func(*Def) {
	return func(s *Def) { s.Pass, s.PassSlow = true, f }
}

// Catalog holds the definition of every item type, indexed by type.
var Catalog = [core.ItemTypeCount]Def{
	core.ItemTree:     def("tree", 6, 6, layer(1), size(2, 2), slow(.5)),
	core.ItemBerry:    def("berry", 11, 0, layer(1), double),
	core.ItemBush:     def("bush", 10, 0, layer(1), double),
	core.ItemFern:     def("fern", 1, 5, layer(1), double),
	core.ItemFlowerA:  def("flowerA", 0, 5, pickup),
	core.ItemFlowerB:  def("flowerB", 0, 6, pickup),
	core.ItemMushroom: def("mushroom", 4, 5, pickup),
	core.ItemGrassA:   def("grassA", 4, 6),
	core.ItemGrassB:   def("grassB", 4, 7),
	core.ItemGrassC:   def("grassC", 5, 7),
	core.ItemGrassD:   def("grassD", 5, 6),
	core.ItemPlant:    def("plant", 8, 1, double),
	core.ItemRockA:    def("rockA", 8, 3, layer(1), double),
	core.ItemRockB:    def("rockB", 9, 3, layer(1), double),
	core.ItemRockC:    def("rockC", 10, 3, layer(1), double),
	core.ItemRockD:    def("rockD", 1, 7, layer(1), double),
	core.ItemRockE:    def("rockE", 3, 7, layer(1), double),
	core.ItemRocksA:   def("rocksA", 0, 7, pickup, stack(3)),
	core.ItemRocksB:   def("rocksB", 2, 7, pickup, stack(3)),
	core.ItemBone:     def("bone", 8, 5, pickup),
	core.ItemLog:      def("log", 7, 5, layer(1), double),
	core.ItemStickA:   def("stickA", 6, 0, pickup),
	core.ItemStickB:   def("stickB", 7, 0, pickup),
	core.ItemHemp:     def("hemp", 9, 1, layer(1), pickup),
	core.ItemClay:     def("clay", 5, 5, layer(1), pickup),
	core.ItemRoots:    def("roots", 1, 6, pickup),
	core.ItemHammer:   def("hammer", 0, 0),
	core.ItemKnife:    def("knife", 1, 0, pickup),
	core.ItemAxe:      def("axe", 2, 0, pickup),
	core.ItemRope:     def("rope", 5, 0, pickup),
}

// Name returns the catalog name of t.
func Name(t core.ItemType) string {
	if t >= core.ItemTypeCount {
		return "invalid"
	}
	return Catalog[t].Name
}

// New instantiates an item of type t sized for tileSize. Position fields are
// left for the caller.
func New(t core.ItemType, tileSize int) *core.Item {
	s := Catalog[t]
	unit := tileSize / 2
	return &core.Item{
		Type:      t,
		Width:     s.Width * unit * s.Multiplier,
		Height:    s.Height * unit * s.Multiplier,
		Z:         s.Z,
		AtlasX:    s.AtlasX,
		AtlasY:    s.AtlasY,
		Pass:      s.Pass,
		PassSlow:  s.PassSlow,
		CanPickup: s.CanPickup,
		Stack:     s.Stack,
	}
}
