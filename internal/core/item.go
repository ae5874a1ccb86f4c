package core

// Item is a decoration or resource placed on a cell. X and Y locate the
// item's center in world pixels; Width and Height are in pixels.
type Item struct {
	Type ItemType

	X, Y          int
	Width, Height int
	Z             int

	// AtlasX and AtlasY address the item's slot in the item atlas.
	AtlasX, AtlasY int

	Pass      bool
	PassSlow  float64
	CanPickup bool
	Stack     int

	CellX, CellY int
	Section      SectionID
}

// Contains reports whether the world pixel (px, py) lies on the item.
func (it *Item) Contains(px, py int) bool {
	x0 := it.X - it.Width/2
	y0 := it.Y - it.Height/2
	return px >= x0 && px <= x0+it.Width && py >= y0 && py <= y0+it.Height
}

// Walkable reports whether an occupant may move through the item.
func (it *Item) Walkable() bool { return it.Pass }

// SpeedFactor is the movement multiplier applied to occupants on the item.
// Blocking items report 0.
func (it *Item) SpeedFactor() float64 {
	if !it.Pass {
		return 0
	}
	if it.PassSlow <= 0 {
		return 1
	}
	return it.PassSlow
}
