package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/aquilax/go-perlin"
	"golang.org/x/image/draw"

	"tileworld/internal/core"
)

// ErrAtlasSize is returned when a tile atlas does not hold one square tile
// per terrain category in a single row.
var ErrAtlasSize = errors.New("render: bad atlas size")

// Atlas is a single row of square terrain tiles ordered by
// core.Terrain.AtlasIndex.
type Atlas struct {
	Image    *image.RGBA
	TileSize int
}

// Tile returns the source rectangle of t's tile.
func (a *Atlas) Tile(t core.Terrain) image.Rectangle {
	i := t.AtlasIndex()
	if i < 0 {
		return image.Rectangle{}
	}
	return image.Rect(i*a.TileSize, 0, (i+1)*a.TileSize, a.TileSize)
}

// GenerateAtlas paints a placeholder atlas from the terrain table colors,
// shading each tile with Perlin noise so neighboring tiles do not read as one
// flat block.
func GenerateAtlas(tileSize int, seed int64) *Atlas {
	n := len(core.TerrainCategories)
	img := image.NewRGBA(image.Rect(0, 0, n*tileSize, tileSize))
	noise := perlin.NewPerlin(2, 2, 3, seed)

	for i, t := range core.TerrainCategories {
		base := core.Terrains[t].Color
		for y := 0; y < tileSize; y++ {
			for x := 0; x < tileSize; x++ {
				v := noise.Noise2D(float64(x)/float64(tileSize)*4+float64(i)*7, float64(y)/float64(tileSize)*4)
				img.SetRGBA(i*tileSize+x, y, shade(base, 1+0.15*v))
			}
		}
	}
	return &Atlas{Image: img, TileSize: tileSize}
}

func shade(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 {
		s := float64(v) * f
		if s < 0 {
			return 0
		}
		if s > 255 {
			return 255
		}
		return uint8(s)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// LoadAtlas decodes a PNG atlas and rescales it when its tile edge differs
// from tileSize.
func LoadAtlas(r io.Reader, tileSize int) (*Atlas, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode atlas: %w", err)
	}
	n := len(core.TerrainCategories)
	b := src.Bounds()
	if b.Dy() <= 0 || b.Dx() != n*b.Dy() {
		return nil, fmt.Errorf("%w: %dx%d, want %d square tiles in one row", ErrAtlasSize, b.Dx(), b.Dy(), n)
	}

	dst := image.NewRGBA(image.Rect(0, 0, n*tileSize, tileSize))
	if b.Dy() == tileSize {
		draw.Copy(dst, image.Point{}, src, b, draw.Src, nil)
	} else {
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	}
	return &Atlas{Image: dst, TileSize: tileSize}, nil
}
