package graphics

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
)

// AtlasKind selects the placeholder style used when no atlas file is set.
type AtlasKind int

const (
	WallAtlas AtlasKind = iota
	SpriteAtlas
)

func (k AtlasKind) String() string {
	switch k {
	case WallAtlas:
		return "walls"
	case SpriteAtlas:
		return "sprites"
	default:
		return fmt.Sprintf("AtlasKind(%d)", int(k))
	}
}

// placeholderColors tint placeholder textures by index.
var placeholderColors = [][3]uint8{
	{178, 34, 34},   // brick red
	{112, 128, 144}, // slate
	{85, 107, 47},   // moss
	{139, 90, 43},   // timber
	{72, 61, 139},   // dusk
	{184, 134, 11},  // ochre
	{47, 79, 79},    // teal stone
	{128, 0, 128},   // purple
}

// LoadAtlas decodes a BMP, PNG or TGA file into a texture atlas.
func LoadAtlas(path string) (*TextureAtlas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("atlas: open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("atlas: decode %s: %w", path, err)
	}
	atlas, err := AtlasFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("atlas: %s (%s): %w", path, format, err)
	}
	return atlas, nil
}

// LoadOrPlaceholder loads the atlas at path. An empty path yields a
// generated placeholder atlas of count textures of the given size; a path
// that fails to load is an error, never silently replaced.
func LoadOrPlaceholder(path string, kind AtlasKind, size, count int) (*TextureAtlas, error) {
	if path != "" {
		return LoadAtlas(path)
	}
	switch kind {
	case WallAtlas:
		return PlaceholderWallAtlas(size, count), nil
	case SpriteAtlas:
		return PlaceholderSpriteAtlas(size, count), nil
	default:
		return nil, fmt.Errorf("atlas: unknown kind %v", kind)
	}
}

func placeholderColor(idx int) [3]uint8 {
	return placeholderColors[idx%len(placeholderColors)]
}

func shade(c [3]uint8, f float64) uint32 {
	return RGB(uint8(float64(c[0])*f), uint8(float64(c[1])*f), uint8(float64(c[2])*f))
}

// PlaceholderWallAtlas generates count brick textures. Mortar lines run
// every 8 pixels at 70% of the base tint, and the top-left pixel is always
// the base tint so minimap colors stay distinct.
func PlaceholderWallAtlas(size, count int) *TextureAtlas {
	size, count = max(size, 1), max(count, 1)
	width := size * count
	pixels := make([]uint32, width*size)
	for k := 0; k < count; k++ {
		tint := placeholderColor(k)
		base, mortar := shade(tint, 1.0), shade(tint, 0.7)
		for y := 0; y < size; y++ {
			course := y / 8
			for x := 0; x < size; x++ {
				c := base
				joint := (x + (course%2)*8) % 16
				if (y > 0 && y%8 == 0) || (x > 0 && joint == 0) {
					c = mortar
				}
				pixels[x+k*size+y*width] = c
			}
		}
	}
	atlas, err := NewTextureAtlas(width, size, pixels)
	if err != nil {
		panic(err) // dimensions are constructed valid above
	}
	return atlas
}

// PlaceholderSpriteAtlas generates count round sprites on a fully
// transparent background, with a darker rim.
func PlaceholderSpriteAtlas(size, count int) *TextureAtlas {
	size, count = max(size, 1), max(count, 1)
	width := size * count
	pixels := make([]uint32, width*size)
	center := float64(size-1) / 2
	radius := float64(size) * 0.4
	for k := 0; k < count; k++ {
		tint := placeholderColor(k + 3)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				dx, dy := float64(x)-center, float64(y)-center
				d2 := dx*dx + dy*dy
				var c uint32 // transparent
				switch {
				case d2 <= (radius-2)*(radius-2):
					c = shade(tint, 1.0)
				case d2 <= radius*radius:
					c = shade(tint, 0.5)
				}
				pixels[x+k*size+y*width] = c
			}
		}
	}
	atlas, err := NewTextureAtlas(width, size, pixels)
	if err != nil {
		panic(err)
	}
	return atlas
}
