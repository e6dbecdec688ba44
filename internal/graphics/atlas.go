package graphics

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ErrMalformedAtlas is wrapped by every atlas construction failure.
var ErrMalformedAtlas = errors.New("malformed texture atlas")

// TextureAtlas is an immutable strip of equal-size square textures packed
// left to right in a single image.
type TextureAtlas struct {
	size   int // edge length of one texture, also the image height
	count  int
	width  int // size * count
	pixels []uint32
}

// NewTextureAtlas builds an atlas from a width x height packed pixel slice.
// The width must be an exact multiple of the height.
func NewTextureAtlas(width, height int, pixels []uint32) (*TextureAtlas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: empty image %dx%d", ErrMalformedAtlas, width, height)
	}
	if width%height != 0 {
		return nil, fmt.Errorf("%w: width %d is not a multiple of height %d (want N square textures packed horizontally)",
			ErrMalformedAtlas, width, height)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("%w: got %d pixels for a %dx%d image, want 32-bit pixels",
			ErrMalformedAtlas, len(pixels), width, height)
	}
	return &TextureAtlas{
		size:   height,
		count:  width / height,
		width:  width,
		pixels: pixels,
	}, nil
}

// AtlasFromImage converts a decoded image into an atlas.
func AtlasFromImage(img image.Image) (*TextureAtlas, error) {
	src := toNRGBA(img)
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w; x++ {
			pixels[x+y*w] = PackColor(row[x*4], row[x*4+1], row[x*4+2], row[x*4+3])
		}
	}
	return NewTextureAtlas(w, h, pixels)
}

// toNRGBA converts any image to a zero-origin NRGBA image.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

func (a *TextureAtlas) TextureSize() int  { return a.size }
func (a *TextureAtlas) TextureCount() int { return a.count }

// Pixel returns pixel (x, y) of texture idx. Out of range arguments are a
// logic error in the caller's geometry.
func (a *TextureAtlas) Pixel(x, y, idx int) uint32 {
	if x < 0 || y < 0 || idx < 0 || x >= a.size || y >= a.size || idx >= a.count {
		panic(fmt.Sprintf("graphics: atlas pixel (%d, %d) of texture %d out of range (size %d, count %d)",
			x, y, idx, a.size, a.count))
	}
	return a.pixels[x+idx*a.size+y*a.width]
}

// ScaledColumn resamples column x of texture idx to height samples with
// nearest-neighbor: row j reads source row j*size/height.
func (a *TextureAtlas) ScaledColumn(idx, x, height int) []uint32 {
	return a.AppendScaledColumn(nil, idx, x, height)
}

// AppendScaledColumn is ScaledColumn appending into dst, so callers can
// reuse a scratch slice across columns.
func (a *TextureAtlas) AppendScaledColumn(dst []uint32, idx, x, height int) []uint32 {
	return a.AppendScaledColumnRows(dst, idx, x, height, 0, height)
}

// AppendScaledColumnRows appends rows [from, to) of the height-sample
// resampling of column x of texture idx. Rows outside [0, height) are
// skipped, which lets a caller fetch only the part of a very tall column
// that lands on screen.
func (a *TextureAtlas) AppendScaledColumnRows(dst []uint32, idx, x, height, from, to int) []uint32 {
	if x < 0 || idx < 0 || x >= a.size || idx >= a.count {
		panic(fmt.Sprintf("graphics: atlas column %d of texture %d out of range (size %d, count %d)",
			x, idx, a.size, a.count))
	}
	if height < 0 {
		panic(fmt.Sprintf("graphics: negative column height %d", height))
	}
	from, to = max(from, 0), min(to, height)
	base := x + idx*a.size
	for j := from; j < to; j++ {
		dst = append(dst, a.pixels[base+(j*a.size/height)*a.width])
	}
	return dst
}

// Image returns a copy of the atlas as an image.NRGBA.
func (a *TextureAtlas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, a.width, a.size))
	for i, c := range a.pixels {
		img.Pix[i*4], img.Pix[i*4+1], img.Pix[i*4+2], img.Pix[i*4+3] = UnpackColor(c)
	}
	return img
}
