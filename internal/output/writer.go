// Package output saves rendered frames to image files.
package output

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"raymarch/internal/graphics"
)

// ErrUnknownFormat is returned for formats other than ppm, png and webp.
var ErrUnknownFormat = errors.New("unknown output format")

const (
	FormatPPM  = "ppm"
	FormatPNG  = "png"
	FormatWebP = "webp"
)

// Writer encodes frames in one format, optionally upscaled.
type Writer struct {
	Format string
	Scale  int // values below 2 keep the framebuffer size
}

// NewWriter checks the format up front so a long run fails before its
// first frame.
func NewWriter(format string, scale int) (*Writer, error) {
	format = strings.ToLower(format)
	switch format {
	case FormatPPM, FormatPNG, FormatWebP:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &Writer{Format: format, Scale: scale}, nil
}

// Ext is the file extension for the writer's format, without the dot.
func (wr *Writer) Ext() string {
	return wr.Format
}

// Encode writes fb to w.
func (wr *Writer) Encode(w io.Writer, fb *graphics.FrameBuffer) error {
	img := wr.image(fb)
	switch wr.Format {
	case FormatPPM:
		return EncodePPM(w, img)
	case FormatPNG:
		return png.Encode(w, img)
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, wr.Format)
}

// WriteFile encodes fb into path, creating parent directories as needed.
func (wr *Writer) WriteFile(path string, fb *graphics.FrameBuffer) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := wr.Encode(f, fb); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// FrameName is the file name of frame n, e.g. 00042.png.
func (wr *Writer) FrameName(n int) string {
	return fmt.Sprintf("%05d.%s", n, wr.Ext())
}

func (wr *Writer) image(fb *graphics.FrameBuffer) *image.NRGBA {
	src := fb.Image()
	if wr.Scale < 2 {
		return src
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*wr.Scale, b.Dy()*wr.Scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
