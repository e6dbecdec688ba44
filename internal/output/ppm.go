package output

import (
	"bufio"
	"fmt"
	"image"
	"io"

	"raymarch/internal/graphics"
)

// WritePPM writes fb as a binary P6 image. Alpha is dropped.
func WritePPM(w io.Writer, fb *graphics.FrameBuffer) error {
	return EncodePPM(w, fb.Image())
}

// EncodePPM writes img as a binary P6 image.
func EncodePPM(w io.Writer, img *image.NRGBA) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", b.Dx(), b.Dy()); err != nil {
		return err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		row := img.Pix[off : off+4*b.Dx()]
		for x := 0; x < len(row); x += 4 {
			if _, err := bw.Write(row[x : x+3]); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
