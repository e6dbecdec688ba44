package graphics

import "testing"

func TestPackColorLayout(t *testing.T) {
	c := PackColor(1, 2, 3, 4)
	if c != 0x04030201 {
		t.Fatalf("PackColor = %#x, want 0x04030201", c)
	}
	r, g, b, a := UnpackColor(c)
	if r != 1 || g != 2 || b != 3 || a != 4 {
		t.Fatalf("UnpackColor = %d %d %d %d", r, g, b, a)
	}
	if Alpha(RGB(9, 9, 9)) != 255 {
		t.Fatal("RGB must default alpha to 255")
	}
}

func TestFrameBufferSetPixelBounds(t *testing.T) {
	fb := NewFrameBuffer(4, 3, White)
	fb.SetPixel(3, 2, Red)
	if fb.Pixels()[3+2*4] != Red {
		t.Fatal("SetPixel did not write row-major")
	}
	for _, p := range [][2]int{{4, 0}, {0, 3}, {-1, 0}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SetPixel(%d,%d) did not panic", p[0], p[1])
				}
			}()
			fb.SetPixel(p[0], p[1], Red)
		}()
	}
}

func TestDrawRectangleClips(t *testing.T) {
	fb := NewFrameBuffer(5, 5, White)
	fb.DrawRectangle(-2, -2, 4, 4, Red) // covers (0..1, 0..1)
	fb.DrawRectangle(4, 4, 10, 10, Black)

	count := map[uint32]int{}
	for _, c := range fb.Pixels() {
		count[c]++
	}
	if count[Red] != 4 || count[Black] != 1 || count[White] != 20 {
		t.Fatalf("pixel counts = %v", count)
	}
	if fb.At(1, 1) != Red || fb.At(4, 4) != Black || fb.At(2, 2) != White {
		t.Fatal("rectangles landed in the wrong place")
	}
	if len(fb.Pixels()) != 25 {
		t.Fatal("buffer length changed")
	}
}

func TestClearAndImage(t *testing.T) {
	fb := NewFrameBuffer(3, 2, White)
	fb.Clear(PackColor(10, 20, 30, 0))
	img := fb.Image()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("image bounds = %v", img.Bounds())
	}
	c := img.NRGBAAt(2, 1)
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 255 {
		t.Fatalf("image pixel = %+v, want opaque (10,20,30)", c)
	}
}

func TestNewFrameBufferRejectsEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewFrameBuffer(0, 10, White)
}
