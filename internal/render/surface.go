package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrBufferSize is returned when a caller-provided pixel buffer does not
// match the surface dimensions.
var ErrBufferSize = errors.New("render: pixel buffer size mismatch")

// Surface is an RGBA pixel buffer, row-major with a top-left origin and four
// bytes per pixel. It never reallocates Pix after construction.
type Surface struct {
	W, H int
	Pix  []byte
}

// NewSurface allocates a w×h surface cleared to transparent black.
func NewSurface(w, h int) *Surface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Surface{W: w, H: h, Pix: make([]byte, 4*w*h)}
}

// WrapSurface adopts pix as the backing store of a w×h surface.
func WrapSurface(pix []byte, w, h int) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d surface", ErrBufferSize, w, h)
	}
	if len(pix) != 4*w*h {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %dx%d", ErrBufferSize, len(pix), 4*w*h, w, h)
	}
	return &Surface{W: w, H: h, Pix: pix}, nil
}

// FillRect paints the w×h block whose top-left corner is (x, y). Pixels
// falling outside the surface are clipped.
func (s *Surface) FillRect(x, y, w, h int, c color.RGBA) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, s.W), min(y+h, s.H)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	stride := 4 * s.W
	for py := y0; py < y1; py++ {
		row := s.Pix[py*stride+4*x0 : py*stride+4*x1]
		for base := 0; base < len(row); base += 4 {
			row[base+0] = c.R
			row[base+1] = c.G
			row[base+2] = c.B
			row[base+3] = c.A
		}
	}
}

// At returns the pixel at (x, y), or transparent black when out of range.
func (s *Surface) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return color.RGBA{}
	}
	base := 4 * (y*s.W + x)
	return color.RGBA{R: s.Pix[base], G: s.Pix[base+1], B: s.Pix[base+2], A: s.Pix[base+3]}
}

// Image views the surface as an *image.RGBA sharing the same pixels.
func (s *Surface) Image() *image.RGBA {
	return &image.RGBA{Pix: s.Pix, Stride: 4 * s.W, Rect: image.Rect(0, 0, s.W, s.H)}
}
