//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads a simulation's RGBA frame into an ebiten image and draws it.
type Painter struct {
	w, h int
	img  *ebiten.Image
}

// NewPainter allocates a painter for a w×h pixel frame.
func NewPainter(w, h int) *Painter {
	return &Painter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads pix and draws it onto dst magnified by scale.
func (p *Painter) Blit(dst *ebiten.Image, pix []byte, scale int) {
	if len(pix) != 4*p.w*p.h {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	p.img.WritePixels(pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
