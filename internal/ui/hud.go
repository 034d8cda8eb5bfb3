//go:build ebiten

package ui

import (
	"image/color"

	"elements-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a read-only parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string

	lines  []Line
	shares []core.Share

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width. A
// non-positive width disables the panel and returns nil; a nil HUD is safe to
// Update and Draw.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width, title: title(sim)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update refreshes the cached snapshot from the simulation.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	var snap core.ParameterSnapshot
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	h.lines = Lines(h.title, snap, paused)
	h.shares = nil
	if provider, ok := h.sim.(core.ShareProvider); ok {
		h.shares = provider.Shares()
	}
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, line := range h.lines {
		if y > height {
			break
		}
		c := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if line.Header {
			c = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		text.Draw(h.panel, line.Text, face, panelPadding, y, c)
		y += lineHeight
	}

	y += barGap
	full := h.width - 2*panelPadding
	for _, s := range h.shares {
		if y+barHeight > height {
			break
		}
		h.fillRect(panelPadding, y, full, barHeight, color.RGBA{R: 40, G: 40, B: 48, A: 255})
		h.fillRect(panelPadding, y, BarWidth(s.Fraction, full), barHeight, s.Color)
		text.Draw(h.panel, s.Label, face, panelPadding+4, y+barHeight-3, color.RGBA{R: 240, G: 240, B: 240, A: 255})
		y += barHeight + barGap
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) fillRect(x, y, w, ht int, c color.RGBA) {
	if w <= 0 || ht <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(ht))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}

const (
	panelPadding   = 12
	lineHeight     = 15
	headerBaseline = 6
	barHeight      = 14
	barGap         = 6
)
