package elements

import (
	"fmt"

	"elements-ca/internal/core"
	"elements-ca/internal/render"
)

// World owns the grid, the rule thresholds and the surface it renders into.
// It is not safe for concurrent use; a driver calls Advance once per frame.
type World struct {
	cfg Config

	grid    *Grid
	surface *render.Surface

	rng  *core.RNG
	rand core.Source

	tick   int
	census Census
}

// New returns a world covering a w×h surface using the default thresholds.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a seeded world that renders into its own surface.
func NewWithConfig(cfg Config) (*World, error) {
	return NewWithSurface(cfg, nil, nil)
}

// NewWithSurface returns a seeded world rendering into pix, which must hold
// exactly Width*Height*4 bytes. A nil pix allocates a private surface. A nil
// src draws from a PCG generator seeded with cfg.Seed.
func NewWithSurface(cfg Config, pix []byte, src core.Source) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var surface *render.Surface
	if pix == nil {
		surface = render.NewSurface(cfg.Width, cfg.Height)
	} else {
		var err error
		surface, err = render.WrapSurface(pix, cfg.Width, cfg.Height)
		if err != nil {
			return nil, fmt.Errorf("elements: attach surface: %w", err)
		}
	}
	rng := core.NewRNG(cfg.Seed)
	if src == nil {
		src = rng.Source()
	}
	w := &World{
		cfg:     cfg,
		grid:    NewGrid(cfg.Cols(), cfg.Rows()),
		surface: surface,
		rng:     rng,
		rand:    src,
	}
	w.grid.Seed(w.rand, cfg.Probabilities.StoneP)
	w.Render()
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "elements" }

// Size reports the surface dimensions in pixels.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the cell grid. Callers outside tests should treat it as read-only.
func (w *World) Grid() *Grid { return w.grid }

// Surface exposes the render target.
func (w *World) Surface() *render.Surface { return w.surface }

// Pixels exposes the RGBA frame produced by the last render pass.
func (w *World) Pixels() []byte { return w.surface.Pix }

// Tick returns the number of completed Advance calls since the last reset.
func (w *World) Tick() int { return w.tick }

// Census returns the per-state cell counts as of the last render pass.
func (w *World) Census() Census { return w.census }

// Reset reseeds the grid. A zero seed falls back to the configured seed. When
// the world was built with an injected source, that source keeps driving the
// reseed and the seed value only affects the internal generator.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Reseed(effective)
	w.grid.Seed(w.rand, w.cfg.Probabilities.StoneP)
	w.tick = 0
	w.Render()
}

// Step advances one frame; it satisfies core.Sim.
func (w *World) Step() { w.Advance() }

// Advance runs a full update pass followed by a render pass, so the frame
// always reflects the completed tick.
func (w *World) Advance() {
	w.Update()
	w.Render()
	w.tick++
}

// Update applies the interaction rule to every cell, columns outer and rows
// inner. Writes land in place and are visible to cells visited later in the
// same pass.
func (w *World) Update() {
	cols, rows := w.grid.Cols(), w.grid.Rows()
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			w.interact(i, j)
		}
	}
}

// Render paints every cell's block into the surface and refreshes the census.
func (w *World) Render() {
	size := w.cfg.CellSize
	var census Census
	l := w.grid.layout
	for i := 0; i < l.Cols; i++ {
		for j := 0; j < l.Rows; j++ {
			s := w.grid.cells[l.Index(i, j)]
			census[s]++
			w.surface.FillRect(i*size, j*size, size, size, s.Color())
		}
	}
	w.census = census
}

func init() {
	core.Register("elements", func(cfg map[string]string) (core.Sim, error) {
		w, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}
