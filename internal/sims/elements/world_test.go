package elements

import (
	"errors"
	"image/color"
	"math"
	"slices"
	"testing"

	"elements-ca/internal/core"
	"elements-ca/internal/render"
)

func TestGridSizeFollowsSurface(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Height = 7
	cfg.CellSize = 3

	w, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if w.Grid().Cols() != 3 || w.Grid().Rows() != 2 {
		t.Fatalf("expected 3x2 grid, got %dx%d", w.Grid().Cols(), w.Grid().Rows())
	}
	if got := w.Census().Total(); got != 6 {
		t.Fatalf("census covers %d cells, want 6", got)
	}
	if len(w.Pixels()) != 10*7*4 {
		t.Fatalf("pixel buffer holds %d bytes", len(w.Pixels()))
	}
}

func TestRenderAllWater(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 4
	cfg.Height = 4
	cfg.CellSize = 2

	w, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	w.Grid().Fill(Water)
	w.Advance()

	want := color.RGBA{R: 0, G: 100, B: 255, A: 255}
	s := w.Surface()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := s.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d)=%v, want %v", x, y, got, want)
			}
		}
	}
	if w.Census().Count(Water) != 4 {
		t.Fatalf("census=%v, want 4 water cells", w.Census())
	}
}

func TestRenderBlocksAndLeftoverStrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 5
	cfg.Height = 5
	cfg.CellSize = 2

	w, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	g := w.Grid()
	g.Fill(Air)
	g.Set(1, 0, Fire)
	g.Set(0, 1, Stone)
	w.Render()

	s := w.Surface()
	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, Air.Color()},
		{2, 0, Fire.Color()},
		{3, 1, Fire.Color()},
		{0, 2, Stone.Color()},
		{1, 3, Stone.Color()},
		{3, 3, Air.Color()},
		{4, 0, color.RGBA{}},
		{0, 4, color.RGBA{}},
	}
	for _, c := range checks {
		if got := s.At(c.x, c.y); got != c.want {
			t.Fatalf("pixel (%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestNewWithSurfaceWritesCallerBuffer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 3
	cfg.Height = 2

	pix := make([]byte, 3*2*4)
	w, err := NewWithSurface(cfg, pix, core.Fixed(0))
	if err != nil {
		t.Fatal(err)
	}
	// A fixed zero source seeds everything as Air.
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != 0 || pix[i+1] != 0 || pix[i+2] != 0 || pix[i+3] != 255 {
			t.Fatalf("pixel %d=%v, want opaque black", i/4, pix[i:i+4])
		}
	}
	if &w.Pixels()[0] != &pix[0] {
		t.Fatal("world must render into the caller's buffer")
	}

	if _, err := NewWithSurface(cfg, make([]byte, 7), nil); !errors.Is(err, render.ErrBufferSize) {
		t.Fatalf("expected ErrBufferSize, got %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero cell size", func(c *Config) { c.CellSize = 0 }, ErrCellSize},
		{"zero width", func(c *Config) { c.Width = 0 }, ErrSurfaceSize},
		{"negative height", func(c *Config) { c.Height = -4 }, ErrSurfaceSize},
		{"surface smaller than a cell", func(c *Config) { c.Width, c.Height, c.CellSize = 3, 3, 4 }, ErrSurfaceSize},
		{"negative threshold", func(c *Config) { c.Probabilities.Fire = -0.1 }, ErrProbability},
		{"threshold above one", func(c *Config) { c.Probabilities.Lava = 1.5 }, ErrProbability},
		{"nan threshold", func(c *Config) { c.Probabilities.Plant = math.NaN() }, ErrProbability},
		{"stone chance above one", func(c *Config) { c.Probabilities.StoneP = 2 }, ErrProbability},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if _, err := NewWithConfig(cfg); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":       "64",
		"h":       "48",
		"cell":    "4",
		"seed":    "9",
		"erosion": "0.25",
		"stone_p": "0.3",
		"fire":    "not-a-number",
	})
	if c.Width != 64 || c.Height != 48 || c.CellSize != 4 || c.Seed != 9 {
		t.Fatalf("unexpected dimensions %+v", c)
	}
	if c.Probabilities.Erosion != 0.25 || c.Probabilities.StoneP != 0.3 {
		t.Fatalf("unexpected probabilities %+v", c.Probabilities)
	}
	if c.Probabilities.Fire != DefaultConfig().Probabilities.Fire {
		t.Fatalf("unparseable fire should keep default, got %v", c.Probabilities.Fire)
	}
	if c.Cols() != 16 || c.Rows() != 12 {
		t.Fatalf("expected 16x12 grid, got %dx%d", c.Cols(), c.Rows())
	}
}

func TestAdvanceDeterministicForSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 40
	cfg.Height = 30
	cfg.CellSize = 2
	cfg.Seed = 77

	a, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for k := 0; k < 25; k++ {
		a.Advance()
		b.Advance()
	}
	if !slices.Equal(a.Pixels(), b.Pixels()) {
		t.Fatal("same seed should render identical frames")
	}
	if a.Tick() != 25 {
		t.Fatalf("tick=%d, want 25", a.Tick())
	}
	for i, s := range a.Grid().Cells() {
		if !s.Valid() {
			t.Fatalf("cell %d invalid after ticking: %d", i, s)
		}
	}
}

func TestResetRestoresSeededState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 16
	cfg.Seed = 5

	w, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	initial := append([]State(nil), w.Grid().Cells()...)
	initialPix := append([]byte(nil), w.Pixels()...)

	for k := 0; k < 10; k++ {
		w.Advance()
	}
	w.Reset(0)

	if !slices.Equal(initial, w.Grid().Cells()) {
		t.Fatal("Reset(0) should replay the configured seed")
	}
	if !slices.Equal(initialPix, w.Pixels()) {
		t.Fatal("Reset should re-render the seeded grid")
	}
	if w.Tick() != 0 {
		t.Fatalf("tick=%d after reset", w.Tick())
	}

	w.Reset(12345)
	if slices.Equal(initial, w.Grid().Cells()) {
		t.Fatal("a different seed should produce a different grid")
	}
}

func TestRenderReflectsCompletedTick(t *testing.T) {
	// Fire at (1,1) samples (0,0) with a zero source; nothing else moves.
	w := newRiggedWorld(t, 2, 2, core.Fixed(0))
	w.grid.Set(0, 0, Water)
	w.grid.Set(1, 1, Fire)

	w.Advance()

	if got := w.Surface().At(1, 1); got != Air.Color() {
		t.Fatalf("rendered %v for a fire cell quenched this tick", got)
	}
	if w.Census().Count(Fire) != 0 || w.Census().Count(Water) != 1 {
		t.Fatalf("census=%v", w.Census())
	}
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["elements"]
	if !ok {
		t.Fatal("elements sim not registered")
	}
	sim, err := factory(map[string]string{"w": "8", "h": "6"})
	if err != nil {
		t.Fatal(err)
	}
	if sim.Size() != (core.Size{W: 8, H: 6}) {
		t.Fatalf("size=%v", sim.Size())
	}
	if _, err := factory(map[string]string{"cell": "0"}); !errors.Is(err, ErrCellSize) {
		t.Fatalf("expected ErrCellSize, got %v", err)
	}
}

func TestParametersSnapshot(t *testing.T) {
	w, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	p, ok := w.Parameters().Lookup("plant")
	if !ok || p.Value != "0.92" {
		t.Fatalf("plant parameter=%+v, %v", p, ok)
	}
	if p, ok := w.Parameters().Lookup("cols"); !ok || p.Value != "8" {
		t.Fatalf("cols parameter=%+v, %v", p, ok)
	}
}
