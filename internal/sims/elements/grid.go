package elements

import "elements-ca/internal/core"

// airSeedChance is the share of cells left as Air by Seed.
const airSeedChance = 0.3

// Grid is a fixed-size column-major array of cell states.
type Grid struct {
	layout core.Layout
	cells  []State
}

// NewGrid allocates a cols×rows grid filled with Air.
func NewGrid(cols, rows int) *Grid {
	l := core.NewLayout(cols, rows)
	return &Grid{layout: l, cells: make([]State, l.Len())}
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.layout.Cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.layout.Rows }

// Layout exposes the coordinate mapping shared with the engine and renderer.
func (g *Grid) Layout() core.Layout { return g.layout }

// Cells exposes the backing slice in layout order.
func (g *Grid) Cells() []State { return g.cells }

// At returns the state at (i, j). ok is false when the coordinates fall
// outside the grid.
func (g *Grid) At(i, j int) (s State, ok bool) {
	if !g.layout.Contains(i, j) {
		return Air, false
	}
	return g.cells[g.layout.Index(i, j)], true
}

// Set stores s at (i, j). Out-of-range coordinates and invalid states are
// rejected and leave the grid untouched.
func (g *Grid) Set(i, j int, s State) bool {
	if !g.layout.Contains(i, j) || !s.Valid() {
		return false
	}
	g.cells[g.layout.Index(i, j)] = s
	return true
}

// Fill sets every cell to s. Invalid states are ignored.
func (g *Grid) Fill(s State) {
	if !s.Valid() {
		return
	}
	for i := range g.cells {
		g.cells[i] = s
	}
}

// Seed randomizes every cell. A cell becomes Air with probability 0.3;
// otherwise, when stoneP is positive it becomes Stone with probability stoneP
// and a uniform pick of Fire, Plant or Water if not. With stoneP of zero the
// pick is uniform over all four non-Air states.
func (g *Grid) Seed(src core.Source, stoneP float64) {
	for i := 0; i < g.layout.Cols; i++ {
		for j := 0; j < g.layout.Rows; j++ {
			g.cells[g.layout.Index(i, j)] = seedState(src, stoneP)
		}
	}
}

func seedState(src core.Source, stoneP float64) State {
	if src() <= airSeedChance {
		return Air
	}
	if stoneP > 0 {
		if src() < stoneP {
			return Stone
		}
		return Fire + State(pick(src, 3))
	}
	return Fire + State(pick(src, 4))
}

// pick draws a uniform integer in [0, n).
func pick(src core.Source, n int) int {
	k := int(src() * float64(n))
	if k >= n {
		k = n - 1
	}
	if k < 0 {
		k = 0
	}
	return k
}
