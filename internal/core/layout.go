package core

// Layout maps 2D cell coordinates onto a flat slice. Cells are stored column
// by column: (i, j) with column i and row j lives at j + i*Rows.
type Layout struct {
	Cols, Rows int
}

// NewLayout returns a layout for a cols×rows grid. Non-positive dimensions
// collapse to an empty layout.
func NewLayout(cols, rows int) Layout {
	if cols <= 0 || rows <= 0 {
		return Layout{}
	}
	return Layout{Cols: cols, Rows: rows}
}

// Len reports the number of addressable cells.
func (l Layout) Len() int { return l.Cols * l.Rows }

// Index returns the flat slice index for column i, row j. Callers must check
// Contains first; Index itself does no bounds checking.
func (l Layout) Index(i, j int) int { return j + i*l.Rows }

// Coords is the inverse of Index.
func (l Layout) Coords(idx int) (int, int) {
	if l.Rows == 0 {
		return 0, 0
	}
	return idx / l.Rows, idx % l.Rows
}

// Contains reports whether (i, j) lies inside the grid.
func (l Layout) Contains(i, j int) bool {
	return i >= 0 && i < l.Cols && j >= 0 && j < l.Rows
}

// Clamp pulls the coordinates into [0, Cols-1]×[0, Rows-1].
func (l Layout) Clamp(i, j int) (int, int) {
	return clampInt(i, 0, l.Cols-1), clampInt(j, 0, l.Rows-1)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
