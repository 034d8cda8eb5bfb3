package elements

// pickNeighbor samples one of the up to nine cells around (i, j), including
// (i, j) itself, and returns its flat index. Offsets are clamped at the
// border, so edge cells sample themselves more often but are never skipped.
func (w *World) pickNeighbor(i, j int) int {
	di := pick(w.rand, 3) - 1
	dj := pick(w.rand, 3) - 1
	l := w.grid.layout
	ni, nj := l.Clamp(i+di, j+dj)
	return l.Index(ni, nj)
}

// interact applies the rule block for the cell at (i, j) against one sampled
// neighbor. Both cells are mutated in place, and the neighbor is re-read
// before every check since it may be the current cell itself.
func (w *World) interact(i, j int) {
	cells := w.grid.cells
	cur := w.grid.layout.Index(i, j)
	nb := w.pickNeighbor(i, j)
	p := w.cfg.Probabilities

	switch cells[cur] {
	case Stone:
		// Evaluated in order; a later match overwrites an earlier one.
		if n := cells[nb]; (n == Water || n == Air || n == Fire) && w.rand() > p.Erosion {
			cells[cur] = Air
		}
		if cells[nb] == Water && w.rand() > p.Plant {
			cells[cur] = Plant
		}
		if cells[nb] == Plant {
			cells[cur] = Plant
		}
	case Plant:
		if cells[nb] == Water && w.rand() > p.Plant {
			cells[nb] = Plant
		}
		if cells[nb] == Fire {
			cells[cur] = Fire
		}
	case Air:
		// The else binds to the combined water check: a water neighbor
		// that passes the water draw but fails the fire draw does nothing.
		if cells[nb] == Water && w.rand() > p.Water {
			if w.rand() > p.Fire {
				cells[cur] = Water
			}
		} else if cells[nb] == Fire {
			cells[cur] = Fire
		}
	case Fire:
		if cells[nb] == Water {
			if w.rand() > p.Lava {
				cells[cur] = Stone
			} else {
				cells[cur] = Air
			}
		}
	}
}
