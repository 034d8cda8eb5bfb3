package elements

import "image/color"

// State is the material held by a single cell.
type State uint8

const (
	Air State = iota
	Fire
	Plant
	Water
	Stone

	numStates
)

// NumStates is the number of valid cell states.
const NumStates = int(numStates)

var stateNames = [NumStates]string{"air", "fire", "plant", "water", "stone"}

var palette = [NumStates]color.RGBA{
	Air:   {R: 0, G: 0, B: 0, A: 255},
	Fire:  {R: 255, G: 100, B: 0, A: 255},
	Plant: {R: 0, G: 200, B: 0, A: 255},
	Water: {R: 0, G: 100, B: 255, A: 255},
	Stone: {R: 150, G: 150, B: 150, A: 255},
}

// Valid reports whether s is one of the enumerated states.
func (s State) Valid() bool { return s < numStates }

func (s State) String() string {
	if !s.Valid() {
		return "invalid"
	}
	return stateNames[s]
}

// Color returns the opaque render color for s. Invalid states render as Air.
func (s State) Color() color.RGBA {
	if !s.Valid() {
		return palette[Air]
	}
	return palette[s]
}

// Palette exposes the render colors indexed by state.
func Palette() []color.RGBA {
	out := make([]color.RGBA, NumStates)
	copy(out, palette[:])
	return out
}

// States lists every valid state in enumeration order.
func States() []State {
	return []State{Air, Fire, Plant, Water, Stone}
}
