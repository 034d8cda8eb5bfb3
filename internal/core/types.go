package core

import "sort"

// Size describes pixel dimensions of a rendered simulation surface.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a frame-driven automaton must implement.
// Step advances one tick and leaves the rendered frame in Pixels.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Pixels() []byte
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists registered simulations in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
