package elements

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrCellSize is returned when the cell size is below one pixel.
	ErrCellSize = errors.New("elements: cell size must be at least 1")
	// ErrSurfaceSize is returned for non-positive surface dimensions or a
	// surface too small to hold a single cell.
	ErrSurfaceSize = errors.New("elements: invalid surface size")
	// ErrProbability is returned when a threshold lies outside [0, 1].
	ErrProbability = errors.New("elements: probability out of range")
)

// Probabilities holds the rule thresholds. A rule fires when a fresh uniform
// draw is strictly greater than its threshold, so lower values fire more often.
type Probabilities struct {
	Fire    float64
	Water   float64
	Erosion float64
	Plant   float64
	Lava    float64
	// StoneP, when positive, is the chance a non-Air seed cell starts as Stone.
	StoneP float64
}

// Config controls the surface, cell size and rule thresholds.
type Config struct {
	Width    int
	Height   int
	CellSize int

	Seed int64

	Probabilities Probabilities
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    320,
		Height:   180,
		CellSize: 1,
		Seed:     1337,
		Probabilities: Probabilities{
			Fire:    0.001,
			Water:   0.1,
			Erosion: 0.005,
			Plant:   0.92,
			Lava:    0.0005,
		},
	}
}

// Cols returns the number of grid columns the surface holds.
func (c Config) Cols() int {
	if c.CellSize <= 0 {
		return 0
	}
	return c.Width / c.CellSize
}

// Rows returns the number of grid rows the surface holds.
func (c Config) Rows() int {
	if c.CellSize <= 0 {
		return 0
	}
	return c.Height / c.CellSize
}

// Validate reports the first configuration error, if any.
func (c Config) Validate() error {
	if c.CellSize < 1 {
		return fmt.Errorf("%w: got %d", ErrCellSize, c.CellSize)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrSurfaceSize, c.Width, c.Height)
	}
	if c.Cols() == 0 || c.Rows() == 0 {
		return fmt.Errorf("%w: %dx%d surface holds no %dpx cells", ErrSurfaceSize, c.Width, c.Height, c.CellSize)
	}
	p := c.Probabilities
	for _, named := range []struct {
		key string
		val float64
	}{
		{"fire", p.Fire},
		{"water", p.Water},
		{"erosion", p.Erosion},
		{"plant", p.Plant},
		{"lava", p.Lava},
		{"stone_p", p.StoneP},
	} {
		// NaN fails both comparisons, so test for the valid range instead.
		if !(named.val >= 0 && named.val <= 1) {
			return fmt.Errorf("%w: %s=%v", ErrProbability, named.key, named.val)
		}
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparseable values are ignored; range checks are left to Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	floats := map[string]*float64{
		"fire":    &c.Probabilities.Fire,
		"water":   &c.Probabilities.Water,
		"erosion": &c.Probabilities.Erosion,
		"plant":   &c.Probabilities.Plant,
		"lava":    &c.Probabilities.Lava,
		"stone_p": &c.Probabilities.StoneP,
	}
	for key, dst := range floats {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	return c
}
