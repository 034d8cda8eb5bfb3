package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Width    int
	Height   int
	CellSize int
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int

	// Overrides holds extra key=value pairs handed to the sim factory.
	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults. A zero seed
// means "pick one from the clock".
func NewConfig() *Config {
	return &Config{Sim: "elements", Width: 320, Height: 180, CellSize: 1, Scale: 3, TPS: 60, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "width", c.Width, "surface width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "surface height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "pixels per cell side")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window magnification")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 picks one from the clock)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel (0 hides it)")
	fs.Var(&c.Overrides, "set", "sim parameter override in key=value form (repeatable)")
}

// ResolveSeed replaces a zero seed with one derived from the clock and
// returns the seed in use.
func (c *Config) ResolveSeed() int64 {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c.Seed
}

// SimConfig builds the key/value map handed to a sim factory. Explicit
// overrides win over the dedicated flags.
func (c *Config) SimConfig() (map[string]string, error) {
	m := map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"cell": strconv.Itoa(c.CellSize),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
	for _, kv := range c.Overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("app: override %q is not key=value", kv)
		}
		m[key] = value
	}
	return m, nil
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one flag occurrence.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
