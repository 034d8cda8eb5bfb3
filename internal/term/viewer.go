// Package term drives the elements simulation inside a terminal.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"elements-ca/internal/core"
	"elements-ca/internal/sims/elements"
)

// frameInterval is how often the viewer redraws and polls the tick clock.
const frameInterval = 16 * time.Millisecond

// Viewer paints each grid cell as two terminal columns and advances the
// world at a fixed tick rate.
type Viewer struct {
	screen tcell.Screen
	world  *elements.World
	step   *core.FixedStep
	styles [elements.NumStates]tcell.Style

	paused   bool
	tickOnce bool
	seed     int64
}

// NewViewer binds a world to an initialized screen.
func NewViewer(screen tcell.Screen, world *elements.World, tps int, seed int64) *Viewer {
	v := &Viewer{screen: screen, world: world, step: core.NewFixedStep(tps), seed: seed}
	for _, s := range elements.States() {
		c := s.Color()
		v.styles[s] = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	return v
}

// Paused reports whether ticking is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// Run pumps screen events and advances the world until ctx is done or the
// user quits.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	frames := time.NewTicker(frameInterval)
	defer frames.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || v.HandleEvent(ev) {
				return nil
			}
		case <-frames.C:
			if v.step.ShouldStep() && (!v.paused || v.tickOnce) {
				v.world.Advance()
				v.tickOnce = false
			}
			v.Draw()
		}
	}
}

// HandleEvent applies a key or resize event and reports whether the viewer
// should exit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				v.paused = !v.paused
			case 'n':
				v.tickOnce = true
			case 'r':
				v.world.Reset(v.seed)
			case 's':
				v.seed = time.Now().UnixNano()
				v.world.Reset(v.seed)
			}
		}
	}
	return false
}

// Draw paints the visible part of the grid plus a status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	grid := v.world.Grid()
	rows := min(grid.Rows(), height-1)
	cols := min(grid.Cols(), width/2)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			s, ok := grid.At(i, j)
			if !ok {
				continue
			}
			style := v.styles[s]
			v.screen.SetContent(2*i, j, ' ', nil, style)
			v.screen.SetContent(2*i+1, j, ' ', nil, style)
		}
	}
	if height > 0 {
		v.drawStatus(max(rows, 0), width)
	}
	v.screen.Show()
}

func (v *Viewer) drawStatus(y, width int) {
	c := v.world.Census()
	state := "running"
	if v.paused {
		state = "paused"
	}
	line := fmt.Sprintf("tick %d %s  air %d fire %d plant %d water %d stone %d  [space] pause [n] step [r] reset [s] reseed [q] quit",
		v.world.Tick(), state, c.Count(elements.Air), c.Count(elements.Fire), c.Count(elements.Plant), c.Count(elements.Water), c.Count(elements.Stone))
	x := 0
	for _, r := range line {
		if x >= width {
			break
		}
		v.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
}
