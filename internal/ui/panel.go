package ui

import (
	"fmt"
	"strings"

	"elements-ca/internal/core"
)

// Line is one row of panel text. Headers are drawn dimmer and are not indented.
type Line struct {
	Text   string
	Header bool
}

// Lines flattens a parameter snapshot into panel rows, one header per group
// followed by "label  value" rows padded to a common width.
func Lines(title string, snap core.ParameterSnapshot, paused bool) []Line {
	status := "running"
	if paused {
		status = "paused"
	}
	lines := []Line{{Text: fmt.Sprintf("%s (%s)", title, status), Header: true}}

	labelWidth := 0
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			labelWidth = max(labelWidth, len(p.Label))
		}
	}
	for _, g := range snap.Groups {
		lines = append(lines, Line{Text: g.Name, Header: true})
		for _, p := range g.Params {
			pad := strings.Repeat(" ", labelWidth-len(p.Label))
			lines = append(lines, Line{Text: fmt.Sprintf("  %s%s  %s", p.Label, pad, p.Value)})
		}
	}
	return lines
}

// BarWidth scales a fraction in [0, 1] to a bar of at most full pixels.
// Non-zero fractions always get at least one pixel.
func BarWidth(fraction float64, full int) int {
	if full <= 0 || !(fraction > 0) {
		return 0
	}
	if fraction >= 1 {
		return full
	}
	return max(int(fraction*float64(full)+0.5), 1)
}

func title(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}
