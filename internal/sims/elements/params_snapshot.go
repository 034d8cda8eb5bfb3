package elements

import "elements-ca/internal/core"

func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Probabilities
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Surface",
			Params: []core.Parameter{
				core.IntParam("w", "Width", w.cfg.Width),
				core.IntParam("h", "Height", w.cfg.Height),
				core.IntParam("cell", "Cell size", w.cfg.CellSize),
				core.IntParam("cols", "Columns", w.grid.Cols()),
				core.IntParam("rows", "Rows", w.grid.Rows()),
				core.Int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Thresholds",
			Params: []core.Parameter{
				core.FloatParam("fire", "Fire", p.Fire),
				core.FloatParam("water", "Water", p.Water),
				core.FloatParam("erosion", "Erosion", p.Erosion),
				core.FloatParam("plant", "Plant", p.Plant),
				core.FloatParam("lava", "Lava", p.Lava),
				core.FloatParam("stone_p", "Stone seed", p.StoneP),
			},
		},
		{
			Name: "Census",
			Params: []core.Parameter{
				core.IntParam("tick", "Tick", w.tick),
				core.IntParam("air", "Air", w.census.Count(Air)),
				core.IntParam("fire_cells", "Fire", w.census.Count(Fire)),
				core.IntParam("plant_cells", "Plant", w.census.Count(Plant)),
				core.IntParam("water_cells", "Water", w.census.Count(Water)),
				core.IntParam("stone_cells", "Stone", w.census.Count(Stone)),
			},
		},
	}}
}
