//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"elements-ca/internal/app"
	"elements-ca/internal/core"
	_ "elements-ca/internal/sims/elements"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}

	seed := cfg.ResolveSeed()
	simCfg, err := cfg.SimConfig()
	if err != nil {
		log.Fatal(err)
	}
	sim, err := factory(simCfg)
	if err != nil {
		log.Fatalf("configure %s: %v", cfg.Sim, err)
	}
	log.Printf("%s: seed %d, %dx%d surface", sim.Name(), seed, sim.Size().W, sim.Size().H)

	game := app.New(sim, cfg.Scale, cfg.HUDWidth, seed)
	size := sim.Size()

	ebiten.SetWindowTitle("elements-ca - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
