package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"elements-ca/internal/app"
	"elements-ca/internal/sims/elements"
	"elements-ca/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width = 0
	cfg.Height = 0
	cfg.TPS = 20
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	// Fill the terminal by default: two columns per cell, one row kept for status.
	if cfg.Width <= 0 || cfg.Height <= 0 {
		w, h := screen.Size()
		cfg.Width = max(w/2, 1) * cfg.CellSize
		cfg.Height = max(h-1, 1) * cfg.CellSize
	}

	seed := cfg.ResolveSeed()
	simCfg, err := cfg.SimConfig()
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	world, err := elements.NewWithConfig(elements.FromMap(simCfg))
	if err != nil {
		screen.Fini()
		log.Fatalf("configure elements: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	viewer := term.NewViewer(screen, world, cfg.TPS, seed)
	err = viewer.Run(ctx)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("stopped after %d ticks (seed %d)", world.Tick(), seed)
}
