package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"elements-ca/internal/app"
	"elements-ca/internal/record"
	"elements-ca/internal/sims/elements"
)

type runResult struct {
	seed    int64
	history []elements.Census
}

func (r runResult) final() elements.Census { return r.history[len(r.history)-1] }

func main() {
	cfg := app.NewConfig()
	cfg.Seed = 1
	cfg.Bind(flag.CommandLine)
	runs := flag.Int("runs", 8, "number of consecutive seeds to simulate, starting at -seed")
	ticks := flag.Int("ticks", 600, "ticks to simulate per run")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	chartPath := flag.String("chart", "", "write a census chart PNG for the first run")
	videoPath := flag.String("video", "", "write an MJPEG AVI of the first run")
	flag.Parse()

	if *runs <= 0 || *ticks < 0 {
		log.Fatalf("need -runs > 0 and -ticks >= 0")
	}
	base, err := cfg.SimConfig()
	if err != nil {
		log.Fatal(err)
	}
	simCfg := elements.FromMap(base)
	if err := simCfg.Validate(); err != nil {
		log.Fatalf("configure elements: %v", err)
	}

	log.Printf("running %d seeds from %d, %d ticks each, %d workers, %dx%d cells",
		*runs, cfg.Seed, *ticks, *workers, simCfg.Cols(), simCfg.Rows())

	results := make([]runResult, *runs)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*workers, 1))
	start := time.Now()
	for n := 0; n < *runs; n++ {
		g.Go(func() error {
			c := simCfg
			c.Seed = cfg.Seed + int64(n)
			var video string
			if n == 0 {
				video = *videoPath
			}
			history, err := runOne(ctx, c, *ticks, video, cfg.TPS)
			if err != nil {
				return fmt.Errorf("seed %d: %w", c.Seed, err)
			}
			results[n] = runResult{seed: c.Seed, history: history}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	sort.Slice(results, func(i, j int) bool { return results[i].seed < results[j].seed })
	fmt.Printf("%8s %8s %8s %8s %8s %8s\n", "seed", "air", "fire", "plant", "water", "stone")
	finals := make([]elements.Census, 0, len(results))
	for _, r := range results {
		f := r.final()
		finals = append(finals, f)
		fmt.Printf("%8d %8d %8d %8d %8d %8d\n", r.seed,
			f.Count(elements.Air), f.Count(elements.Fire), f.Count(elements.Plant), f.Count(elements.Water), f.Count(elements.Stone))
	}

	fmt.Printf("\nFinal share across %d runs (elapsed %s):\n", len(results), elapsed.Round(time.Millisecond))
	for _, s := range elements.Summarize(finals) {
		fmt.Printf("%-6s mean %.4f sd %.4f min %.4f max %.4f\n", s.State, s.Mean, s.StdDev, s.Min, s.Max)
	}

	if *chartPath != "" {
		if err := writeChart(*chartPath, results[0].history); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote census chart for seed %d to %s", results[0].seed, *chartPath)
	}
}

func runOne(ctx context.Context, cfg elements.Config, ticks int, videoPath string, fps int) ([]elements.Census, error) {
	world, err := elements.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}

	var rec *record.VideoRecorder
	if videoPath != "" {
		rec, err = record.NewVideoRecorder(videoPath, cfg.Width, cfg.Height, fps)
		if err != nil {
			return nil, err
		}
		if err := rec.AddFrame(world.Surface()); err != nil {
			rec.Close()
			return nil, err
		}
	}

	history, err := elements.RunHistory(world, ticks, func(w *elements.World) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if rec != nil {
			return rec.AddFrame(w.Surface())
		}
		return nil
	})
	if rec != nil {
		if cerr := rec.Close(); err == nil {
			err = cerr
		}
		if err == nil {
			log.Printf("wrote %d frames to %s", rec.Frames(), videoPath)
		}
	}
	return history, err
}

func writeChart(path string, history []elements.Census) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := record.WriteCensusChart(f, history, 900, 320); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
