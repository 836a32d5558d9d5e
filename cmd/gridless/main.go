package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/tart-telescope/web-app/pkg/config"
	"github.com/tart-telescope/web-app/pkg/dataset"
	"github.com/tart-telescope/web-app/pkg/fastmath"
	"github.com/tart-telescope/web-app/pkg/gridless"
	"github.com/tart-telescope/web-app/pkg/observation"
	"github.com/tart-telescope/web-app/pkg/sphere"
	"github.com/tart-telescope/web-app/pkg/visualization"
)

func main() {
	// Parse command line arguments
	file := flag.String("file", "data.json", "Input JSON dataset file")
	nside := flag.Int("nside", 0, "HEALPix nside parameter, a power of two (default: from config)")
	output := flag.String("output", "", "Output SVG filename (auto-generated if not specified)")
	configPath := flag.String("config", "gridless.yaml", "Configuration file")
	showSources := flag.Bool("sources", false, "Show known source positions on the output image")
	showStats := flag.Bool("stats", false, "Show statistics overlay")
	showColorbar := flag.Bool("colorbar", false, "Show colorbar")
	realOnly := flag.Bool("real-only", false, "Reduce pixels to the real part instead of the magnitude")
	exact := flag.Bool("exact", false, "Use exact trigonometry instead of the fast approximation")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Flags override the configuration file
	if *nside > 0 {
		cfg.Imaging.Nside = *nside
	}
	if *realOnly {
		cfg.Imaging.UseRealOnly = true
	}
	if *exact {
		cfg.Imaging.FastMath = false
	}
	if *showSources {
		cfg.Output.ShowSources = true
	}
	if *showStats {
		cfg.Output.ShowStats = true
	}
	if *showColorbar {
		cfg.Output.ShowColorbar = true
	}

	if !sphere.ValidNside(cfg.Imaging.Nside) {
		log.Fatalf("Invalid nside %d: must be a positive power of two", cfg.Imaging.Nside)
	}

	startTime := time.Now()

	ds, err := dataset.Load(*file)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	obs, err := observation.FromDataset(ds)
	if err != nil {
		log.Fatalf("Failed to build observation: %v", err)
	}
	if cfg.Output.Verbose {
		fmt.Printf("Observation %s: %d antennas, %d baselines\n",
			obs.Timestamp.Format(time.RFC3339), len(obs.AntX), len(obs.Baselines))
	}

	cache := sphere.NewCache()
	sky, err := cache.GetOrBuild(cfg.Imaging.Nside)
	if err != nil {
		log.Fatalf("Failed to build hemisphere: %v", err)
	}
	if cfg.Output.Verbose {
		fmt.Printf("Hemisphere nside=%d: %d visible pixels\n", sky.Nside, sky.NumPixels())
	}

	opts := gridless.Options{Workers: cfg.Imaging.NumWorkers}
	if cfg.Imaging.FastMath {
		opts.Trig = fastmath.Fast{}
	} else {
		opts.Trig = fastmath.Exact{}
	}

	u, v, w := obs.UVW()
	if err := gridless.Reconstruct(obs.Vis, u, v, w, sky, cfg.Imaging.UseRealOnly, opts); err != nil {
		log.Fatalf("Reconstruction failed: %v", err)
	}

	stats := gridless.Summarize(sky.Pixels)
	if cfg.Output.Verbose {
		fmt.Printf("Brightness: min=%.4g max=%.4g mean=%.4g sdev=%.4g median=%.4g mad=%.4g\n",
			stats.Min, stats.Max, stats.Mean, stats.StdDev, stats.Median, stats.MAD)
	}

	renderOpts := visualization.Options{
		Width:        cfg.Output.Width,
		ShowGrid:     cfg.Output.ShowGrid,
		ShowStats:    cfg.Output.ShowStats,
		ShowColorbar: cfg.Output.ShowColorbar,
	}
	if cfg.Output.ShowSources {
		renderOpts.Sources = ds.Sources()
	}
	svg := visualization.NewRenderer(sky, stats, renderOpts).RenderSVG()

	// Name output files after the observation timestamp so repeated
	// runs never clobber each other
	filename := *output
	if filename == "" {
		filename = fmt.Sprintf("gridless_%s.svg", obs.Timestamp.Format("2006_01_02_15_04_05_MST"))
	}
	if err := os.WriteFile(filename, svg, 0644); err != nil {
		log.Fatalf("Failed to write output file: %v", err)
	}

	fmt.Printf("Generated: %s\n", filename)
	fmt.Printf("Completed in %d ms\n", time.Since(startTime).Milliseconds())
}
