package main

import (
	"errors"
	"flag"
	"os"

	"github.com/civiclens/tweetsift/internal/logging"
	"github.com/civiclens/tweetsift/internal/report"
	"github.com/civiclens/tweetsift/pkg/tweetsift/config"
	"github.com/civiclens/tweetsift/pkg/tweetsift/corpus"
	"github.com/civiclens/tweetsift/pkg/tweetsift/feasibility"
	"github.com/civiclens/tweetsift/pkg/tweetsift/internalerr"
	"github.com/civiclens/tweetsift/pkg/tweetsift/stats"
)

func main() {
	var (
		input      = flag.String("input", "", "Path to the tweet CSV (required)")
		limit      = flag.Int("limit", 0, "Load only N rows (0 = all)")
		configPath = flag.String("config", "", "Optional YAML config")
		noColor    = flag.Bool("no-color", false, "Disable colored output")
	)
	flag.Parse()

	log := logging.NewWithTool("eda-report")

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	if *input != "" {
		cfg.Input = *input
	}
	if *limit > 0 {
		cfg.RowLimit = *limit
	}
	if cfg.Input == "" {
		log.Fatal("--input required")
	}

	c, err := corpus.Load(cfg.Input, cfg.RowLimit)
	if err != nil {
		log.Errorf("load corpus: %v", err)
		os.Exit(1)
	}
	log.Infof("loaded %d posts from %s (skipped %d malformed rows, %d bad timestamps)",
		c.Len(), cfg.Input, c.Skipped(), c.BadTimestamps())

	p := report.NewPrinter(os.Stdout, *noColor)

	topo, err := feasibility.Topology(c, feasibility.TopologyOptions{
		SampleSize: cfg.TopologySample,
		Seed:       cfg.Seed,
	})
	switch {
	case errors.Is(err, internalerr.ErrNoEdges):
		log.Error("no edges found in sample; extraction may be failing on this dataset")
	case errors.Is(err, internalerr.ErrEmptyGraph):
		log.Error("sampled graph is empty")
	case err != nil:
		log.Errorf("topology check: %v", err)
	default:
		p.Topology(topo)
	}

	sem, err := feasibility.Semantic(c)
	if err != nil {
		log.Errorf("semantic check: %v", err)
	} else {
		p.Semantic(sem)
	}

	mux, err := feasibility.Multiplex(c, feasibility.MultiplexOptions{
		SampleSize: cfg.MultiplexSample,
		Seed:       cfg.Seed,
	})
	switch {
	case errors.Is(err, internalerr.ErrNoActiveUsers):
		log.Error("no active users found in sample")
	case err != nil:
		log.Errorf("multiplex check: %v", err)
	default:
		p.Multiplex(mux)
	}

	p.Activity(stats.ActivityReport(c))
}
