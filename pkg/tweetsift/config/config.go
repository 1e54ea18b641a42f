// Package config loads run configuration from YAML. Zero values fall
// back to the documented defaults so a partial file stays valid.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/civiclens/tweetsift/pkg/tweetsift/internalerr"
)

// Config holds every tunable of the analyzers and the filtering
// pipeline. Thresholds are advisory heuristics surfaced in reports.
type Config struct {
	Input     string `yaml:"input"`
	RowLimit  int    `yaml:"row_limit"`
	OutputDir string `yaml:"output_dir"`
	LedgerDB  string `yaml:"ledger_db"`

	TopologySample  int   `yaml:"topology_sample"`
	MultiplexSample int   `yaml:"multiplex_sample"`
	Seed            int64 `yaml:"seed"`

	MinWords    int     `yaml:"min_words"`
	BotQuantile float64 `yaml:"bot_quantile"`

	// Identifier selects the language-ID backend: "lingua" (embedded,
	// default) or "remote" (fastText sidecar at RemoteURL).
	Identifier string `yaml:"identifier"`
	RemoteURL  string `yaml:"remote_url"`

	HeavyBatchSize int `yaml:"heavy_batch_size"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		OutputDir:       "data/processed",
		TopologySample:  10000,
		MultiplexSample: 20000,
		Seed:            42,
		MinWords:        4,
		BotQuantile:     0.995,
		Identifier:      "lingua",
		HeavyBatchSize:  2000,
	}
}

// Load overlays a YAML file onto the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the pipeline cannot run with.
func (c Config) Validate() error {
	if c.BotQuantile <= 0 || c.BotQuantile >= 1 {
		return fmt.Errorf("%w: bot_quantile must be in (0,1), got %v", internalerr.ErrInvalidConfig, c.BotQuantile)
	}
	if c.MinWords < 0 {
		return fmt.Errorf("%w: min_words must be >= 0, got %d", internalerr.ErrInvalidConfig, c.MinWords)
	}
	switch c.Identifier {
	case "lingua":
	case "remote":
		if c.RemoteURL == "" {
			return fmt.Errorf("%w: remote identifier needs remote_url", internalerr.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown identifier %q", internalerr.ErrInvalidConfig, c.Identifier)
	}
	return nil
}
