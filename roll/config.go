package roll

import (
	"fmt"

	"github.com/sartorproj/goroll/panel"
	"github.com/sartorproj/goroll/parallel"
	"github.com/sartorproj/goroll/window"
)

// Config holds configuration shared by every rolling statistic.
type Config struct {
	Width       int           // Window width (required, 1 <= Width <= rows)
	Weights     []float64     // Per-offset weights, oldest to newest (default: equal weights)
	MinObs      int           // Minimum valid observations per window (default: 1)
	Center      bool          // Center moments about the weighted mean (default: true)
	Scale       bool          // Standardize: divide by the window standard deviation (default: true)
	Intercept   bool          // Include an intercept term in regressions (default: true)
	CompleteObs bool          // Casewise missing-data mode: judge rows across the statistic's full column set
	NARestore   bool          // Re-blank outputs whose source cell was missing
	Workers     int           // Worker count (default: 0 = hardware concurrency)
	Partition   parallel.Axis // Partition axis for parallel execution
}

// DefaultConfig returns the default configuration for the given window width.
func DefaultConfig(width int) *Config {
	return &Config{
		Width:     width,
		MinObs:    1,
		Center:    true,
		Scale:     true,
		Intercept: true,
	}
}

// call is a validated, fully-resolved invocation: indexer, weights, and
// missing-data policy derived from one panel and one Config.
type call struct {
	cfg     *Config
	ix      *window.Indexer
	weights []float64
	pol     *window.Policy
}

// newCall validates cfg against the panel and resolves defaults.
func newCall(p *panel.Panel, cfg *Config) (*call, error) {
	ix, err := window.NewIndexer(p.Rows, cfg.Width)
	if err != nil {
		return nil, err
	}
	weights := cfg.Weights
	if weights == nil {
		weights = window.EqualWeights(cfg.Width)
	} else if len(weights) != cfg.Width {
		return nil, fmt.Errorf("%w: width %d, weights %d", window.ErrWeights, cfg.Width, len(weights))
	}
	if cfg.MinObs < 1 || cfg.MinObs > cfg.Width {
		return nil, fmt.Errorf("%w: got %d with width %d", ErrMinObs, cfg.MinObs, cfg.Width)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrWorkers, cfg.Workers)
	}
	return &call{
		cfg:     cfg,
		ix:      ix,
		weights: weights,
		pol:     window.NewPolicy(p, cfg.CompleteObs, cfg.NARestore, cfg.MinObs),
	}, nil
}
