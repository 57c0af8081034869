// Package experiment wires sources and the analyzer into runnable
// experiments.
package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/qrand/internal/analysis"
	"github.com/san-kum/qrand/internal/qrand"
)

// Config describes one experiment run. Zero values fall back to the
// defaults applied in Normalize.
type Config struct {
	Source    string
	Samples   int
	Seed      int64
	Angle     float64 // Ry rotation for biased coins, radians
	Shots     int     // majority-vote shots for mitigated sources
	ErrorRate float64 // bit-flip rate for noisy sources
	Alpha     float64 // chi-squared significance level
}

// Normalize fills in defaults for unset fields.
func (c *Config) Normalize() {
	if c.Source == "" {
		c.Source = "coin"
	}
	if c.Samples <= 0 {
		c.Samples = 100
	}
	if c.Shots <= 0 {
		c.Shots = 5
	}
	if c.Alpha <= 0 {
		c.Alpha = analysis.DefaultAlpha
	}
}

// Result bundles the generated snapshot with its analysis.
type Result struct {
	Sequence qrand.Sequence
	Report   *analysis.Report
}

type Experiment struct {
	cfg Config
	src qrand.Source
}

func New(cfg Config, src qrand.Source) *Experiment {
	cfg.Normalize()
	return &Experiment{cfg: cfg, src: src}
}

// Run produces the configured number of outcomes and analyzes the snapshot.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	seq, err := e.src.Produce(ctx, e.cfg.Samples)
	if err != nil {
		return nil, fmt.Errorf("produce outcomes: %w", err)
	}

	report, err := analysis.Analyze(seq, e.src.Alphabet(), analysis.WithSignificance(e.cfg.Alpha))
	if err != nil {
		return nil, fmt.Errorf("analyze outcomes: %w", err)
	}

	return &Result{Sequence: seq, Report: report}, nil
}
