package experiment

import "github.com/san-kum/qrand/internal/source"

// Named pairs a human-readable experiment label with its configuration.
type Named struct {
	Name   string
	Config Config
}

// Suite returns the canned comparison experiments: a fair coin, an
// error-mitigated noisy coin, two biased coins and the qutrit source. Seeds
// are staggered so the runs stay independent but reproducible.
func Suite(samples int, seed int64) []Named {
	return []Named{
		{
			Name:   "fair quantum coin",
			Config: Config{Source: "coin", Samples: samples, Seed: seed},
		},
		{
			Name:   "error-mitigated noisy coin",
			Config: Config{Source: "mitigated", Samples: samples, Seed: seed + 100, Shots: 5, ErrorRate: 0.05},
		},
		{
			Name:   "biased coin 60/40",
			Config: Config{Source: "biased", Samples: samples, Seed: seed + 200, Angle: source.AngleForProbability(0.4)},
		},
		{
			Name:   "biased coin 90/10",
			Config: Config{Source: "biased", Samples: samples, Seed: seed + 300, Angle: source.AngleForProbability(0.1)},
		},
		{
			Name:   "qutrit generator",
			Config: Config{Source: "qutrit", Samples: samples, Seed: seed + 400},
		},
	}
}
