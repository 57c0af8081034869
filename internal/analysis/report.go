package analysis

import "github.com/san-kum/qrand/internal/qrand"

// SymbolStat holds the observed count and probability of one outcome value.
type SymbolStat struct {
	Value       int     `json:"value"`
	Count       int     `json:"count"`
	Probability float64 `json:"probability"`
}

// RunStats summarizes the run-length profile of a sequence.
type RunStats struct {
	Count int     `json:"count"`
	Max   int     `json:"max"`
	Mean  float64 `json:"mean"`
}

// Report is the immutable result of one analysis pass. It is created fresh
// on every Analyze call and never mutated afterwards.
type Report struct {
	Alphabet     qrand.Alphabet `json:"alphabet"`
	Total        int            `json:"total"`
	Symbols      []SymbolStat   `json:"symbols"`
	Bias         float64        `json:"bias"`
	Runs         RunStats       `json:"runs"`
	Entropy      float64        `json:"entropy"`
	EntropyRatio float64        `json:"entropy_ratio"`
	ChiSquare    float64        `json:"chi_square"`
	PValue       float64        `json:"p_value"`
	Random       bool           `json:"random"`
	Alpha        float64        `json:"alpha"`

	// Autocorrelation is the lag-1 Pearson coefficient. It is only defined
	// for binary sequences; HasAutocorr is false in ternary mode.
	Autocorrelation float64 `json:"autocorrelation"`
	HasAutocorr     bool    `json:"has_autocorrelation"`
}

// Summary flattens the headline numbers for run metadata persistence.
func (r *Report) Summary() map[string]float64 {
	s := map[string]float64{
		"bias":          r.Bias,
		"entropy":       r.Entropy,
		"entropy_ratio": r.EntropyRatio,
		"chi_square":    r.ChiSquare,
		"p_value":       r.PValue,
		"run_count":     float64(r.Runs.Count),
		"max_run":       float64(r.Runs.Max),
		"mean_run":      r.Runs.Mean,
	}
	if r.HasAutocorr {
		s["autocorrelation"] = r.Autocorrelation
	}
	return s
}
