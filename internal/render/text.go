// Package render formats analysis reports as text and charts.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/qrand/internal/analysis"
	"github.com/san-kum/qrand/internal/qrand"
)

// serialThreshold is the |lag-1 autocorrelation| above which a sequence is
// flagged as serially correlated.
const serialThreshold = 0.1

func symbolLabel(value int, alphabet qrand.Alphabet) string {
	if alphabet == qrand.Binary {
		if value == 0 {
			return "heads (0)"
		}
		return "tails (1)"
	}
	return fmt.Sprintf("value %d", value)
}

// Text renders the report in a fixed field order: total, per-symbol stats,
// bias, runs, entropy, chi-squared verdict, autocorrelation, interpretation.
func Text(r *analysis.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "==== randomness analysis ====\n")
	fmt.Fprintf(&b, "total samples: %d\n", r.Total)

	for _, s := range r.Symbols {
		fmt.Fprintf(&b, "%s: %d (p=%.4f)\n", symbolLabel(s.Value, r.Alphabet), s.Count, s.Probability)
	}
	fmt.Fprintf(&b, "bias from ideal: %.4f\n", r.Bias)

	fmt.Fprintf(&b, "\nruns:\n")
	fmt.Fprintf(&b, "  count: %d\n", r.Runs.Count)
	fmt.Fprintf(&b, "  longest: %d\n", r.Runs.Max)
	fmt.Fprintf(&b, "  mean length: %.2f\n", r.Runs.Mean)

	fmt.Fprintf(&b, "\nrandomness:\n")
	fmt.Fprintf(&b, "  entropy: %.4f bits (ratio %.4f)\n", r.Entropy, r.EntropyRatio)
	fmt.Fprintf(&b, "  chi-squared: %.4f (p=%.4f)\n", r.ChiSquare, r.PValue)
	if r.Random {
		fmt.Fprintf(&b, "  verdict: random at %.0f%% significance\n", r.Alpha*100)
	} else {
		fmt.Fprintf(&b, "  verdict: not random at %.0f%% significance\n", r.Alpha*100)
	}
	if r.HasAutocorr {
		fmt.Fprintf(&b, "  autocorrelation (lag 1): %.4f\n", r.Autocorrelation)
	}

	fmt.Fprintf(&b, "\ninterpretation: %s\n", Interpretation(r))

	return b.String()
}

// Interpretation applies the verdict decision table in priority order:
// chi-squared pass with low autocorrelation wins, chi-squared failure comes
// next, leaving serial correlation as the remaining case.
func Interpretation(r *analysis.Report) string {
	autocorr := 0.0
	if r.HasAutocorr {
		autocorr = r.Autocorrelation
	}

	switch {
	case r.Random && math.Abs(autocorr) < serialThreshold:
		return "results appear statistically random"
	case !r.Random:
		return "results show deviation from randomness"
	default:
		return "results show serial correlation"
	}
}
