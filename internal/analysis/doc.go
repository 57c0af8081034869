// Package analysis implements the randomness statistics engine.
//
// The package turns a finite outcome sequence into an [Report]:
//
//   - [Analyze]: counts, bias, run lengths, Shannon entropy, Pearson
//     chi-squared goodness of fit, lag-1 autocorrelation
//   - [RunLengths]: maximal constant-value block lengths
//   - [Tally]: incremental counters for live views
//
// # Randomness Verdict
//
// The chi-squared p-value is tested against a significance level
// (default 0.05):
//
//	report, _ := analysis.Analyze(seq, qrand.Binary)
//	if report.Random {
//	    // Uniformity hypothesis not rejected
//	}
package analysis
