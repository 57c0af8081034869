package analysis

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/qrand/internal/qrand"
)

// DefaultAlpha is the significance level for the chi-squared verdict.
const DefaultAlpha = 0.05

type options struct {
	alpha float64
}

type Option func(*options)

// WithSignificance overrides the 0.05 significance level used for the
// randomness verdict. Non-positive values keep the default.
func WithSignificance(alpha float64) Option {
	return func(o *options) {
		if alpha > 0 {
			o.alpha = alpha
		}
	}
}

// Analyze computes the full statistics report for one outcome snapshot. It is
// a pure function: identical input yields an identical report.
func Analyze(seq qrand.Sequence, alphabet qrand.Alphabet, opts ...Option) (*Report, error) {
	if !alphabet.Valid() {
		return nil, qrand.ErrBadAlphabet
	}
	if len(seq) == 0 {
		return nil, qrand.ErrEmptySequence
	}

	o := options{alpha: DefaultAlpha}
	for _, opt := range opts {
		opt(&o)
	}

	counts, err := seq.Counts(alphabet)
	if err != nil {
		return nil, err
	}

	total := len(seq)
	k := alphabet.Size()

	symbols := make([]SymbolStat, k)
	for v := 0; v < k; v++ {
		symbols[v] = SymbolStat{
			Value:       v,
			Count:       counts[v],
			Probability: float64(counts[v]) / float64(total),
		}
	}

	report := &Report{
		Alphabet: alphabet,
		Total:    total,
		Symbols:  symbols,
		Bias:     bias(symbols, alphabet),
		Runs:     runStats(RunLengths(seq)),
		Alpha:    o.alpha,
	}

	report.Entropy = shannonEntropy(symbols)
	report.EntropyRatio = report.Entropy / alphabet.MaxEntropy()

	report.ChiSquare, report.PValue = chiSquared(counts, total)
	report.Random = report.PValue > o.alpha

	if alphabet == qrand.Binary {
		report.Autocorrelation = lagOneCorrelation(seq)
		report.HasAutocorr = true
	}

	return report, nil
}

// bias measures deviation from the uniform ideal: |p1 - 0.5| for a coin,
// mean |p_i - 1/3| for a qutrit.
func bias(symbols []SymbolStat, alphabet qrand.Alphabet) float64 {
	if alphabet == qrand.Binary {
		return math.Abs(symbols[1].Probability - 0.5)
	}
	ideal := alphabet.IdealProbability()
	sum := 0.0
	for _, s := range symbols {
		sum += math.Abs(s.Probability - ideal)
	}
	return sum / float64(len(symbols))
}

// shannonEntropy is -sum(p*log2(p)) in bits. Zero-probability symbols
// contribute nothing rather than NaN.
func shannonEntropy(symbols []SymbolStat) float64 {
	h := 0.0
	for _, s := range symbols {
		if s.Probability > 0 {
			h -= s.Probability * math.Log2(s.Probability)
		}
	}
	return h
}

// chiSquared runs the Pearson goodness-of-fit test against a uniform null
// hypothesis with len(counts)-1 degrees of freedom.
func chiSquared(counts []int, total int) (statistic, pValue float64) {
	expected := float64(total) / float64(len(counts))
	for _, c := range counts {
		diff := float64(c) - expected
		statistic += diff * diff / expected
	}

	dist := distuv.ChiSquared{K: float64(len(counts) - 1)}
	pValue = 1 - dist.CDF(statistic)
	return statistic, pValue
}

// lagOneCorrelation is the Pearson coefficient between the sequence and
// itself shifted by one position. Sequences shorter than two elements, and
// constant sequences (zero variance), report 0.
func lagOneCorrelation(seq qrand.Sequence) float64 {
	if len(seq) < 2 {
		return 0
	}

	n := len(seq) - 1
	x := make(stats.Float64Data, n)
	y := make(stats.Float64Data, n)
	for i := 0; i < n; i++ {
		x[i] = float64(seq[i])
		y[i] = float64(seq[i+1])
	}

	r, err := stats.Pearson(x, y)
	if err != nil || math.IsNaN(r) {
		return 0
	}
	return r
}
