package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/qrand/internal/analysis"
	"github.com/san-kum/qrand/internal/qrand"
)

func TestTextFieldOrder(t *testing.T) {
	seq := qrand.Sequence{0, 0, 1, 1, 0, 1, 0, 1, 1, 0}
	report, err := analysis.Analyze(seq, qrand.Binary)
	require.NoError(t, err)

	out := Text(report)

	fields := []string{
		"total samples:",
		"heads (0):",
		"tails (1):",
		"bias from ideal:",
		"runs:",
		"entropy:",
		"chi-squared:",
		"verdict:",
		"autocorrelation (lag 1):",
		"interpretation:",
	}

	pos := -1
	for _, f := range fields {
		idx := strings.Index(out, f)
		require.GreaterOrEqual(t, idx, 0, "missing field %q", f)
		assert.Greater(t, idx, pos, "field %q out of order", f)
		pos = idx
	}
}

func TestTextTernaryOmitsAutocorrelation(t *testing.T) {
	seq := qrand.Sequence{0, 1, 2, 1, 0, 2}
	report, err := analysis.Analyze(seq, qrand.Ternary)
	require.NoError(t, err)

	out := Text(report)
	assert.NotContains(t, out, "autocorrelation")
	assert.Contains(t, out, "value 2:")
}

func TestInterpretationDecisionTable(t *testing.T) {
	tests := []struct {
		name    string
		random  bool
		autocorr float64
		want    string
	}{
		{"random and independent", true, 0.02, "statistically random"},
		{"uniformity rejected", false, 0.02, "deviation from randomness"},
		{"uniform but correlated", true, -0.4, "serial correlation"},
		{"uniformity rejected wins over correlation", false, 0.9, "deviation from randomness"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &analysis.Report{
				Alphabet:        qrand.Binary,
				Random:          tt.random,
				Autocorrelation: tt.autocorr,
				HasAutocorr:     true,
			}
			assert.Contains(t, Interpretation(r), tt.want)
		})
	}
}

func TestInterpretationTernary(t *testing.T) {
	// No autocorrelation metric: the chi-squared verdict decides alone.
	r := &analysis.Report{Alphabet: qrand.Ternary, Random: true}
	assert.Contains(t, Interpretation(r), "statistically random")

	r.Random = false
	assert.Contains(t, Interpretation(r), "deviation from randomness")
}
