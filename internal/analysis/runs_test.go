package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/san-kum/qrand/internal/qrand"
)

func TestRunLengths(t *testing.T) {
	tests := []struct {
		name string
		seq  qrand.Sequence
		want []int
	}{
		{"empty", qrand.Sequence{}, nil},
		{"single", qrand.Sequence{0}, []int{1}},
		{"blocks", qrand.Sequence{0, 0, 0, 1, 1, 0, 0, 0, 0, 1}, []int{3, 2, 4, 1}},
		{"alternating", qrand.Sequence{0, 1, 0, 1}, []int{1, 1, 1, 1}},
		{"constant", qrand.Sequence{2, 2, 2}, []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RunLengths(tt.seq)
			assert.Equal(t, tt.want, got)

			sum := 0
			for _, l := range got {
				sum += l
			}
			assert.Equal(t, len(tt.seq), sum, "run lengths must sum to sequence length")
			assert.LessOrEqual(t, len(got), len(tt.seq))
		})
	}
}

func TestRunHistogram(t *testing.T) {
	hist := RunHistogram([]int{3, 2, 4, 1, 1, 2})
	assert.Equal(t, map[int]int{1: 2, 2: 2, 3: 1, 4: 1}, hist)
}

func TestTallyMatchesAnalyze(t *testing.T) {
	seq := qrand.Sequence{0, 0, 1, 0, 1, 1, 1, 0, 0, 1, 2, 2, 0}

	tally := NewTally(qrand.Ternary)
	for _, v := range seq {
		assert.NoError(t, tally.Observe(v))
	}

	report, err := Analyze(seq, qrand.Ternary)
	assert.NoError(t, err)

	assert.Equal(t, report.Total, tally.Total())
	for _, s := range report.Symbols {
		assert.Equal(t, s.Count, tally.Count(s.Value))
		assert.InDelta(t, s.Probability, tally.Probability(s.Value), 1e-12)
	}
	assert.Equal(t, report.Runs, tally.Runs())
}

func TestTallyRejectsOutOfRange(t *testing.T) {
	tally := NewTally(qrand.Binary)
	assert.ErrorIs(t, tally.Observe(2), qrand.ErrOutcomeRange)
	assert.Equal(t, 0, tally.Total())
}

func TestTallyReset(t *testing.T) {
	tally := NewTally(qrand.Binary)
	_ = tally.Observe(1)
	_ = tally.Observe(1)

	tally.Reset()
	assert.Equal(t, 0, tally.Total())
	assert.Equal(t, RunStats{}, tally.Runs())
	assert.Equal(t, 0, tally.CurrentRun())
}
