package analysis

import "github.com/san-kum/qrand/internal/qrand"

// Tally keeps incremental counts and run state for a growing sequence, so
// live views can update per outcome without rescanning the whole history.
type Tally struct {
	alphabet   qrand.Alphabet
	counts     []int
	total      int
	last       int
	currentRun int
	maxRun     int
	closedRuns int
}

func NewTally(alphabet qrand.Alphabet) *Tally {
	return &Tally{
		alphabet: alphabet,
		counts:   make([]int, alphabet.Size()),
		last:     -1,
	}
}

// Observe records one outcome, rejecting values outside the alphabet.
func (t *Tally) Observe(v int) error {
	if v < 0 || v >= t.alphabet.Size() {
		return &qrand.SequenceError{Index: t.total, Value: v, Wrapped: qrand.ErrOutcomeRange}
	}

	if t.total == 0 || v != t.last {
		if t.total > 0 {
			t.closedRuns++
		}
		t.currentRun = 1
	} else {
		t.currentRun++
	}
	if t.currentRun > t.maxRun {
		t.maxRun = t.currentRun
	}

	t.last = v
	t.counts[v]++
	t.total++
	return nil
}

func (t *Tally) Total() int { return t.total }

func (t *Tally) Count(v int) int {
	if v < 0 || v >= len(t.counts) {
		return 0
	}
	return t.counts[v]
}

func (t *Tally) Probability(v int) float64 {
	if t.total == 0 {
		return 0
	}
	return float64(t.Count(v)) / float64(t.total)
}

// Runs reports the run statistics seen so far, counting the open run.
func (t *Tally) Runs() RunStats {
	if t.total == 0 {
		return RunStats{}
	}
	count := t.closedRuns + 1
	return RunStats{
		Count: count,
		Max:   t.maxRun,
		Mean:  float64(t.total) / float64(count),
	}
}

func (t *Tally) CurrentRun() int { return t.currentRun }

func (t *Tally) Reset() {
	t.counts = make([]int, t.alphabet.Size())
	t.total = 0
	t.last = -1
	t.currentRun = 0
	t.maxRun = 0
	t.closedRuns = 0
}
