package qrand

import (
	"context"
	"math"
)

// Alphabet is the number of distinct outcome values a source can emit.
type Alphabet int

const (
	// Binary covers coin-style sources with outcomes in {0,1}.
	Binary Alphabet = 2
	// Ternary covers qutrit-style sources with outcomes in {0,1,2}.
	Ternary Alphabet = 3
)

func (a Alphabet) Valid() bool {
	return a == Binary || a == Ternary
}

func (a Alphabet) Size() int {
	return int(a)
}

// IdealProbability is the per-symbol probability of a perfectly uniform source.
func (a Alphabet) IdealProbability() float64 {
	return 1.0 / float64(a)
}

// MaxEntropy is the Shannon entropy of a uniform distribution over the
// alphabet, in bits.
func (a Alphabet) MaxEntropy() float64 {
	return math.Log2(float64(a))
}

// Sequence is an ordered snapshot of measurement outcomes. The analyzer only
// reads it; ownership stays with the caller.
type Sequence []int

func (s Sequence) Clone() Sequence {
	c := make(Sequence, len(s))
	copy(c, s)
	return c
}

// Tail returns the most recent n outcomes, or the whole sequence if shorter.
func (s Sequence) Tail(n int) Sequence {
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// Validate checks every outcome against the alphabet range [0, a).
func (s Sequence) Validate(a Alphabet) error {
	for i, v := range s {
		if v < 0 || v >= a.Size() {
			return &SequenceError{Index: i, Value: v, Wrapped: ErrOutcomeRange}
		}
	}
	return nil
}

// Counts tallies occurrences per symbol, validating range along the way.
func (s Sequence) Counts(a Alphabet) ([]int, error) {
	counts := make([]int, a.Size())
	for i, v := range s {
		if v < 0 || v >= a.Size() {
			return nil, &SequenceError{Index: i, Value: v, Wrapped: ErrOutcomeRange}
		}
		counts[v]++
	}
	return counts, nil
}

// Source produces measurement outcomes. Implementations live in
// internal/source; the analyzer places no constraint on a source beyond
// values staying inside the declared alphabet.
type Source interface {
	Produce(ctx context.Context, n int) (Sequence, error)
	Alphabet() Alphabet
}
