package source

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/qrand/internal/qrand"
)

// Noisy wraps a binary source with a bit-flip measurement error, simulating
// hardware readout noise.
type Noisy struct {
	base qrand.Source
	rate float64
	rng  *rand.Rand
}

func NewNoisy(base qrand.Source, rate float64, seed int64) (*Noisy, error) {
	if base.Alphabet() != qrand.Binary {
		return nil, fmt.Errorf("noisy source requires a binary base, got alphabet %d", base.Alphabet())
	}
	if rate < 0 || rate > 1 {
		return nil, fmt.Errorf("error rate must be in [0,1], got %f", rate)
	}
	return &Noisy{
		base: base,
		rate: rate,
		rng:  rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *Noisy) Alphabet() qrand.Alphabet {
	return qrand.Binary
}

func (s *Noisy) Produce(ctx context.Context, n int) (qrand.Sequence, error) {
	seq, err := s.base.Produce(ctx, n)
	if err != nil {
		return seq, err
	}
	for i, v := range seq {
		if s.rng.Float64() < s.rate {
			seq[i] = 1 - v
		}
	}
	return seq, nil
}

// Mitigated reduces readout noise by majority vote over repeated shots of
// the underlying coin.
type Mitigated struct {
	base  qrand.Source
	shots int
}

// NewMitigated builds a majority-vote wrapper; shots must be odd so the
// vote cannot tie.
func NewMitigated(base qrand.Source, shots int) (*Mitigated, error) {
	if base.Alphabet() != qrand.Binary {
		return nil, fmt.Errorf("mitigated source requires a binary base, got alphabet %d", base.Alphabet())
	}
	if shots < 1 || shots%2 == 0 {
		return nil, fmt.Errorf("shots must be a positive odd number, got %d", shots)
	}
	return &Mitigated{base: base, shots: shots}, nil
}

func (m *Mitigated) Alphabet() qrand.Alphabet {
	return qrand.Binary
}

func (m *Mitigated) Produce(ctx context.Context, n int) (qrand.Sequence, error) {
	seq := make(qrand.Sequence, 0, n)
	for i := 0; i < n; i++ {
		shots, err := m.base.Produce(ctx, m.shots)
		if err != nil {
			return seq, err
		}
		ones := 0
		for _, v := range shots {
			ones += v
		}
		if ones > m.shots/2 {
			seq = append(seq, 1)
		} else {
			seq = append(seq, 0)
		}
	}
	return seq, nil
}
