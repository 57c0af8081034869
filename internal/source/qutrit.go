package source

import (
	"context"
	"math/rand"

	"github.com/san-kum/qrand/internal/qrand"
)

// qutritMap folds the four states of a two-qubit register onto three levels:
// 00→0, 01→1, 10→2 and 11 recycled to 0. The recycling makes the source
// deliberately non-uniform (P(0)=1/2, P(1)=P(2)=1/4), which the analyzer is
// expected to detect on large samples.
var qutritMap = [4]int{0, 1, 2, 0}

// Qutrit samples a three-level system built from two Hadamard qubits.
type Qutrit struct {
	rng *rand.Rand
}

func NewQutrit(seed int64) *Qutrit {
	return &Qutrit{rng: rand.New(rand.NewSource(seed))}
}

func (q *Qutrit) Alphabet() qrand.Alphabet {
	return qrand.Ternary
}

func (q *Qutrit) Produce(ctx context.Context, n int) (qrand.Sequence, error) {
	seq := make(qrand.Sequence, 0, n)
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return seq, ctx.Err()
		default:
		}
		seq = append(seq, qutritMap[q.rng.Intn(4)])
	}
	return seq, nil
}
