package source

import (
	"context"
	"math"
	"math/rand"

	"github.com/san-kum/qrand/internal/qrand"
)

// Coin samples single-qubit measurements. A Hadamard coin is fair; an Ry
// rotation by angle θ gives P(1) = sin²(θ/2), so θ=0 always yields 0, θ=π
// always yields 1 and θ=π/2 is fair.
type Coin struct {
	rng *rand.Rand
	p1  float64
}

// NewCoin returns a fair Hadamard coin.
func NewCoin(seed int64) *Coin {
	return &Coin{
		rng: rand.New(rand.NewSource(seed)),
		p1:  0.5,
	}
}

// NewBiasedCoin returns a coin biased by an Ry rotation of angle radians.
func NewBiasedCoin(angle float64, seed int64) *Coin {
	s := math.Sin(angle / 2)
	return &Coin{
		rng: rand.New(rand.NewSource(seed)),
		p1:  s * s,
	}
}

// AngleForProbability inverts the rotation: the angle whose coin yields
// P(1) = p. p is clamped to [0,1].
func AngleForProbability(p float64) float64 {
	p = math.Max(0, math.Min(1, p))
	return 2 * math.Asin(math.Sqrt(p))
}

// Probability reports P(1) for this coin.
func (c *Coin) Probability() float64 {
	return c.p1
}

func (c *Coin) Alphabet() qrand.Alphabet {
	return qrand.Binary
}

func (c *Coin) Produce(ctx context.Context, n int) (qrand.Sequence, error) {
	seq := make(qrand.Sequence, 0, n)
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return seq, ctx.Err()
		default:
		}
		seq = append(seq, c.toss())
	}
	return seq, nil
}

func (c *Coin) toss() int {
	if c.rng.Float64() < c.p1 {
		return 1
	}
	return 0
}
