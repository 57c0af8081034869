package source

import (
	"context"
	"fmt"

	"github.com/san-kum/qrand/internal/qrand"
)

// Word is one readout of an n-qubit register.
type Word struct {
	Bits  string
	Value int
}

// Words reads an n-bit register of Hadamard qubits as integers
// in [0, 2^bits). It is a CLI convenience built on the fair coin; the
// analyzer itself only consumes binary or ternary sequences.
type Words struct {
	coin *Coin
	bits int
}

func NewWords(bits int, seed int64) (*Words, error) {
	if bits < 1 || bits > 16 {
		return nil, fmt.Errorf("bits must be in [1,16], got %d", bits)
	}
	return &Words{coin: NewCoin(seed), bits: bits}, nil
}

func (w *Words) Bits() int {
	return w.bits
}

// Generate reads the register n times.
func (w *Words) Generate(ctx context.Context, n int) ([]Word, error) {
	words := make([]Word, 0, n)
	for i := 0; i < n; i++ {
		seq, err := w.coin.Produce(ctx, w.bits)
		if err != nil {
			return words, err
		}
		words = append(words, packWord(seq))
	}
	return words, nil
}

func packWord(bits qrand.Sequence) Word {
	value := 0
	for _, b := range bits {
		value = value<<1 | b
	}
	return Word{
		Bits:  fmt.Sprintf("%0*b", len(bits), value),
		Value: value,
	}
}
