package source

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/qrand/internal/qrand"
)

func TestCoinDeterministic(t *testing.T) {
	a := NewCoin(42)
	b := NewCoin(42)

	seqA, err := a.Produce(context.Background(), 100)
	if err != nil {
		t.Fatalf("produce failed: %v", err)
	}
	seqB, _ := b.Produce(context.Background(), 100)

	for i := range seqA {
		if seqA[i] != seqB[i] {
			t.Fatal("same seed should produce identical sequences")
		}
	}
}

func TestCoinFairness(t *testing.T) {
	c := NewCoin(1)
	seq, err := c.Produce(context.Background(), 20000)
	if err != nil {
		t.Fatalf("produce failed: %v", err)
	}

	ones := 0
	for _, v := range seq {
		if v != 0 && v != 1 {
			t.Fatalf("outcome out of range: %d", v)
		}
		ones += v
	}

	p1 := float64(ones) / float64(len(seq))
	if math.Abs(p1-0.5) > 0.02 {
		t.Errorf("fair coin p1 = %f, expected ~0.5", p1)
	}
}

func TestBiasedCoin(t *testing.T) {
	// P(1) = sin²(θ/2) = 0.1
	angle := AngleForProbability(0.1)
	c := NewBiasedCoin(angle, 7)

	if math.Abs(c.Probability()-0.1) > 1e-9 {
		t.Fatalf("expected p1 0.1, got %f", c.Probability())
	}

	seq, _ := c.Produce(context.Background(), 20000)
	ones := 0
	for _, v := range seq {
		ones += v
	}
	p1 := float64(ones) / float64(len(seq))
	if math.Abs(p1-0.1) > 0.02 {
		t.Errorf("biased coin p1 = %f, expected ~0.1", p1)
	}
}

func TestAngleForProbabilityEndpoints(t *testing.T) {
	if AngleForProbability(0) != 0 {
		t.Error("p=0 should map to angle 0")
	}
	if math.Abs(AngleForProbability(1)-math.Pi) > 1e-9 {
		t.Error("p=1 should map to angle pi")
	}
	if math.Abs(AngleForProbability(0.5)-math.Pi/2) > 1e-9 {
		t.Error("p=0.5 should map to angle pi/2")
	}
	// Clamped outside [0,1].
	if AngleForProbability(-2) != 0 {
		t.Error("negative p should clamp to 0")
	}
}

func TestCoinContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewCoin(3)
	_, err := c.Produce(ctx, 10)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestQutritDistribution(t *testing.T) {
	q := NewQutrit(11)
	seq, err := q.Produce(context.Background(), 40000)
	if err != nil {
		t.Fatalf("produce failed: %v", err)
	}

	counts := [3]int{}
	for _, v := range seq {
		if v < 0 || v > 2 {
			t.Fatalf("outcome out of range: %d", v)
		}
		counts[v]++
	}

	// The 11→0 recycling gives P(0)=1/2, P(1)=P(2)=1/4.
	p0 := float64(counts[0]) / float64(len(seq))
	p1 := float64(counts[1]) / float64(len(seq))
	p2 := float64(counts[2]) / float64(len(seq))

	if math.Abs(p0-0.5) > 0.02 {
		t.Errorf("expected p0 ~0.5, got %f", p0)
	}
	if math.Abs(p1-0.25) > 0.02 || math.Abs(p2-0.25) > 0.02 {
		t.Errorf("expected p1, p2 ~0.25, got %f, %f", p1, p2)
	}
}

func TestNoisyFlipsBits(t *testing.T) {
	base := NewBiasedCoin(0, 5) // always 0
	noisy, err := NewNoisy(base, 0.3, 9)
	if err != nil {
		t.Fatalf("new noisy: %v", err)
	}

	seq, _ := noisy.Produce(context.Background(), 10000)
	ones := 0
	for _, v := range seq {
		ones += v
	}
	p1 := float64(ones) / float64(len(seq))
	if math.Abs(p1-0.3) > 0.02 {
		t.Errorf("expected flip rate ~0.3, got %f", p1)
	}
}

func TestNoisyValidation(t *testing.T) {
	if _, err := NewNoisy(NewQutrit(1), 0.1, 2); err == nil {
		t.Error("expected error for ternary base")
	}
	if _, err := NewNoisy(NewCoin(1), 1.5, 2); err == nil {
		t.Error("expected error for rate > 1")
	}
}

func TestMitigatedSuppressesNoise(t *testing.T) {
	// A constant-0 coin behind 30% readout noise: majority vote over 5
	// shots should push the error rate well below the raw rate.
	base := NewBiasedCoin(0, 5)
	noisy, err := NewNoisy(base, 0.3, 9)
	if err != nil {
		t.Fatalf("new noisy: %v", err)
	}
	mit, err := NewMitigated(noisy, 5)
	if err != nil {
		t.Fatalf("new mitigated: %v", err)
	}

	seq, _ := mit.Produce(context.Background(), 5000)
	ones := 0
	for _, v := range seq {
		ones += v
	}
	p1 := float64(ones) / float64(len(seq))

	// Theoretical majority-vote error for p=0.3, 5 shots is ~0.163.
	if p1 > 0.25 {
		t.Errorf("mitigation should reduce error rate below raw 0.3, got %f", p1)
	}
}

func TestMitigatedValidation(t *testing.T) {
	if _, err := NewMitigated(NewCoin(1), 4); err == nil {
		t.Error("expected error for even shots")
	}
	if _, err := NewMitigated(NewCoin(1), 0); err == nil {
		t.Error("expected error for zero shots")
	}
	if _, err := NewMitigated(NewQutrit(1), 5); err == nil {
		t.Error("expected error for ternary base")
	}
}

func TestWords(t *testing.T) {
	w, err := NewWords(8, 13)
	if err != nil {
		t.Fatalf("new words: %v", err)
	}

	words, err := w.Generate(context.Background(), 50)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(words) != 50 {
		t.Fatalf("expected 50 words, got %d", len(words))
	}

	for _, word := range words {
		if word.Value < 0 || word.Value > 255 {
			t.Errorf("value %d outside 8-bit range", word.Value)
		}
		if len(word.Bits) != 8 {
			t.Errorf("expected 8-char bitstring, got %q", word.Bits)
		}
	}
}

func TestWordsValidation(t *testing.T) {
	if _, err := NewWords(0, 1); err == nil {
		t.Error("expected error for 0 bits")
	}
	if _, err := NewWords(17, 1); err == nil {
		t.Error("expected error for >16 bits")
	}
}

func TestPackWord(t *testing.T) {
	w := packWord(qrand.Sequence{1, 0, 1})
	if w.Value != 5 {
		t.Errorf("expected 5, got %d", w.Value)
	}
	if w.Bits != "101" {
		t.Errorf("expected 101, got %s", w.Bits)
	}
}
