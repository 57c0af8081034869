package qrand

import (
	"errors"
	"math"
	"testing"
)

func TestAlphabetHelpers(t *testing.T) {
	if !Binary.Valid() || !Ternary.Valid() {
		t.Error("binary and ternary should be valid")
	}
	if Alphabet(4).Valid() {
		t.Error("alphabet 4 should be invalid")
	}
	if Binary.IdealProbability() != 0.5 {
		t.Errorf("expected 0.5, got %f", Binary.IdealProbability())
	}
	if math.Abs(Ternary.MaxEntropy()-math.Log2(3)) > 1e-12 {
		t.Errorf("expected log2(3), got %f", Ternary.MaxEntropy())
	}
	if Binary.MaxEntropy() != 1.0 {
		t.Errorf("expected 1 bit, got %f", Binary.MaxEntropy())
	}
}

func TestSequenceCounts(t *testing.T) {
	seq := Sequence{0, 1, 1, 0, 1}
	counts, err := seq.Counts(Binary)
	if err != nil {
		t.Fatalf("counts failed: %v", err)
	}
	if counts[0] != 2 || counts[1] != 3 {
		t.Errorf("expected [2 3], got %v", counts)
	}
}

func TestSequenceCounts_OutOfRange(t *testing.T) {
	seq := Sequence{0, 1, 2}
	_, err := seq.Counts(Binary)
	if !errors.Is(err, ErrOutcomeRange) {
		t.Fatalf("expected range error, got %v", err)
	}

	var seqErr *SequenceError
	if !errors.As(err, &seqErr) {
		t.Fatal("expected SequenceError")
	}
	if seqErr.Index != 2 || seqErr.Value != 2 {
		t.Errorf("expected index 2 value 2, got index %d value %d", seqErr.Index, seqErr.Value)
	}
}

func TestSequenceValidate_Negative(t *testing.T) {
	seq := Sequence{0, -1}
	if err := seq.Validate(Ternary); !errors.Is(err, ErrOutcomeRange) {
		t.Errorf("expected range error, got %v", err)
	}
}

func TestSequenceTail(t *testing.T) {
	seq := Sequence{0, 1, 0, 1, 1}

	tail := seq.Tail(3)
	if len(tail) != 3 || tail[0] != 0 || tail[2] != 1 {
		t.Errorf("unexpected tail: %v", tail)
	}

	if len(seq.Tail(10)) != 5 {
		t.Error("tail larger than sequence should return whole sequence")
	}
}

func TestSequenceClone(t *testing.T) {
	seq := Sequence{0, 1}
	c := seq.Clone()
	c[0] = 1
	if seq[0] != 0 {
		t.Error("clone should not alias the original")
	}
}
