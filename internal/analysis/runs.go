package analysis

import "github.com/san-kum/qrand/internal/qrand"

// RunLengths scans the sequence once and returns the lengths of its maximal
// constant-value blocks in order. The final run is always closed at sequence
// end, so a single-element sequence yields exactly one run of length one.
// Invariant: the lengths sum to len(seq).
func RunLengths(seq qrand.Sequence) []int {
	if len(seq) == 0 {
		return nil
	}

	runs := make([]int, 0, len(seq))
	current := 1
	for i := 1; i < len(seq); i++ {
		if seq[i] == seq[i-1] {
			current++
		} else {
			runs = append(runs, current)
			current = 1
		}
	}
	return append(runs, current)
}

func runStats(lengths []int) RunStats {
	if len(lengths) == 0 {
		return RunStats{}
	}

	max := 0
	sum := 0
	for _, l := range lengths {
		sum += l
		if l > max {
			max = l
		}
	}

	return RunStats{
		Count: len(lengths),
		Max:   max,
		Mean:  float64(sum) / float64(len(lengths)),
	}
}

// RunHistogram buckets run lengths by value for the renderer.
func RunHistogram(lengths []int) map[int]int {
	hist := make(map[int]int, len(lengths))
	for _, l := range lengths {
		hist[l]++
	}
	return hist
}
