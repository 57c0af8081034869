// Package qrand provides core types for quantum randomness experiments.
//
// The package defines the fundamental types shared across the module:
//
//   - [Sequence]: ordered snapshot of measurement outcomes
//   - [Alphabet]: size of the outcome alphabet (binary coin or ternary qutrit)
//   - [Source]: interface for outcome generators
//
// # Example
//
//	src := source.NewCoin(seed)
//	seq, _ := src.Produce(ctx, 1000)
//	report, _ := analysis.Analyze(seq, src.Alphabet())
//
// # Thread Safety
//
// Sequences are plain slices and not safe for concurrent mutation. Sources
// own their random state and must not be shared across goroutines.
package qrand
