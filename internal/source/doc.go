// Package source implements outcome generators for randomness experiments.
//
// Every generator mimics the measurement statistics of a small quantum
// circuit, sampled classically from a seeded PRNG:
//
//   - [Coin]: Hadamard coin, or Ry-rotated biased coin with P(1)=sin²(θ/2)
//   - [Qutrit]: two-qubit register folded onto {0,1,2}
//   - [Mitigated]: majority vote over repeated shots
//   - [Noisy]: bit-flip measurement error wrapper
//   - [Words]: n-bit register read out as integers
//
// Sources are deterministic for a fixed seed, which keeps experiment runs
// reproducible.
package source
