// Package estimate provides the bits-per-key estimators used to compare
// compact encodings of n distinct keys: the information-theoretic bound,
// plain bitpacking, and two empirically corrected variants.
package estimate

import "fmt"

// Method identifies one of the bits-per-key estimators.
type Method int

const (
	// Optimal is the information-theoretic lower bound log2(n!)/n.
	Optimal Method = iota
	// Chia is the proof-of-space heuristic log2(n) - ChiaCorrection.
	Chia
	// Permutation is the permutation-compression heuristic log2(n) - PermutationCorrection.
	Permutation
	// Bitpacking is the fixed-width index cost log2(n).
	Bitpacking
)

// String returns the name of the method as it appears in result tables.
func (m Method) String() string {
	switch m {
	case Optimal:
		return "optimal"
	case Chia:
		return "chia"
	case Permutation:
		return "permutation"
	case Bitpacking:
		return "bitpacking"
	default:
		return "unknown"
	}
}

// Methods returns every method in tabulation order.
func Methods() []Method {
	return []Method{Optimal, Chia, Permutation, Bitpacking}
}

// Func maps a key count to an estimated number of bits per key.
type Func func(n int64) (float64, error)

// Func returns the estimator implementing m.
func (m Method) Func() (Func, error) {
	switch m {
	case Optimal:
		return OptimalBits, nil
	case Chia:
		return ChiaBits, nil
	case Permutation:
		return PermutationBits, nil
	case Bitpacking:
		return BitpackingBits, nil
	default:
		return nil, fmt.Errorf("no estimator for method %d", int(m))
	}
}

// Estimate evaluates m for n keys.
func (m Method) Estimate(n int64) (float64, error) {
	fn, err := m.Func()
	if err != nil {
		return 0, err
	}
	return fn(n)
}
