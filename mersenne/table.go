// Package mersenne holds the fixed table of Mersenne exponents used as
// candidate vector lengths n, and the selection rule that picks one large
// enough for a given security parameter k.
package mersenne

import "github.com/pkg/errors"

// Exponents is the fixed table of Mersenne exponents, listed in descending
// order exactly as specified. Only the exponent is used as a vector length;
// the corresponding Mersenne number 2^p-1 is never computed.
var Exponents = []int{
	82589933, 77232917, 74207281, 57885161, 43112609, 42643801, 37156667,
	32582657, 30402457, 25964951, 24036583, 20996011, 13466917, 6972593,
	3021377, 2976221, 1398269, 1257787, 859433, 756839, 216091, 132049,
	86243, 44497, 23209, 21701,
}

// ErrInvalidParameter is returned when k is non-positive or no exponent in
// the table satisfies the security bound n > 10*k^2.
var ErrInvalidParameter = errors.New("mersenne: invalid parameter")

// IndexSource supplies the random choice among candidate exponents; it is
// satisfied by *entropy.Source.
type IndexSource interface {
	Intn(n int) int
}

// candidates returns every exponent in the table strictly greater than
// 10*k^2, preserving the table's order.
func candidates(k int) []int {
	bound := 10 * k * k
	out := make([]int, 0, len(Exponents))
	for _, n := range Exponents {
		if n > bound {
			out = append(out, n)
		}
	}
	return out
}

// Select picks a Mersenne exponent n satisfying n > 10*k^2, chosen uniformly
// at random among all qualifying table entries via src. This matches the
// source's behaviour of sampling uniformly from the above-bound subset
// rather than deterministically taking the smallest candidate (see
// DESIGN.md for the rationale).
func Select(k int, src IndexSource) (int, error) {
	if k < 1 {
		return 0, errors.Wrapf(ErrInvalidParameter, "k=%d must be >= 1", k)
	}
	cand := candidates(k)
	if len(cand) == 0 {
		return 0, errors.Wrapf(ErrInvalidParameter, "no exponent exceeds bound 10*k^2=%d", 10*k*k)
	}
	return cand[src.Intn(len(cand))], nil
}

// SmallestAbove deterministically returns the smallest exponent satisfying
// n > 10*k^2. It is not used by System by default (see the random-selection
// Open Question in DESIGN.md) but is exposed for callers that want
// reproducible parameter selection, e.g. test fixtures.
func SmallestAbove(k int) (int, error) {
	if k < 1 {
		return 0, errors.Wrapf(ErrInvalidParameter, "k=%d must be >= 1", k)
	}
	cand := candidates(k)
	if len(cand) == 0 {
		return 0, errors.Wrapf(ErrInvalidParameter, "no exponent exceeds bound 10*k^2=%d", 10*k*k)
	}
	smallest := cand[0]
	for _, n := range cand[1:] {
		if n < smallest {
			smallest = n
		}
	}
	return smallest, nil
}
