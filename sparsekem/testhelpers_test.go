package sparsekem

import "github.com/redeaux/sparsekem/internal/entropy"

// newFixedSystem builds a System with a pinned (k, n) pair instead of
// letting NewSystem draw n from the Mersenne table. NewSystem picks n
// uniformly among every qualifying entry, so even a small k can land on an
// entry of tens of millions of bits, which is correct but too slow for a
// unit test; these
// fixtures keep the vector arithmetic itself under test without waiting on
// an 80-million-bit BitVector.
func newFixedSystem(k, n int) *System {
	s := &System{
		rand: entropy.New(),
	}
	s.Params = Params{K: k, N: n, H: k}
	return s
}
