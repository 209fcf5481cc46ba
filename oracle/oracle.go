// Package oracle implements the deterministic hash oracle H: it expands a
// short seed bitvector into one dense bitstring and three fixed-weight
// sparse bitvectors, reproducibly across calls and machines. Determinism
// matters because the KEM's encapsulator and decapsulator must derive
// identical noise vectors from the same recovered seed; any nondeterminism
// here breaks decapsulation.
//
// The seed is split into four disjoint slices, each of which keys its own
// chacha20 keystream (via deriveStreamKey); H1..H3 sample sparse positions
// from that keystream exactly as bitvector.RandomSparse does for the
// cryptographic entropy source, only with a seeded PRG standing in for
// crypto/rand. This fixes one concrete construction for the otherwise
// implementation-defined "documented stream cipher" the design notes call
// for, so independent implementations agree bit-for-bit.
package oracle

import (
	"github.com/pkg/errors"

	"github.com/redeaux/sparsekem/bitvector"
)

// ErrSeedTooShort is returned when the seed cannot be split into four
// (possibly uneven) quarters, i.e. has length below 4.
var ErrSeedTooShort = errors.New("oracle: seed shorter than 4 bits")

// Output bundles the oracle's four results.
type Output struct {
	H0 *bitvector.BitVector // length k, dense
	H1 *bitvector.BitVector // length n, weight h
	H2 *bitvector.BitVector // length n, weight h
	H3 *bitvector.BitVector // length n, weight h
}

// H deterministically expands seed (length k) into H0 (length k, dense) and
// H1, H2, H3 (length n, Hamming weight exactly h). Calling H twice with
// identical (seed, n, h) always yields identical outputs.
func H(seed *bitvector.BitVector, n, h int) (Output, error) {
	k := seed.Len()
	if k < 4 {
		return Output{}, errors.Wrapf(ErrSeedTooShort, "seed length %d", k)
	}

	x := k / 4
	s1 := seed.Slice(0, x)
	s2 := seed.Slice(x, 2*x)
	s3 := seed.Slice(2*x, 3*x)
	s4 := seed.Slice(3*x, k)

	h0, err := denseFromSlice(s1, k)
	if err != nil {
		return Output{}, err
	}
	h1, err := sparseFromSlice("H1", s2, n, h)
	if err != nil {
		return Output{}, err
	}
	h2, err := sparseFromSlice("H2", s3, n, h)
	if err != nil {
		return Output{}, err
	}
	h3, err := sparseFromSlice("H3", s4, n, h)
	if err != nil {
		return Output{}, err
	}

	return Output{H0: h0, H1: h1, H2: h2, H3: h3}, nil
}

func denseFromSlice(slice *bitvector.BitVector, length int) (*bitvector.BitVector, error) {
	key, nonce := deriveStreamKey("H0", slice)
	prg, err := newStream(key, nonce)
	if err != nil {
		return nil, err
	}
	out := bitvector.NewZero(length)
	for i := 0; i < length; i++ {
		out.Set(i, prg.Bit())
	}
	return out, nil
}

func sparseFromSlice(label string, slice *bitvector.BitVector, n, weight int) (*bitvector.BitVector, error) {
	key, nonce := deriveStreamKey(label, slice)
	prg, err := newStream(key, nonce)
	if err != nil {
		return nil, err
	}
	return bitvector.RandomSparse(n, weight, prg)
}
