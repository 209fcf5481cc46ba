package sparsekem

import (
	"github.com/redeaux/sparsekem/bitvector"
	"github.com/redeaux/sparsekem/oracle"
	"github.com/redeaux/sparsekem/repetition"
)

// SharedSecret is the KEM's output: a BitVector whose length equals the
// seed length k.
type SharedSecret = *bitvector.BitVector

// Encapsulate samples a fresh random seed K, expands it through the oracle
// into a shared secret and three noise vectors, and returns a ciphertext
// that only the holder of SK can turn back into the same secret.
func (s *System) Encapsulate() (Ciphertext, SharedSecret, error) {
	if !s.hasKeys {
		return Ciphertext{}, nil, ErrNoKeys
	}
	k := s.Params.K

	seed, err := bitvector.RandomDense(k, s.rand)
	if err != nil {
		return Ciphertext{}, nil, err
	}

	out, err := oracle.H(seed, s.Params.N, s.Params.H)
	if err != nil {
		return Ciphertext{}, nil, err
	}

	p := repetition.Encode(seed, s.Params.N)
	ct, err := s.combine(out.H1, out.H2, out.H3, p)
	if err != nil {
		return Ciphertext{}, nil, err
	}

	if s.session == nil {
		s.session = newSessionKeys()
	}
	s.session.Scrub("encapsulate seed and noise", seed, out.H1, out.H2, out.H3)

	return ct, out.H0, nil
}

// Decapsulate recovers the seed implied by a ciphertext, re-derives the
// oracle outputs from it, and re-runs the same combiner used by
// Encapsulate. If the recomputed ciphertext matches the input exactly, it
// returns the shared secret and true; otherwise it returns (nil, false),
// a decapsulation failure. This is a normal, expected result under
// tampering or a repetition-decode error, never an error value.
func (s *System) Decapsulate(ct Ciphertext) (SharedSecret, bool, error) {
	if !s.hasKeys {
		return nil, false, ErrNoKeys
	}

	skAndC1, err := s.sk.F.And(ct.C1)
	if err != nil {
		return nil, false, err
	}
	d, err := skAndC1.Xor(ct.C2)
	if err != nil {
		return nil, false, err
	}
	kPrime := repetition.Decode(d, s.Params.K)

	out, err := oracle.H(kPrime, s.Params.N, s.Params.H)
	if err != nil {
		return nil, false, err
	}

	pPrime := repetition.Encode(kPrime, s.Params.N)
	recomputed, err := s.combine(out.H1, out.H2, out.H3, pPrime)
	if err != nil {
		return nil, false, err
	}

	ok := recomputed.C1.Equals(ct.C1) && recomputed.C2.Equals(ct.C2)

	if s.session == nil {
		s.session = newSessionKeys()
	}
	s.session.Scrub("decapsulate recovered seed and noise", kPrime, out.H1, out.H2, out.H3)

	if !ok {
		return nil, false, nil
	}
	return out.H0, true, nil
}
