package sparsekem

import (
	"github.com/redeaux/sparsekem/bitvector"
	"github.com/redeaux/sparsekem/repetition"
)

// Encrypt encodes m with the repetition codec, masks it with fresh sparse
// noise combined against the public key, and returns the resulting
// ciphertext. m must have length k; the caller is responsible for that
// invariant, matching the source's untyped BitVector contract.
func (s *System) Encrypt(m *bitvector.BitVector) (Ciphertext, error) {
	if !s.hasKeys {
		return Ciphertext{}, ErrNoKeys
	}
	n, k := s.Params.N, s.Params.K

	p := repetition.Encode(m, n)

	a, err := bitvector.RandomSparse(n, k, s.rand)
	if err != nil {
		return Ciphertext{}, err
	}
	b1, err := bitvector.RandomSparse(n, k, s.rand)
	if err != nil {
		return Ciphertext{}, err
	}
	b2, err := bitvector.RandomSparse(n, k, s.rand)
	if err != nil {
		return Ciphertext{}, err
	}

	ct, err := s.combine(a, b1, b2, p)
	if err != nil {
		return Ciphertext{}, err
	}

	if s.session == nil {
		s.session = newSessionKeys()
	}
	s.session.Scrub("encrypt noise vectors", a, b1, b2)

	return ct, nil
}

// combine computes C1 = (A&R)|B1, C2 = ((A&T)|B2) XOR p against the current
// public key. Encrypt, Encapsulate, and Decapsulate's re-encryption step
// all reduce to this one combiner.
func (s *System) combine(a, b1, b2, p *bitvector.BitVector) (Ciphertext, error) {
	aAndR, err := a.And(s.pk.R)
	if err != nil {
		return Ciphertext{}, err
	}
	c1, err := aAndR.Or(b1)
	if err != nil {
		return Ciphertext{}, err
	}

	aAndT, err := a.And(s.pk.T)
	if err != nil {
		return Ciphertext{}, err
	}
	masked, err := aAndT.Or(b2)
	if err != nil {
		return Ciphertext{}, err
	}
	c2, err := masked.Xor(p)
	if err != nil {
		return Ciphertext{}, err
	}

	return Ciphertext{C1: c1, C2: c2}, nil
}

// Decrypt recovers the k-bit plaintext from a ciphertext using the private
// key. Decryption failure is not detected at this layer: under noise the
// repetition decoder can recover the wrong bit, and Decrypt returns it
// without signaling anything. Callers that need tamper detection should use
// Encapsulate/Decapsulate instead, which verify by re-encryption.
func (s *System) Decrypt(ct Ciphertext) (*bitvector.BitVector, error) {
	if !s.hasKeys {
		return nil, ErrNoKeys
	}
	skAndC1, err := s.sk.F.And(ct.C1)
	if err != nil {
		return nil, err
	}
	d, err := skAndC1.Xor(ct.C2)
	if err != nil {
		return nil, err
	}
	return repetition.Decode(d, s.Params.K), nil
}
