package sparsekem

import "github.com/redeaux/sparsekem/bitvector"

// PrivateKey is the secret key SK = F: a BitVector(n) of Hamming weight
// exactly k.
type PrivateKey struct {
	F *bitvector.BitVector
}

// PublicKey is PK = (R, T) where R is a uniformly random BitVector(n) and
// T = (R & F) | G for an independent weight-k BitVector G.
type PublicKey struct {
	R *bitvector.BitVector
	T *bitvector.BitVector
}

// Ciphertext is the pair (C1, C2) produced by Encrypt or Encapsulate.
type Ciphertext struct {
	C1 *bitvector.BitVector
	C2 *bitvector.BitVector
}
