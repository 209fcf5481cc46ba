package oracle

import (
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/redeaux/sparsekem/bitvector"
)

// bitString renders v as its canonical "0"/"1" textual representation, the
// seeding convention the design notes require: each seed slice is turned
// into text before it keys the deterministic PRG, so the same bits always
// produce the same key regardless of platform or BitVector word layout.
func bitString(v *bitvector.BitVector) string {
	var b strings.Builder
	b.Grow(v.Len())
	for i := 0; i < v.Len(); i++ {
		if v.Get(i) == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// deriveStreamKey is a one-round NIST SP 800-56A style concatenation KDF:
// hash(label || slice-bits) with SHA3-512, split into a chacha20 key and
// nonce. label domain-separates the four oracle outputs so that H0..H3
// never reuse the same keystream even if two slices happened to coincide.
func deriveStreamKey(label string, slice *bitvector.BitVector) (key [32]byte, nonce [12]byte) {
	h := sha3.New512()
	h.Write([]byte(label))
	h.Write([]byte(bitString(slice)))
	sum := h.Sum(nil)
	copy(key[:], sum[0:32])
	copy(nonce[:], sum[32:44])
	return key, nonce
}
