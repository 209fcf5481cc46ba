// Package repetition implements the repetition error-correcting codec used
// to carry a k-bit message across the noisy n-bit cryptosystem channel:
// encode repeats each message bit N=floor(n/k) times and zero-pads to n;
// decode majority-votes each block of N bits back to a single bit.
package repetition

import "github.com/redeaux/sparsekem/bitvector"

// RepeatFactor returns N = floor(n/k), the number of times each message bit
// is repeated by Encode.
func RepeatFactor(n, k int) int {
	return n / k
}

// Encode expands an k-bit message into an n-bit codeword: each message bit
// is repeated N=floor(n/k) times, and the remaining n-N*k positions are
// zero-padded.
func Encode(m *bitvector.BitVector, n int) *bitvector.BitVector {
	k := m.Len()
	repeat := RepeatFactor(n, k)
	out := bitvector.NewZero(n)
	pos := 0
	for i := 0; i < k; i++ {
		bit := m.Get(i)
		for r := 0; r < repeat; r++ {
			out.Set(pos, bit)
			pos++
		}
	}
	// Positions [pos, n) stay zero: the trailing padding from step 3.
	return out
}

// Decode recovers a k-bit message from an n-bit codeword by majority vote
// over each block of N=floor(n/k) bits. Ties are broken toward 1: a block
// decodes to 1 whenever its count of set bits is >= N/2 using integer
// floor division, matching the source bit-for-bit.
func Decode(c *bitvector.BitVector, k int) *bitvector.BitVector {
	n := c.Len()
	repeat := RepeatFactor(n, k)
	out := bitvector.NewZero(k)
	threshold := repeat / 2
	pos := 0
	for i := 0; i < k; i++ {
		ones := 0
		for r := 0; r < repeat; r++ {
			ones += c.Get(pos)
			pos++
		}
		if ones >= threshold {
			out.Set(i, 1)
		}
	}
	return out
}
