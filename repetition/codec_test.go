package repetition

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/redeaux/sparsekem/bitvector"
)

func messageFromBits(bits ...int) *bitvector.BitVector {
	m := bitvector.NewZero(len(bits))
	for i, b := range bits {
		m.Set(i, b)
	}
	return m
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	m := messageFromBits(1, 0, 1, 1, 0, 0, 1, 0)
	c := Encode(m, 800)
	got := Decode(c, 8)
	require.True(t, m.Equals(got))
}

func TestEncodeLengthAndPadding(t *testing.T) {
	m := messageFromBits(1, 1, 1)
	const n = 10
	c := Encode(m, n)
	require.Equal(t, n, c.Len())

	repeat := RepeatFactor(n, 3)
	require.Equal(t, 3, repeat)
	// positions [9, 10) are the padding tail and must stay zero.
	require.Equal(t, 0, c.Get(9))
}

func TestRepeatFactorFloorDivision(t *testing.T) {
	require.Equal(t, 3, RepeatFactor(10, 3))
	require.Equal(t, 10, RepeatFactor(100, 10))
	require.Equal(t, 0, RepeatFactor(3, 10))
}

func TestDecodeMajorityVote(t *testing.T) {
	// repeat=5, threshold = 5/2 = 2 (floor division): 2 ones is already
	// enough to decode to 1.
	c := bitvector.NewZero(5)
	c.Set(0, 1)
	c.Set(1, 1)

	got := Decode(c, 1)
	require.Equal(t, 1, got.Get(0))
}

func TestDecodeMajorityVoteZero(t *testing.T) {
	c := bitvector.NewZero(5)
	c.Set(0, 1)

	got := Decode(c, 1)
	require.Equal(t, 0, got.Get(0))
}

func TestEncodeDecodeSurvivesNoise(t *testing.T) {
	m := messageFromBits(1, 0, 1, 0, 1, 0, 1, 0)
	c := Encode(m, 800)

	// Flip a minority of bits within each repeat-block; majority vote must
	// still recover the original message.
	repeat := RepeatFactor(800, 8)
	for i := 0; i < 8; i++ {
		base := i * repeat
		c.Set(base, 1-c.Get(base))
	}

	got := Decode(c, 8)
	require.True(t, m.Equals(got))
}
