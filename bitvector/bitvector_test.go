package bitvector

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/redeaux/sparsekem/internal/entropy"
)

var testSrc = entropy.New()

func TestSetGetRoundTrip(t *testing.T) {
	v := NewZero(100)
	v.Set(0, 1)
	v.Set(99, 1)
	v.Set(50, 1)

	require.Equal(t, 1, v.Get(0))
	require.Equal(t, 1, v.Get(50))
	require.Equal(t, 1, v.Get(99))
	require.Equal(t, 0, v.Get(1))
	require.Equal(t, 3, v.CountOnes())
}

func TestAndOrXor(t *testing.T) {
	a := NewZero(8)
	b := NewZero(8)
	for i := 0; i < 8; i++ {
		a.Set(i, i%2)
		b.Set(i, (i+1)%2)
	}

	and, err := a.And(b)
	require.NoError(t, err)
	require.Equal(t, 0, and.CountOnes())

	or, err := a.Or(b)
	require.NoError(t, err)
	require.Equal(t, 8, or.CountOnes())

	xor, err := a.Xor(b)
	require.NoError(t, err)
	require.Equal(t, 8, xor.CountOnes())
}

func TestLengthMismatch(t *testing.T) {
	a := NewZero(8)
	b := NewZero(16)

	_, err := a.And(b)
	require.ErrorIs(t, err, ErrLengthMismatch)
	_, err = a.Or(b)
	require.ErrorIs(t, err, ErrLengthMismatch)
	_, err = a.Xor(b)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestEquals(t *testing.T) {
	a := NewZero(70)
	b := NewZero(70)
	require.True(t, a.Equals(b))

	a.Set(69, 1)
	require.False(t, a.Equals(b))

	c := NewZero(71)
	require.False(t, a.Equals(c))
}

func TestSliceAndConcat(t *testing.T) {
	v := NewZero(16)
	for i := 0; i < 16; i++ {
		v.Set(i, i%3)
	}

	lower := v.Slice(0, 8)
	upper := v.Slice(8, 16)
	require.Equal(t, 8, lower.Len())
	require.Equal(t, 8, upper.Len())

	joined := lower.Concat(upper)
	require.True(t, v.Equals(joined))
}

func TestExtendRepeat(t *testing.T) {
	v := NewZero(4)
	v.Set(0, 1)

	extended := v.ExtendRepeat(1, 3)
	require.Equal(t, 7, extended.Len())
	require.Equal(t, 4, extended.CountOnes())
	for i := 4; i < 7; i++ {
		require.Equal(t, 1, extended.Get(i))
	}
}

func TestFromBytesToBytes(t *testing.T) {
	data := []byte{0b10110010, 0b01000001}
	v := FromBytes(data, 16)
	require.Equal(t, 1, v.Get(0))
	require.Equal(t, 0, v.Get(1))
	require.Equal(t, 1, v.Get(2))

	roundTripped := v.ToBytes()
	require.Equal(t, data, roundTripped)
}

func TestFromBytesTruncatesAndPads(t *testing.T) {
	data := []byte{0xFF}
	short := FromBytes(data, 4)
	require.Equal(t, 4, short.CountOnes())

	long := FromBytes(data, 12)
	require.Equal(t, 8, long.CountOnes())
	for i := 8; i < 12; i++ {
		require.Equal(t, 0, long.Get(i))
	}
}

func TestRandomDenseLength(t *testing.T) {
	v, err := RandomDense(257, rand.Reader)
	require.NoError(t, err)
	require.Equal(t, 257, v.Len())
}

func TestRandomSparseWeight(t *testing.T) {
	v, err := RandomSparse(1000, 17, testSrc)
	require.NoError(t, err)
	require.Equal(t, 17, v.CountOnes())
	require.Equal(t, 1000, v.Len())
}

func TestRandomSparseInvalidWeight(t *testing.T) {
	_, err := RandomSparse(10, 11, testSrc)
	require.ErrorIs(t, err, ErrInvalidWeight)

	_, err = RandomSparse(10, -1, testSrc)
	require.ErrorIs(t, err, ErrInvalidWeight)
}

func TestZeroScrubsBits(t *testing.T) {
	v, err := RandomSparse(500, 10, testSrc)
	require.NoError(t, err)
	require.Equal(t, 10, v.CountOnes())

	v.Zero()
	require.Equal(t, 0, v.CountOnes())
}

func TestCloneIsIndependent(t *testing.T) {
	v := NewZero(40)
	v.Set(3, 1)

	clone := v.Clone()
	clone.Set(3, 0)
	clone.Set(10, 1)

	require.Equal(t, 1, v.Get(3))
	require.Equal(t, 0, v.Get(10))
}
