package mersenne

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedIndex is a deterministic IndexSource stub for testing Select's
// dispatch without pulling in crypto/rand.
type fixedIndex struct{ i int }

func (f fixedIndex) Intn(n int) int {
	if f.i >= n {
		return 0
	}
	return f.i
}

func TestSmallestAbove(t *testing.T) {
	n, err := SmallestAbove(16)
	require.NoError(t, err)
	require.Greater(t, n, 10*16*16)

	for _, e := range Exponents {
		if e > 10*16*16 && e < n {
			t.Fatalf("SmallestAbove(16)=%d but %d also satisfies the bound and is smaller", n, e)
		}
	}
}

func TestSelectSatisfiesBound(t *testing.T) {
	for _, k := range []int{1, 8, 64, 256} {
		n, err := Select(k, fixedIndex{0})
		require.NoError(t, err)
		require.Greater(t, n, 10*k*k)
	}
}

func TestSelectUsesIndexSource(t *testing.T) {
	cand := candidates(16)
	require.Greater(t, len(cand), 1, "fixture needs multiple candidates to prove dispatch")

	n, err := Select(16, fixedIndex{1})
	require.NoError(t, err)
	require.Equal(t, cand[1], n)
}

func TestSelectRejectsNonPositiveK(t *testing.T) {
	_, err := Select(0, fixedIndex{0})
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = SmallestAbove(-5)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestSelectRejectsUnsatisfiableK(t *testing.T) {
	// The largest table entry is 82589933; 10*k^2 exceeds it well before
	// k=100000.
	_, err := Select(100000, fixedIndex{0})
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = SmallestAbove(100000)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestExponentsDescending(t *testing.T) {
	for i := 1; i < len(Exponents); i++ {
		require.Greater(t, Exponents[i-1], Exponents[i], "table must stay in descending order")
	}
}
