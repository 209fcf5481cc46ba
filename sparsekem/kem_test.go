package sparsekem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// S3: encapsulate then decapsulate unmodified recovers the same secret.
func TestKEM_RoundTrip_S3(t *testing.T) {
	s := newFixedSystem(256, 756839)
	_, _, err := s.GenKeys()
	require.NoError(t, err)

	ct, secret, err := s.Encapsulate()
	require.NoError(t, err)

	recovered, ok, err := s.Decapsulate(ct)
	require.NoError(t, err)
	require.True(t, ok, "decapsulation should succeed on an untouched ciphertext")
	require.True(t, secret.Equals(recovered))
}

// S4: flipping a single bit of C1 must make decapsulation fail.
func TestKEM_TamperedCiphertext_S4(t *testing.T) {
	s := newFixedSystem(256, 756839)
	_, _, err := s.GenKeys()
	require.NoError(t, err)

	ct, _, err := s.Encapsulate()
	require.NoError(t, err)

	ct.C1.Set(0, 1-ct.C1.Get(0))

	_, ok, err := s.Decapsulate(ct)
	require.NoError(t, err)
	require.False(t, ok, "tampering with C1 must surface as decapsulation failure")
}

// Property 8, generalized: flipping any single bit of either ciphertext
// component should overwhelmingly cause decapsulation to fail.
func TestKEM_BitFlipDetection(t *testing.T) {
	s := newFixedSystem(64, 3021377)
	_, _, err := s.GenKeys()
	require.NoError(t, err)

	detected := 0
	const trials = 64
	for i := 0; i < trials; i++ {
		ct, _, err := s.Encapsulate()
		require.NoError(t, err)

		ct.C2.Set(i%ct.C2.Len(), 1-ct.C2.Get(i%ct.C2.Len()))

		_, ok, err := s.Decapsulate(ct)
		require.NoError(t, err)
		if !ok {
			detected++
		}
	}

	rate := float64(detected) / float64(trials)
	require.GreaterOrEqual(t, rate, 0.95, "bit-flip detection rate too low: %f", rate)
}

func TestKEM_SharedSecretLength(t *testing.T) {
	s := newFixedSystem(64, 3021377)
	_, _, err := s.GenKeys()
	require.NoError(t, err)

	_, secret, err := s.Encapsulate()
	require.NoError(t, err)
	require.Equal(t, 64, secret.Len())
}

func TestKEM_WithoutKeys(t *testing.T) {
	s := newFixedSystem(64, 3021377)
	_, _, err := s.Encapsulate()
	require.ErrorIs(t, err, ErrNoKeys)
}
