package oracle

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20"
)

// stream is the deterministic PRG behind the oracle: a chacha20 keystream
// in counter mode, keyed by deriveStreamKey. Unlike the process's
// cryptographic entropy source, a stream is seeded and fully reproducible;
// two streams built from the same key and nonce emit an identical sequence
// of integers. A stream is never shared between oracle calls: each call to
// H constructs four fresh ones, one per disjoint seed slice.
type stream struct {
	cipher *chacha20.Cipher
}

func newStream(key [32]byte, nonce [12]byte) (*stream, error) {
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, errors.Wrap(err, "oracle: constructing deterministic PRG")
	}
	return &stream{cipher: c}, nil
}

func (s *stream) nextUint32() uint32 {
	var zero, out [4]byte
	s.cipher.XORKeyStream(out[:], zero[:])
	return binary.BigEndian.Uint32(out[:])
}

// Intn returns a uniformly distributed integer in [0, n), drawn from the
// keystream with rejection sampling so the modulo does not bias the low
// end of the range. It implements bitvector.IndexSource, so a stream can be
// handed directly to bitvector.RandomSparse.
func (s *stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	limit := ^uint32(0) - (^uint32(0) % uint32(n))
	for {
		v := s.nextUint32()
		if v < limit {
			return int(v % uint32(n))
		}
	}
}

// Bit draws a single uniform bit from the keystream via Intn(2), matching
// the reference oracle's {0,1} sampling for H0.
func (s *stream) Bit() int {
	return s.Intn(2)
}
