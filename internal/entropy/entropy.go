// Package entropy models the "cryptographic entropy source" called out in
// the design notes: a non-seedable, reentrant source of randomness used for
// keys and noise vectors. It is the source sparsekem.System draws its
// keys and noise from by default; the deterministic oracle PRG in the
// oracle package is a separate, explicit object and never shares state with
// this one.
package entropy

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/redeaux/sparsekem/internal/audit"
)

// Source is a thread-safe handle on the OS-level CSPRNG. A Source carries no
// mutable state of its own beyond an audit log, so distinct instances (or a
// single shared instance) may be used concurrently across goroutines.
type Source struct {
	reader io.Reader
	log    *audit.Log
}

// New returns a Source backed by crypto/rand.Reader.
func New() *Source {
	return &Source{reader: rand.Reader, log: audit.New("entropy")}
}

// WithReader overrides the underlying reader; used by tests to inject a
// deterministic stream without touching the real CSPRNG.
func WithReader(r io.Reader) *Source {
	return &Source{reader: r, log: audit.New("entropy")}
}

// Read implements bitvector.ByteSource.
func (s *Source) Read(p []byte) (int, error) {
	n, err := io.ReadFull(s.reader, p)
	if err != nil {
		return n, errors.Wrap(err, "entropy: reading from source")
	}
	s.log.Event("ENTROPY_READ", "consumed random bytes", len(p))
	return n, nil
}

// Intn implements bitvector.IndexSource using rejection sampling over
// crypto/rand so the result is unbiased for any n.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	v, err := rand.Int(s.reader, max)
	if err != nil {
		// crypto/rand.Int only fails if the reader itself fails, which
		// means the process has no usable entropy source left; there is
		// no safe way to continue key generation at that point.
		panic(errors.Wrap(err, "entropy: rand.Int failed"))
	}
	return int(v.Int64())
}
