// Package sparsekem implements the sparse-vector public-key cryptosystem
// and its matching KEM: key generation, encrypt/decrypt, and
// encapsulate/decapsulate, all built on top of the bitvector, mersenne,
// repetition, and oracle packages.
package sparsekem

import (
	"github.com/redeaux/sparsekem/internal/audit"
	"github.com/redeaux/sparsekem/internal/entropy"
	"github.com/redeaux/sparsekem/internal/session"
)

// randomSource is the subset of *entropy.Source that System depends on,
// narrowed so tests can substitute a deterministic stand-in.
type randomSource interface {
	Read(p []byte) (int, error)
	Intn(n int) int
}

// System is one cryptosystem instance: fixed parameters, an entropy
// source, and (after GenKeys) a keypair. All of its operations are
// synchronous and run on a single goroutine; distinct System instances
// share no state and may be driven from separate goroutines freely. The
// entropy source itself is assumed reentrant, matching a standard OS CSPRNG.
type System struct {
	Params Params

	rand    randomSource
	log     *audit.Log
	session *session.Keys

	pk      PublicKey
	sk      PrivateKey
	hasKeys bool
}

// Option configures a System at construction time.
type Option func(*System)

// WithRandomSource overrides the default OS-backed entropy source. It
// exists for tests that need reproducible key material; production callers
// should not use it.
func WithRandomSource(src randomSource) Option {
	return func(s *System) { s.rand = src }
}

// NewSystem selects a Mersenne exponent n > 10*k^2 from the fixed table and
// returns a System parameterized for security level k. It returns
// ErrInvalidParameter if k < 1 or no table entry clears the bound.
func NewSystem(k int, opts ...Option) (*System, error) {
	s := &System{
		rand: entropy.New(),
		log:  audit.New("sparsekem"),
	}
	for _, opt := range opts {
		opt(s)
	}

	params, err := newParams(k, s.rand)
	if err != nil {
		return nil, err
	}
	s.Params = params
	s.log.Event("SYSTEM_CREATED", "parameters selected", "k", params.K, "n", params.N)
	return s, nil
}

// HasKeys reports whether GenKeys has produced a keypair yet.
func (s *System) HasKeys() bool {
	return s.hasKeys
}

// PublicKey returns the current public key. It panics if GenKeys has not
// been called; callers that cannot guarantee ordering should check
// HasKeys first.
func (s *System) PublicKey() PublicKey {
	if !s.hasKeys {
		panic(ErrNoKeys)
	}
	return s.pk
}

func newSessionKeys() *session.Keys {
	return session.NewKeys()
}
