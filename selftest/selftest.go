// Package selftest runs a suite of self-checks against the live
// implementations in bitvector, mersenne, repetition, oracle and
// sparsekem, the way a cryptographic module verifies its own primitives
// before trusting them. Unlike a fixed known-answer-test vector table,
// every check here calls real code and reports what actually happened;
// there is no precomputed "expected" value to special-case.
package selftest

import (
	"crypto/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/redeaux/sparsekem/bitvector"
	"github.com/redeaux/sparsekem/mersenne"
	"github.com/redeaux/sparsekem/oracle"
	"github.com/redeaux/sparsekem/repetition"
	"github.com/redeaux/sparsekem/sparsekem"
)

func errf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

// Check is a single self-test: a short ID, a human description, and the
// function that performs it. Run returns a descriptive error on failure
// and nil on success.
type Check struct {
	ID          string
	Description string
	Run         func() error
}

// DefaultSuite returns the standard set of self-checks run by the selftest
// CLI command.
func DefaultSuite() []Check {
	return []Check{
		{"ST_001", "oracle H determinism across repeated calls", checkOracleDeterminism},
		{"ST_002", "oracle H sparse output weight invariants", checkOracleWeights},
		{"ST_003", "repetition codec round trip", checkRepetitionRoundTrip},
		{"ST_004", "mersenne exponent selection satisfies security bound", checkMersenneBound},
		{"ST_005", "bitvector AND/OR/XOR length checking", checkBitvectorLengthChecks},
		{"ST_006", "cryptosystem encrypt/decrypt round trip", checkCryptosystemRoundTrip},
		{"ST_007", "KEM encapsulate/decapsulate round trip", checkKEMRoundTrip},
		{"ST_008", "KEM rejects tampered ciphertext", checkKEMTamperDetection},
	}
}

func checkOracleDeterminism() error {
	seed, err := bitvector.RandomDense(64, rand.Reader)
	if err != nil {
		return err
	}
	const n = 21701
	const h = 32

	out1, err := oracle.H(seed, n, h)
	if err != nil {
		return err
	}
	out2, err := oracle.H(seed, n, h)
	if err != nil {
		return err
	}
	if !out1.H0.Equals(out2.H0) || !out1.H1.Equals(out2.H1) ||
		!out1.H2.Equals(out2.H2) || !out1.H3.Equals(out2.H3) {
		return errf("oracle H is not deterministic for a fixed seed")
	}
	return nil
}

func checkOracleWeights() error {
	seed, err := bitvector.RandomDense(64, rand.Reader)
	if err != nil {
		return err
	}
	const n = 21701
	const h = 32
	out, err := oracle.H(seed, n, h)
	if err != nil {
		return err
	}
	for _, v := range []*bitvector.BitVector{out.H1, out.H2, out.H3} {
		if v.CountOnes() != h {
			return errf("oracle sparse output has weight %d, want %d", v.CountOnes(), h)
		}
	}
	return nil
}

func checkRepetitionRoundTrip() error {
	m := bitvector.NewZero(16)
	for i := 0; i < 16; i++ {
		m.Set(i, i%3)
	}
	c := repetition.Encode(m, 3021377)
	got := repetition.Decode(c, 16)
	if !m.Equals(got) {
		return errf("repetition codec failed to round trip a 16-bit message")
	}
	return nil
}

func checkMersenneBound() error {
	for _, k := range []int{8, 64, 256} {
		n, err := mersenne.SmallestAbove(k)
		if err != nil {
			return err
		}
		if n <= 10*k*k {
			return errf("mersenne.SmallestAbove(%d)=%d does not satisfy n > 10*k^2", k, n)
		}
	}
	return nil
}

func checkBitvectorLengthChecks() error {
	a := bitvector.NewZero(8)
	b := bitvector.NewZero(16)
	if _, err := a.Xor(b); err == nil {
		return errf("bitvector.Xor accepted mismatched lengths without error")
	}
	return nil
}

func checkCryptosystemRoundTrip() error {
	sys, err := sparsekem.NewSystem(16)
	if err != nil {
		return err
	}
	if _, _, err := sys.GenKeys(); err != nil {
		return err
	}
	m := bitvector.NewZero(16)
	for i := 0; i < 16; i++ {
		m.Set(i, i%2)
	}
	ct, err := sys.Encrypt(m)
	if err != nil {
		return err
	}
	got, err := sys.Decrypt(ct)
	if err != nil {
		return err
	}
	if !m.Equals(got) {
		return errf("cryptosystem round trip did not recover the original message")
	}
	return nil
}

func checkKEMRoundTrip() error {
	sys, err := sparsekem.NewSystem(64)
	if err != nil {
		return err
	}
	if _, _, err := sys.GenKeys(); err != nil {
		return err
	}
	ct, secret, err := sys.Encapsulate()
	if err != nil {
		return err
	}
	recovered, ok, err := sys.Decapsulate(ct)
	if err != nil {
		return err
	}
	if !ok {
		return errf("decapsulation of an untampered ciphertext reported failure")
	}
	if !secret.Equals(recovered) {
		return errf("decapsulated secret does not match the encapsulated secret")
	}
	return nil
}

func checkKEMTamperDetection() error {
	sys, err := sparsekem.NewSystem(64)
	if err != nil {
		return err
	}
	if _, _, err := sys.GenKeys(); err != nil {
		return err
	}
	ct, _, err := sys.Encapsulate()
	if err != nil {
		return err
	}
	ct.C1.Set(0, 1-ct.C1.Get(0))

	_, ok, err := sys.Decapsulate(ct)
	if err != nil {
		return err
	}
	if ok {
		return errf("decapsulation accepted a tampered ciphertext")
	}
	return nil
}

// Result records the outcome of one Check.
type Result struct {
	ID          string
	Description string
	Err         error
}

// Passed reports whether this check succeeded.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Report is the outcome of running a suite of checks.
type Report struct {
	GeneratedAt time.Time
	Results     []Result
	Passed      int
	Failed      int
}

// Run executes every check in the suite and collects a Report. It stamps
// GeneratedAt with now, supplied by the caller since this package avoids
// calling time.Now() itself to stay test-friendly.
func Run(now time.Time, checks []Check) *Report {
	report := &Report{GeneratedAt: now}
	for _, c := range checks {
		err := c.Run()
		report.Results = append(report.Results, Result{ID: c.ID, Description: c.Description, Err: err})
		if err == nil {
			report.Passed++
		} else {
			report.Failed++
		}
	}
	return report
}

// AllPassed reports whether every check in the report succeeded.
func (r *Report) AllPassed() bool {
	return r.Failed == 0
}
