package sparsekem

import (
	"github.com/redeaux/sparsekem/bitvector"
	"github.com/redeaux/sparsekem/mersenne"
)

// ErrInvalidParameter is returned by NewSystem when k < 1 or no Mersenne
// exponent in the table satisfies n > 10*k^2.
var ErrInvalidParameter = mersenne.ErrInvalidParameter

// ErrLengthMismatch is returned when a bitwise operation is attempted
// between BitVectors of differing length. It is a programmer error: under
// correct use of System, it should never surface.
var ErrLengthMismatch = bitvector.ErrLengthMismatch

// ErrInvalidWeight is returned when sparse sampling is requested with a
// weight that cannot fit in the requested length. Like ErrLengthMismatch,
// correct use of System never triggers it.
var ErrInvalidWeight = bitvector.ErrInvalidWeight

// ErrNoKeys is returned by Encrypt, Decrypt, Encapsulate, and Decapsulate
// when called before GenKeys.
var ErrNoKeys = errNoKeys{}

type errNoKeys struct{}

func (errNoKeys) Error() string { return "sparsekem: GenKeys has not been called" }
