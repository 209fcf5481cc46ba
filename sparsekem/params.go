package sparsekem

import "github.com/redeaux/sparsekem/mersenne"

// Params holds the three numbers that fix a Cryptosystem's geometry: the
// security parameter K (message/seed length), the vector length N (a
// Mersenne exponent satisfying N > 10*K^2), and the sparse noise weight H,
// which is always set equal to K.
type Params struct {
	K int
	N int
	H int
}

// RepeatFactor returns N/K, the repetition codec's block size for these
// parameters.
func (p Params) RepeatFactor() int {
	return p.N / p.K
}

func newParams(k int, src mersenne.IndexSource) (Params, error) {
	n, err := mersenne.Select(k, src)
	if err != nil {
		return Params{}, err
	}
	return Params{K: k, N: n, H: k}, nil
}
