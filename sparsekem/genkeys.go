package sparsekem

import "github.com/redeaux/sparsekem/bitvector"

// GenKeys samples R, F, and G and derives SK = F, PK = (R, (R&F)|G). Once
// SK and PK are set, G and the intermediate R&F are scrubbed immediately;
// F's bits live on only inside SK.
func (s *System) GenKeys() (PublicKey, PrivateKey, error) {
	n, k := s.Params.N, s.Params.K

	r, err := bitvector.RandomDense(n, s.rand)
	if err != nil {
		return PublicKey{}, PrivateKey{}, err
	}
	f, err := bitvector.RandomSparse(n, k, s.rand)
	if err != nil {
		return PublicKey{}, PrivateKey{}, err
	}
	g, err := bitvector.RandomSparse(n, k, s.rand)
	if err != nil {
		return PublicKey{}, PrivateKey{}, err
	}

	rAndF, err := r.And(f)
	if err != nil {
		return PublicKey{}, PrivateKey{}, err
	}
	t, err := rAndF.Or(g)
	if err != nil {
		return PublicKey{}, PrivateKey{}, err
	}

	s.pk = PublicKey{R: r, T: t}
	s.sk = PrivateKey{F: f}
	s.hasKeys = true

	if s.session == nil {
		s.session = newSessionKeys()
	}
	s.session.Generated(k, n)
	s.session.Scrub("gen_keys intermediate G", g, rAndF)

	return s.pk, s.sk, nil
}
