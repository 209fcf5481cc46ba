// Package session tracks the lifecycle of the key material a single
// Cryptosystem instance owns: when it was generated, and scrubbing the
// ephemeral vectors (G and R&F during key generation; A, B1, B2 during each
// encrypt/encapsulate) the moment they have served their purpose. There is
// no persistent state beyond that: a session tracks exactly one keypair,
// never a fleet of named, rotatable keys.
package session

import (
	"time"

	"github.com/redeaux/sparsekem/bitvector"
	"github.com/redeaux/sparsekem/internal/audit"
)

// Keys records when a keypair was generated and provides the scrubbing
// helpers used once ephemeral vectors are no longer needed.
type Keys struct {
	GeneratedAt time.Time
	log         *audit.Log
}

// NewKeys marks the current instant as the generation time for a fresh
// keypair.
func NewKeys() *Keys {
	return &Keys{GeneratedAt: time.Now(), log: audit.New("session")}
}

// Generated logs that a keypair has been produced for the given security
// parameter, without ever logging the key bits themselves.
func (k *Keys) Generated(securityParam, n int) {
	k.log.Event("KEYS_GENERATED", "keypair generated", "k", securityParam, "n", n)
}

// Scrub zeroes each ephemeral vector in place and logs that it happened.
// Call it immediately after an encrypt or encapsulate call returns, once
// the noise vectors it used are no longer needed; gen_keys does the same
// for F and G once SK and PK are derived.
func (k *Keys) Scrub(label string, vectors ...*bitvector.BitVector) {
	for _, v := range vectors {
		if v != nil {
			v.Zero()
		}
	}
	k.log.Event("EPHEMERAL_SCRUBBED", label, "count", len(vectors))
}
