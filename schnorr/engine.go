// Package schnorr implements BIP-340-style Schnorr signing, verification,
// and batch verification over secp256k1. It shares its hard core (blinded
// scalar multiplication, the Fermat-inverse scalar-blinding technique, and
// random-linear-combination batch verification) with the eddsa package.
//
// The tagged hash names (BIP0340/nonce, BIP0340/challenge) and the lift_x
// construction follow BIP-340 directly, built on btcec/v2.
package schnorr

import (
	"threshold.network/cryptocore/curve"
)

// Engine is bound to a single Weierstrass curve (secp256k1). The hash is not
// a parameter: nonce and challenge always use the BIP-340 tagged SHA-256
// hash, whose 32-byte output matches the curve's field size.
type Engine struct {
	curve *curve.Secp256k1
}

// NewBIP340 returns an engine wired to secp256k1, the only curve BIP-340
// specifies.
func NewBIP340() *Engine {
	return &Engine{curve: curve.NewSecp256k1()}
}

func (e *Engine) Curve() *curve.Secp256k1 { return e.curve }

func (e *Engine) Size() int { return e.curve.Size() }
